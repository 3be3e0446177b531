package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/oubliette-games/dungeon-escape/internal/events"
	"github.com/oubliette-games/dungeon-escape/internal/storage"
	"github.com/oubliette-games/dungeon-escape/pkg/game"
	"github.com/oubliette-games/dungeon-escape/pkg/textfilter"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// CreateSessionRequest defines the request body for starting a new game
type CreateSessionRequest struct {
	PlayerName string `json:"player_name"`
}

// ActionRequest defines the request body for applying an action
type ActionRequest struct {
	Action string `json:"action"`
}

// ActionResponse is returned after an action is resolved. Applied is
// false when the action was a no-op in the current phase.
type ActionResponse struct {
	Applied bool      `json:"applied"`
	Events  []string  `json:"events"`
	State   game.View `json:"state"`
}

// SessionsHandler serves session CRUD and action resolution. The
// broadcaster is optional; when nil, no events are published.
type SessionsHandler struct {
	storage     storage.Store
	broadcaster *events.Broadcaster
	logger      *slog.Logger
}

func NewSessionsHandler(storage storage.Store, broadcaster *events.Broadcaster, logger *slog.Logger) *SessionsHandler {
	return &SessionsHandler{
		storage:     storage,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

// ServeHTTP handles HTTP requests for session operations
// Routes:
// POST /v1/sessions                - Start a new game
// GET /v1/sessions/{id}            - Read the current view of a session
// DELETE /v1/sessions/{id}         - Delete a session
// POST /v1/sessions/{id}/actions   - Apply a player action
func (h *SessionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	// Parse the path to extract the session ID and optional subresource
	path := strings.TrimPrefix(r.URL.Path, "/v1/sessions")
	path = strings.Trim(path, "/")

	var sessionID uuid.UUID
	var subresource string
	var err error

	if path != "" {
		parts := strings.SplitN(path, "/", 2)
		sessionID, err = uuid.Parse(parts[0])
		if err != nil {
			h.logger.Warn("Invalid session ID", "id", parts[0], "error", err)
			h.writeError(w, http.StatusBadRequest, "Invalid session ID format")
			return
		}
		if len(parts) == 2 {
			subresource = parts[1]
		}
	}

	switch {
	case subresource == "actions":
		if r.Method != http.MethodPost {
			h.logger.Warn("Method not allowed for actions endpoint", "method", r.Method)
			h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed. Only POST is supported.")
			return
		}
		h.handleAction(w, r, sessionID)

	case subresource != "":
		h.writeError(w, http.StatusNotFound, "Unknown session subresource: "+subresource)

	case r.Method == http.MethodPost:
		if sessionID != uuid.Nil {
			h.writeError(w, http.StatusBadRequest, "POST to /v1/sessions does not take a session ID")
			return
		}
		h.handleCreate(w, r)

	case r.Method == http.MethodGet:
		if sessionID == uuid.Nil {
			h.logger.Warn("GET request without session ID")
			h.writeError(w, http.StatusBadRequest, "Session ID is required for GET requests")
			return
		}
		h.handleRead(w, r, sessionID)

	case r.Method == http.MethodDelete:
		if sessionID == uuid.Nil {
			h.logger.Warn("DELETE request without session ID")
			h.writeError(w, http.StatusBadRequest, "Session ID is required for DELETE requests")
			return
		}
		h.handleDelete(w, r, sessionID)

	default:
		h.logger.Warn("Method not allowed for sessions endpoint", "method", r.Method)
		h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: POST, GET, DELETE")
	}
}

func (h *SessionsHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("Creating new session")

	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid JSON in request body", "error", err)
		h.writeError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	name := textfilter.SanitizeName(req.PlayerName)
	if name == "" {
		h.logger.Warn("Missing required field: player_name")
		h.writeError(w, http.StatusBadRequest, "player_name field is required")
		return
	}
	if len(name) > game.MaxNameLen {
		h.writeError(w, http.StatusBadRequest, "player_name must be at most 15 characters")
		return
	}

	s := game.NewSession(name)

	if err := h.storage.SaveSession(r.Context(), s); err != nil {
		h.logger.Error("Failed to save new session", "error", err, "id", s.ID.String())
		h.writeError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	if h.broadcaster != nil {
		if err := h.broadcaster.PublishSessionCreated(r.Context(), s.ID, name); err != nil {
			h.logger.Error("Failed to publish session created event", "error", err)
			// Don't fail the request just because event publishing failed
		}
	}

	h.logger.Debug("Session created successfully", "id", s.ID.String(), "player", name)
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(s.View()); err != nil {
		h.logger.Error("Failed to encode session response", "error", err)
	}
}

func (h *SessionsHandler) handleRead(w http.ResponseWriter, r *http.Request, sessionID uuid.UUID) {
	s, err := h.storage.LoadSession(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("Failed to load session", "error", err, "id", sessionID.String())
		h.writeError(w, http.StatusInternalServerError, "Failed to load session")
		return
	}

	if s == nil {
		h.logger.Warn("Session not found", "id", sessionID.String())
		h.writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(s.View()); err != nil {
		h.logger.Error("Failed to encode session response", "error", err)
	}
}

func (h *SessionsHandler) handleDelete(w http.ResponseWriter, r *http.Request, sessionID uuid.UUID) {
	if err := h.storage.DeleteSession(r.Context(), sessionID); err != nil {
		h.logger.Error("Failed to delete session", "error", err, "id", sessionID.String())
		h.writeError(w, http.StatusInternalServerError, "Failed to delete session")
		return
	}
	h.logger.Debug("Session deleted successfully", "id", sessionID.String())
	w.WriteHeader(http.StatusNoContent)
}

// handleAction resolves one player action against a session. A short
// lock serializes concurrent requests for the same session so actions
// apply one at a time.
func (h *SessionsHandler) handleAction(w http.ResponseWriter, r *http.Request, sessionID uuid.UUID) {
	var req ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid JSON in request body", "error", err)
		h.writeError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	action, ok := game.ParseAction(req.Action)
	if !ok {
		h.logger.Warn("Unknown action", "action", req.Action)
		h.writeError(w, http.StatusBadRequest, "Unknown action: "+req.Action)
		return
	}

	lockOwner := uuid.New().String()
	locked, err := h.storage.AcquireActionLock(r.Context(), sessionID, lockOwner)
	if err != nil {
		h.logger.Error("Failed to acquire action lock", "error", err, "id", sessionID.String())
		h.writeError(w, http.StatusInternalServerError, "Failed to acquire session lock")
		return
	}
	if !locked {
		h.logger.Warn("Session is busy", "id", sessionID.String())
		h.writeError(w, http.StatusConflict, "Another action is being applied to this session")
		return
	}
	defer h.storage.ReleaseActionLock(r.Context(), sessionID, lockOwner)

	s, err := h.storage.LoadSession(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("Failed to load session", "error", err, "id", sessionID.String())
		h.writeError(w, http.StatusInternalServerError, "Failed to load session")
		return
	}
	if s == nil {
		h.logger.Warn("Session not found", "id", sessionID.String())
		h.writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	wasEnded := s.Ended
	result := s.Apply(action)

	if err := h.storage.SaveSession(r.Context(), s); err != nil {
		h.logger.Error("Failed to save session after action", "error", err, "id", sessionID.String())
		h.writeError(w, http.StatusInternalServerError, "Failed to save session")
		return
	}

	view := s.View()

	if h.broadcaster != nil {
		if err := h.broadcaster.PublishActionApplied(r.Context(), s.ID, action, result, view); err != nil {
			h.logger.Error("Failed to publish action event", "error", err)
		}
		if s.Ended && !wasEnded {
			if err := h.broadcaster.PublishSessionEnded(r.Context(), s.ID, s.Outcome); err != nil {
				h.logger.Error("Failed to publish session ended event", "error", err)
			}
		}
	}

	h.logger.Debug("Action resolved",
		"id", s.ID.String(),
		"action", action,
		"applied", result.Applied,
		"phase", s.Phase,
	)

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ActionResponse{
		Applied: result.Applied,
		Events:  result.Events,
		State:   view,
	}); err != nil {
		h.logger.Error("Failed to encode action response", "error", err)
	}
}

func (h *SessionsHandler) writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: msg}); err != nil {
		h.logger.Error("Failed to encode error response", "error", err)
	}
}
