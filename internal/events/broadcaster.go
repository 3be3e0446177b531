package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/oubliette-games/dungeon-escape/pkg/game"
)

// EventType represents the type of event being broadcast
type EventType string

const (
	EventTypeSessionCreated EventType = "session.created"
	EventTypeActionApplied  EventType = "action.applied"
	EventTypeSessionEnded   EventType = "session.ended"
)

// Event represents a generic event structure
type Event struct {
	Type      EventType              `json:"type"`
	SessionID string                 `json:"session_id,omitempty"`
	Data      map[string]interface{} `json:"data,omitempty"`
}

// Channel returns the Redis Pub/Sub channel for a session's events.
func Channel(sessionID uuid.UUID) string {
	return fmt.Sprintf("session-events:%s", sessionID.String())
}

// Broadcaster publishes events to Redis Pub/Sub for SSE distribution
type Broadcaster struct {
	redisClient *redis.Client
	logger      *slog.Logger
}

// NewBroadcaster creates a new event broadcaster
func NewBroadcaster(redisClient *redis.Client, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		redisClient: redisClient,
		logger:      logger,
	}
}

// PublishSessionCreated publishes a session.created event
func (b *Broadcaster) PublishSessionCreated(ctx context.Context, sessionID uuid.UUID, playerName string) error {
	event := Event{
		Type:      EventTypeSessionCreated,
		SessionID: sessionID.String(),
		Data: map[string]interface{}{
			"player_name": playerName,
		},
	}
	return b.publishToSession(ctx, sessionID, event)
}

// PublishActionApplied publishes an action.applied event
func (b *Broadcaster) PublishActionApplied(ctx context.Context, sessionID uuid.UUID, action game.Action, result game.Result, view game.View) error {
	event := Event{
		Type:      EventTypeActionApplied,
		SessionID: sessionID.String(),
		Data: map[string]interface{}{
			"action":  string(action),
			"applied": result.Applied,
			"events":  result.Events,
			"phase":   string(view.Phase),
			"room":    view.RoomName,
			"health":  view.Health,
			"moves":   view.Moves,
		},
	}
	return b.publishToSession(ctx, sessionID, event)
}

// PublishSessionEnded publishes a session.ended event
func (b *Broadcaster) PublishSessionEnded(ctx context.Context, sessionID uuid.UUID, outcome *game.Outcome) error {
	event := Event{
		Type:      EventTypeSessionEnded,
		SessionID: sessionID.String(),
	}
	if outcome != nil {
		event.Data = map[string]interface{}{
			"win":    outcome.Win,
			"reason": outcome.Reason,
		}
	}
	return b.publishToSession(ctx, sessionID, event)
}

// publishToSession publishes an event to the session-specific channel
func (b *Broadcaster) publishToSession(ctx context.Context, sessionID uuid.UUID, event Event) error {
	channel := Channel(sessionID)

	data, err := json.Marshal(event)
	if err != nil {
		b.logger.Error("Failed to marshal event", "error", err, "event", event)
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := b.redisClient.Publish(ctx, channel, data).Err(); err != nil {
		b.logger.Error("Failed to publish event", "error", err, "channel", channel)
		return fmt.Errorf("failed to publish event: %w", err)
	}

	b.logger.Debug("Event published",
		"channel", channel,
		"event_type", event.Type,
	)

	return nil
}
