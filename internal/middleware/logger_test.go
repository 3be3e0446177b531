package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLogger_PassesResponseThrough(t *testing.T) {
	handler := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		if _, err := w.Write([]byte("not here")); err != nil {
			t.Errorf("Failed to write response: %v", err)
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/sessions/missing", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
	if w.Body.String() != "not here" {
		t.Errorf("Expected body to pass through, got %q", w.Body.String())
	}
}

func TestLogger_DefaultsToOK(t *testing.T) {
	handler := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("ok")); err != nil {
			t.Errorf("Failed to write response: %v", err)
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
}

// Streaming handlers type-assert the writer to http.Flusher, so the
// wrapped writer has to keep satisfying it.
func TestLogger_PreservesFlusher(t *testing.T) {
	var flushable bool
	handler := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if flusher, ok := w.(http.Flusher); ok {
			flushable = true
			flusher.Flush()
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/events/sessions/abc", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if !flushable {
		t.Error("Expected the wrapped writer to satisfy http.Flusher")
	}
	if !w.Flushed {
		t.Error("Expected the flush to reach the underlying writer")
	}
}
