package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer builds a server without a database connection. Handlers
// that hit the database are only exercised up to their input validation.
func newTestServer() *Server {
	return &Server{
		catalogLimit: 100,
		topN:         20,
	}
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	s.handleHealth(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp["status"])
}

func TestWithCORS_Preflight(t *testing.T) {
	s := newTestServer()
	handler := s.withCORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not run for OPTIONS")
	}))

	req := httptest.NewRequest(http.MethodOptions, "/match", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestWithCORS_PassesThrough(t *testing.T) {
	s := newTestServer()
	called := false
	handler := s.withCORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusTeapot, w.Code)
}

func TestRoutes_MethodNotAllowed(t *testing.T) {
	s := newTestServer()
	mux := s.routes()

	req := httptest.NewRequest(http.MethodGet, "/match", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestParseQueryInt(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		def      int
		max      int
		expected int
	}{
		{"missing uses default", "", 20, 100, 20},
		{"valid value", "limit=5", 20, 100, 5},
		{"capped at max", "limit=500", 20, 100, 100},
		{"negative uses default", "limit=-3", 20, 100, 20},
		{"non-numeric uses default", "limit=abc", 20, 100, 20},
		{"zero max means uncapped", "limit=500", 20, 0, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/opportunities?"+tt.query, nil)
			assert.Equal(t, tt.expected, parseQueryInt(req, "limit", tt.def, tt.max))
		})
	}
}
