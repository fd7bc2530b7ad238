package http

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/vote-monitor/internal/probe"
)

func TestLiveness(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodGet, "/health/live", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]any](t, rec.Body.Bytes())
	assert.Equal(t, "ok", body["status"])
	assert.Contains(t, body, "uptime")
}

func TestReadiness(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name       string
		checks     []probe.Check
		wantStatus int
		wantBody   map[string]any
	}{
		{
			name:       "all dependencies up",
			checks:     []probe.Check{{Name: "database", Ping: ok}, {Name: "cache", Ping: ok}},
			wantStatus: http.StatusOK,
			wantBody:   map[string]any{"status": "ready"},
		},
		{
			name:       "cache down",
			checks:     []probe.Check{{Name: "database", Ping: ok}, {Name: "cache", Ping: down}},
			wantStatus: http.StatusServiceUnavailable,
			wantBody: map[string]any{
				"status":       "unhealthy",
				"failed_check": "cache",
				"error":        "connection refused",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t, withChecks(tt.checks...))

			rec := serve(h, http.MethodGet, "/health/ready", "", nil)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, decodeBody[map[string]any](t, rec.Body.Bytes()))
		})
	}
}
