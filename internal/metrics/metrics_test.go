package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IndependentRegistries(t *testing.T) {
	// two instances must not collide on registration
	m1 := New()
	m2 := New()

	m1.CacheRequestsTotal.WithLabelValues(CacheHit).Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(m1.CacheRequestsTotal.WithLabelValues(CacheHit)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m2.CacheRequestsTotal.WithLabelValues(CacheHit)))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	m := New()
	m.HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/access/authorize", "200").Inc()
	m.LoginAttemptsTotal.WithLabelValues("observer", "success").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "votemonitor_http_requests_total")
	assert.Contains(t, body, `route="/api/v1/access/authorize"`)
	assert.Contains(t, body, "votemonitor_login_attempts_total")
	assert.Contains(t, body, "go_goroutines")
}
