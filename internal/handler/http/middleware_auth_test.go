package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/vote-monitor/internal/service"
	"github.com/MKhiriev/vote-monitor/internal/utils"
	"github.com/MKhiriev/vote-monitor/models"
)

// executeAuth runs auth followed by requireNgo and reports the claims next saw.
func executeAuth(h *Handler, authHeader string) (*httptest.ResponseRecorder, *models.Claims) {
	var seen *models.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = utils.GetClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	h.auth(h.requireNgo(next)).ServeHTTP(rec, req)
	return rec, seen
}

func TestAuth_RejectsMissingOrMalformedHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "no header"},
		{name: "scheme only", header: "Bearer"},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "too many parts", header: "Bearer a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)

			rec, seen := executeAuth(h, tt.header)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Nil(t, seen)
		})
	}
}

func TestAuth_RejectsInvalidToken(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.auth.EXPECT().ParseToken(gomock.Any(), "expired").Return(nil, service.ErrTokenIsExpiredOrInvalid)

	rec, seen := executeAuth(h, "Bearer expired")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, seen)
}

func TestAuth_ForbidsTokenWithoutNgo(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.auth.EXPECT().ParseToken(gomock.Any(), "no-ngo").
		Return(&models.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "someone"}}, nil)

	rec, seen := executeAuth(h, "Bearer no-ngo")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Nil(t, seen)
}

func TestAuth_PassesClaimsDownstream(t *testing.T) {
	h, deps := newTestHandler(t)
	claims := &models.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "0722222222"}, NgoID: 3}
	deps.auth.EXPECT().ParseToken(gomock.Any(), "good").Return(claims, nil)

	rec, seen := executeAuth(h, "bearer good")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "0722222222", seen.Subject)
	assert.Equal(t, int64(3), seen.NgoID)
}

func TestRequireNgo_WithoutAuthIsUnauthorized(t *testing.T) {
	h, _ := newTestHandler(t)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	rec := httptest.NewRecorder()
	h.requireNgo(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
