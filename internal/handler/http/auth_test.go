// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/vote-monitor/internal/service"
	"github.com/MKhiriev/vote-monitor/internal/store"
	"github.com/MKhiriev/vote-monitor/models"
)

const loginFailurePrefix = "A aparut o eroare la logarea in aplicatie"

func observerToken(subject string) models.Token {
	return models.Token{
		Claims: models.Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: subject},
			NgoID:            3,
			ObserverID:       7,
		},
		SignedString: "header.payload.signature",
		ValidFor:     24 * time.Hour,
	}
}

func decodeBody[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v))
	return v
}

func jsonHeaders() map[string]string {
	return map[string]string{"Content-Type": "application/json"}
}

// ---- POST /api/v1/access/authorize ----

func TestAuthorizeObserver_Success(t *testing.T) {
	h, deps := newTestHandler(t)

	request := models.AuthorizeRequest{User: "0722222222", Password: "1234", UniqueID: "device-1"}
	deps.auth.EXPECT().LoginObserver(gomock.Any(), request).Return(observerToken("0722222222"), nil)

	rec := serve(h, http.MethodPost, "/api/v1/access/authorize",
		`{"user":"0722222222","password":"1234","uniqueId":"device-1"}`, jsonHeaders())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decodeBody[models.TokenResponse](t, rec.Body.Bytes())
	assert.Equal(t, "header.payload.signature", resp.AccessToken)
	assert.Equal(t, 86400, resp.ExpiresIn)
}

func TestAuthorizeObserver_ValidationErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantFields map[string]string
	}{
		{
			name: "empty body",
			body: "",
			wantFields: map[string]string{
				"user":     "The user field is required.",
				"password": "The password field is required.",
			},
		},
		{
			name: "empty object",
			body: "{}",
			wantFields: map[string]string{
				"user":     "The user field is required.",
				"password": "The password field is required.",
			},
		},
		{
			name:       "missing password",
			body:       `{"user":"0722222222"}`,
			wantFields: map[string]string{"password": "The password field is required."},
		},
		{
			name:       "malformed json",
			body:       `{"user":`,
			wantFields: map[string]string{"request": "The request body is not valid JSON."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)

			rec := serve(h, http.MethodPost, "/api/v1/access/authorize", tt.body, jsonHeaders())

			require.Equal(t, http.StatusBadRequest, rec.Code)
			errs := decodeBody[models.ValidationErrors](t, rec.Body.Bytes())
			assert.Len(t, errs, len(tt.wantFields))
			for field, msg := range tt.wantFields {
				assert.Equal(t, []string{msg}, errs[field], field)
			}
		})
	}
}

func TestAuthorizeObserver_RejectedLogins(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantMessage string
	}{
		{name: "invalid credentials", err: service.ErrInvalidCredentials, wantMessage: loginFailurePrefix},
		{name: "inactive ngo", err: service.ErrNgoInactive, wantMessage: loginFailurePrefix},
		{name: "inactive observer", err: service.ErrObserverInactive, wantMessage: loginFailurePrefix},
		{name: "device mismatch", err: service.ErrDeviceMismatch, wantMessage: deviceMismatchMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deps := newTestHandler(t)
			deps.auth.EXPECT().LoginObserver(gomock.Any(), gomock.Any()).Return(models.Token{}, tt.err)

			rec := serve(h, http.MethodPost, "/api/v1/access/authorize",
				`{"user":"0722222222","password":"0000"}`, jsonHeaders())

			require.Equal(t, http.StatusBadRequest, rec.Code)
			resp := decodeBody[models.LoginErrorResponse](t, rec.Body.Bytes())
			assert.True(t, len(resp.Error) > 0)
			assert.Contains(t, resp.Error, tt.wantMessage)
		})
	}
}

func TestAuthorizeObserver_InternalError(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.auth.EXPECT().LoginObserver(gomock.Any(), gomock.Any()).
		Return(models.Token{}, errors.Join(store.ErrExecutingQuery, errors.New("connection refused")))

	rec := serve(h, http.MethodPost, "/api/v1/access/authorize",
		`{"user":"0722222222","password":"1234"}`, jsonHeaders())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Empty(t, rec.Body.String())
}

func TestAuthorizeObserver_CustomInvalidCredentialsMessage(t *testing.T) {
	h, deps := newTestHandler(t)
	h.invalidCredentialsMessage = "nope"
	deps.auth.EXPECT().LoginObserver(gomock.Any(), gomock.Any()).Return(models.Token{}, service.ErrInvalidCredentials)

	rec := serve(h, http.MethodPost, "/api/v1/access/authorize", `{"user":"a","password":"b"}`, jsonHeaders())

	assert.JSONEq(t, `{"error":"nope"}`, rec.Body.String())
}

// ---- POST /api/v2/access/authorize ----

func TestAuthorizeNgoAdmin_Success(t *testing.T) {
	h, deps := newTestHandler(t)

	deps.auth.EXPECT().LoginNgoAdmin(gomock.Any(), models.AdminAuthorizeRequest{User: "admin", Password: "secret"}).
		Return(observerToken("admin"), nil)

	rec := serve(h, http.MethodPost, "/api/v2/access/authorize", `{"user":"admin","password":"secret"}`, jsonHeaders())

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[models.TokenResponse](t, rec.Body.Bytes())
	assert.Equal(t, 86400, resp.ExpiresIn)
}

func TestAuthorizeNgoAdmin_InvalidCredentials(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.auth.EXPECT().LoginNgoAdmin(gomock.Any(), gomock.Any()).Return(models.Token{}, service.ErrInvalidCredentials)

	rec := serve(h, http.MethodPost, "/api/v2/access/authorize", `{"user":"admin","password":"wrong"}`, jsonHeaders())

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeBody[models.LoginErrorResponse](t, rec.Body.Bytes())
	assert.Contains(t, resp.Error, loginFailurePrefix)
}

func TestAuthorizeNgoAdmin_Validation(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodPost, "/api/v2/access/authorize", `{"user":"admin"}`, jsonHeaders())

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"password":["The password field is required."]}`, rec.Body.String())
}

// ---- GET /api/v1/access/test ----

func TestAccessTest_EchoesClaims(t *testing.T) {
	h, deps := newTestHandler(t)
	claims := &models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "0722222222"},
		NgoID:            3,
		ObserverID:       7,
	}
	deps.auth.EXPECT().ParseToken(gomock.Any(), "valid-token").Return(claims, nil)

	rec := serve(h, http.MethodGet, "/api/v1/access/test", "", map[string]string{"Authorization": "Bearer valid-token"})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[models.CallerInfo](t, rec.Body.Bytes())
	assert.Equal(t, models.CallerInfo{User: "0722222222", NgoID: 3, ObserverID: 7}, resp)
}
