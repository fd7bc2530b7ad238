package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/vote-monitor/models"
)

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name string
		body string
		want models.ValidationErrors
	}{
		{name: "valid", body: `{"user":"0722222222","password":"1234"}`},
		{name: "unknown fields are ignored", body: `{"user":"u","password":"p","extra":1}`},
		{
			name: "empty body",
			want: models.ValidationErrors{
				"user":     {"The user field is required."},
				"password": {"The password field is required."},
			},
		},
		{
			name: "empty strings are missing",
			body: `{"user":"","password":""}`,
			want: models.ValidationErrors{
				"user":     {"The user field is required."},
				"password": {"The password field is required."},
			},
		},
		{name: "wrong type", body: `{"user":1}`, want: models.ValidationErrors{"request": {"The request body is not valid JSON."}}},
		{name: "not json", body: `user=1`, want: models.ValidationErrors{"request": {"The request body is not valid JSON."}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var request models.AuthorizeRequest
			got := h.decodeAndValidate(r, &request)

			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewValidator_ReportsJSONNames(t *testing.T) {
	type payload struct {
		UniqueID string `json:"uniqueId,omitempty" validate:"required"`
		Plain    string `validate:"required"`
		Hidden   string `json:"-"`
	}

	h, _ := newTestHandler(t)
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))

	got := h.decodeAndValidate(r, &payload{})

	assert.Equal(t, models.ValidationErrors{
		"uniqueId": {"The uniqueId field is required."},
		"Plain":    {"The Plain field is required."},
	}, got)
}
