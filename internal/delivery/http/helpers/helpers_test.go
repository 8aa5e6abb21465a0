package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"poapregistry/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *APIError {
	t.Helper()
	var resp APIResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotNil(t, resp.Error)
	assert.Nil(t, resp.Data)
	return resp.Error
}

func TestWriteDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", fmt.Errorf("load event: %w", domain.ErrNotFound), http.StatusNotFound, "not_found"},
		{"not the owner", domain.ErrUnauthorized, http.StatusForbidden, "unauthorized"},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
		{"duplicate event", domain.ErrEventAlreadyRegistered, http.StatusConflict, "event_already_registered"},
		{"duplicate badge", domain.ErrBadgeAlreadyIssued, http.StatusConflict, "badge_already_issued"},
		{"serialization failure", domain.ErrConcurrentUpdate, http.StatusConflict, "concurrent_update"},
		{"short name", domain.ErrNameTooShort, http.StatusBadRequest, "name_too_short"},
		{"image", &domain.InvalidImageURLError{URL: "http://x"}, http.StatusBadRequest, "invalid_image_url"},
		{"not started", domain.ErrEventNotStarted, http.StatusBadRequest, "event_not_started"},
		{"address", fmt.Errorf("validate attendee: %w", domain.ErrInvalidAddress), http.StatusBadRequest, "invalid_address"},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError, ErrCodeInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteDomainError(rec, httptest.NewRequest(http.MethodGet, "/", nil), testLogger, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			apiErr := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			if tt.wantStatus == http.StatusInternalServerError {
				assert.NotContains(t, apiErr.Message, "connection reset")
			}
		})
	}
}

type nameRequest struct {
	Name string `json:"name"`
}

func (n nameRequest) Validate() []string {
	if n.Name == "" {
		return []string{"name is required"}
	}
	return nil
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		wantOK bool
	}{
		{"valid", `{"name":"DevCon"}`, true},
		{"unknown field", `{"name":"DevCon","extra":1}`, false},
		{"malformed", `{"name":`, false},
		{"fails validation", `{"name":""}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dest nameRequest

			ok := DecodeAndValidate(rec, req, &dest)

			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, ErrCodeBadRequest, decodeError(t, rec).Code)
			}
		})
	}
}
