package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"platra/internal/model"
	"platra/internal/platform"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedCode    string
		expectedMessage string
	}{
		{
			name:            "missing field",
			err:             model.MissingField("Item name is required"),
			expectedStatus:  http.StatusBadRequest,
			expectedCode:    model.ErrCodeMissingField,
			expectedMessage: "Item name is required",
		},
		{
			name:            "wrapped not found",
			err:             fmt.Errorf("lookup: %w", model.ErrCheckoutNotFound),
			expectedStatus:  http.StatusNotFound,
			expectedCode:    model.ErrCodeCheckoutNotFound,
			expectedMessage: "Checkout not found",
		},
		{
			name:            "not authenticated",
			err:             model.ErrNotAuthenticated,
			expectedStatus:  http.StatusUnauthorized,
			expectedCode:    model.ErrCodeUnauthorised,
			expectedMessage: "Not authenticated",
		},
		{
			name:            "image too large",
			err:             model.ErrImageTooLarge,
			expectedStatus:  http.StatusRequestEntityTooLarge,
			expectedCode:    model.ErrCodeImageTooLarge,
			expectedMessage: "Image size should be less than 5MB",
		},
		{
			name:            "platform unreachable",
			err:             model.Unavailable("Network error"),
			expectedStatus:  http.StatusBadGateway,
			expectedCode:    model.ErrCodeUpstreamUnavailable,
			expectedMessage: "Network error",
		},
		{
			name:            "platform refusal keeps its status",
			err:             &platform.APIError{StatusCode: http.StatusForbidden, Code: "FORBIDDEN", Message: "Only owners may do this"},
			expectedStatus:  http.StatusForbidden,
			expectedCode:    "FORBIDDEN",
			expectedMessage: "Only owners may do this",
		},
		{
			name:            "platform refusal inside a 2xx",
			err:             &platform.APIError{StatusCode: http.StatusOK, Message: "Invalid OTP"},
			expectedStatus:  http.StatusUnprocessableEntity,
			expectedMessage: "Invalid OTP",
		},
		{
			name:            "deadline",
			err:             fmt.Errorf("platform: %w", context.DeadlineExceeded),
			expectedStatus:  http.StatusGatewayTimeout,
			expectedCode:    model.ErrCodeUpstreamUnavailable,
			expectedMessage: "Request timed out",
		},
		{
			name:            "anything else is hidden",
			err:             errors.New("pq: relation does not exist"),
			expectedStatus:  http.StatusInternalServerError,
			expectedCode:    model.ErrCodeInternalError,
			expectedMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			writeError(w, tt.err, zerolog.Nop())

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var body model.Envelope
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.expectedCode, body.Code)
			assert.Equal(t, tt.expectedMessage, body.Message)
		})
	}
}

func TestCurrentSession_Missing(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/cart", nil)

	sess, ok := currentSession(w, r, zerolog.Nop())

	assert.False(t, ok)
	assert.Nil(t, sess)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// decodeData unmarshals the data field of a success envelope into v.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, v any) model.Envelope {
	t.Helper()
	var raw struct {
		model.Envelope
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	if v != nil {
		require.NoError(t, json.Unmarshal(raw.Data, v))
	}
	return raw.Envelope
}
