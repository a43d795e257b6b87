package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"platra/internal/model"
	"platra/internal/platform"
	"platra/internal/session"

	"github.com/rs/zerolog"
)

// statusByCode maps domain error codes to HTTP statuses. Unlisted codes are bad requests.
var statusByCode = map[string]int{
	model.ErrCodeItemNotFound:        http.StatusNotFound,
	model.ErrCodeCheckoutNotFound:    http.StatusNotFound,
	model.ErrCodeQRCodeNotFound:      http.StatusNotFound,
	model.ErrCodeUnknownOrganization: http.StatusNotFound,
	model.ErrCodeItemUnavailable:     http.StatusConflict,
	model.ErrCodeNoOpenItem:          http.StatusConflict,
	model.ErrCodeNoOrganization:      http.StatusConflict,
	model.ErrCodeImageTooLarge:       http.StatusRequestEntityTooLarge,
	model.ErrCodeRequestTooLarge:     http.StatusRequestEntityTooLarge,
	model.ErrCodeUnauthorised:        http.StatusUnauthorized,
	model.ErrCodeUpstreamUnavailable: http.StatusBadGateway,
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		return
	}
}

// writeData wraps data in a success envelope.
func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, model.Envelope{Success: true, Data: data})
}

// writeMessage writes a success envelope carrying only a message.
func writeMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, model.Envelope{Success: true, Message: message})
}

// writeError maps err to a status and writes a failure envelope. Platform answers keep
// their status, code and message; errors that are neither domain nor platform errors are
// reported as a generic internal error.
func writeError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	status, body := errorResponse(err)

	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Err(err).Int("status", status).Str("code", body.Code).Msg("handler error")

	writeJSON(w, status, body)
}

func errorResponse(err error) (int, model.Envelope) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		status, ok := statusByCode[domainErr.Code]
		if !ok {
			status = http.StatusBadRequest
		}
		return status, model.Envelope{Code: domainErr.Code, Message: domainErr.Message}
	}

	if apiErr, ok := platform.AsAPIError(err); ok {
		status := apiErr.StatusCode
		// the platform said no inside a 2xx envelope
		if apiErr.HTTPOK() {
			status = http.StatusUnprocessableEntity
		}
		return status, model.Envelope{Code: apiErr.Code, Message: apiErr.Message}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout, model.Envelope{Code: model.ErrCodeUpstreamUnavailable, Message: "Request timed out"}
	}

	return http.StatusInternalServerError, model.Envelope{Code: model.ErrCodeInternalError, Message: "Internal server error"}
}

// decodeJSON decodes the request body into v.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return bodyError(err)
	}
	return nil
}

// decodeOptionalJSON is decodeJSON for requests whose body may be left out; v then keeps
// its zero value.
func decodeOptionalJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return bodyError(err)
	}
	return nil
}

func bodyError(err error) error {
	if bodyTooLarge(err) {
		return model.ErrRequestTooLarge
	}
	return model.NewDomainError(model.ErrCodeInvalidJSON, "Invalid request body")
}

// currentSession returns the browser session attached by the session middleware.
func currentSession(w http.ResponseWriter, r *http.Request, logger zerolog.Logger) (*session.Session, bool) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeError(w, errors.New("no session in request context"), logger)
		return nil, false
	}
	return sess, true
}
