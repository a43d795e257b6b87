package platform

import (
	"errors"
	"fmt"
)

// APIError is an upstream answer that was not a success: either a non-2xx status or a 2xx
// envelope with success=false.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("platform: %d %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("platform: %d: %s", e.StatusCode, e.Message)
}

// HTTPOK reports whether the upstream status itself was successful.
func (e *APIError) HTTPOK() bool {
	return e.StatusCode >= 200 && e.StatusCode < 300
}

// AsAPIError unwraps err to an *APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
