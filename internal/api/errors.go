package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"arena/internal/errors"
)

// Error represents a non-2xx response from the backend. Transport failures
// (no response received at all) are never wrapped in an Error so callers can
// distinguish "offline" from "rejected".
type Error struct {
	// StatusCode is the HTTP status code.
	StatusCode int `json:"-"`
	// Message is the server-provided message, verbatim when available.
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
	}

	return fmt.Sprintf("api: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// IsNotFound returns true when the error is a 404 response. On the profile
// probe this is a valid business state, not a failure.
func (e *Error) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized returns true when the error is a 401 response.
func (e *Error) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// IsForbidden returns true when the error is a 403 response.
func (e *Error) IsForbidden() bool {
	return e.StatusCode == http.StatusForbidden
}

// AsError extracts an *Error from anywhere in err's chain.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}

// IsNotFound reports whether err carries a 404 response.
func IsNotFound(err error) bool {
	apiErr, ok := AsError(err)

	return ok && apiErr.IsNotFound()
}

// IsUnauthorized reports whether err carries a 401 response.
func IsUnauthorized(err error) bool {
	apiErr, ok := AsError(err)

	return ok && apiErr.IsUnauthorized()
}

// IsForbidden reports whether err carries a 403 response.
func IsForbidden(err error) bool {
	apiErr, ok := AsError(err)

	return ok && apiErr.IsForbidden()
}

// IsTransport reports whether err is a failure that produced no HTTP
// response at all (connection refused, DNS failure, timeout).
func IsTransport(err error) bool {
	if err == nil {
		return false
	}
	_, ok := AsError(err)

	return !ok
}

// parseError builds an *Error from a non-2xx response body. Error bodies are
// "{message}" shaped; anything unparsable falls back to the status text.
func parseError(statusCode int, body []byte) error {
	apiErr := &Error{StatusCode: statusCode}

	if len(body) > 0 {
		var payload struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body, &payload); err == nil {
			apiErr.Message = payload.Message
		}
	}

	return apiErr
}
