package api

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionExpired is returned when the server signals that the
	// session lapsed due to inactivity. The gateway has already cleared
	// the credential store and notified the SessionHandler by the time
	// this error reaches the caller.
	ErrSessionExpired = errors.New("session expired")

	// ErrUnavailable means the server answered the health probe but did
	// not report a healthy status.
	ErrUnavailable = errors.New("server unavailable")
)

// APIError is a non-2xx response that is not a session expiry.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// newAPIError picks the error message by the documented fallback chain:
// structured detail field, then the raw payload (JSON payloads without a
// string detail are compacted to their JSON text), then a synthesized
// status-code message.
func newAPIError(status int, detail string, hasDetail bool, res *Result) *APIError {
	msg := fmt.Sprintf("HTTP error, status %d", status)
	switch {
	case hasDetail:
		msg = detail
	case len(res.JSON) > 0:
		msg = compactJSON(res.JSON)
	case res.Text != "":
		msg = res.Text
	}
	return &APIError{StatusCode: status, Message: msg}
}
