package api

import "fmt"

// Error classifies a failed remote call. Code is a display-only label
// ("401", "404", "409", "500", "501", "502") surfaced on the alert
// screen; Message carries the server-provided message when one was
// present. Err holds the underlying transport error, if any.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Code != "":
		return fmt.Sprintf("remote api: %s (code %s)", e.Message, e.Code)
	case e.Message != "":
		return "remote api: " + e.Message
	case e.Err != nil:
		return "remote api: " + e.Err.Error()
	default:
		return "remote api: request failed (code " + e.Code + ")"
	}
}

func (e *Error) Unwrap() error { return e.Err }

// ErrNoCredential is returned before any network call when an operation
// requires a bearer token and none is present.
var ErrNoCredential = &Error{Code: "401", Message: "Authentication token not found. Please log in again."}

// ErrorCode extracts the display code from an error, or "" when the
// error is not a remote call failure.
func ErrorCode(err error) string {
	if apiErr, ok := asError(err); ok {
		return apiErr.Code
	}
	return ""
}

// ErrorMessage extracts the server-provided message from an error.
func ErrorMessage(err error) string {
	if apiErr, ok := asError(err); ok {
		return apiErr.Message
	}
	return ""
}
