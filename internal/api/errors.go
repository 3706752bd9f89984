package api

import (
	"errors"
	"fmt"
)

// ErrUnreachable means no HTTP response arrived at all. UI forms render it
// as a generic "server unreachable" message.
var ErrUnreachable = errors.New("server unreachable")

// StatusError is a non-2xx response from the Horizon API. Message carries
// the server's message code; Fields carries the per-field validation map
// on 412 rejections.
type StatusError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.StatusCode)
}

// IsUnauthorized reports whether err is a 401 from the API.
func IsUnauthorized(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == 401
}

// AsValidation returns the per-field error map when err is a 412
// validation rejection.
func AsValidation(err error) (map[string]string, bool) {
	var se *StatusError
	if errors.As(err, &se) && se.StatusCode == 412 && len(se.Fields) > 0 {
		return se.Fields, true
	}
	return nil, false
}

// MessageCode returns the server message code carried by err, if any.
func MessageCode(err error) string {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Message
	}
	return ""
}
