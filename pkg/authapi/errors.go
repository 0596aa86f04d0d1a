package authapi

import (
	"errors"
	"fmt"
)

var (
	ErrMissingBaseURL  = errors.New("authapi: base url not configured")
	ErrInvalidBaseURL  = errors.New("authapi: invalid base url")
	ErrInvalidResponse = errors.New("authapi: response body is not JSON")
)

// StatusError reports a non-2xx response. Body holds the response bytes
// exactly as the server sent them.
type StatusError struct {
	Endpoint    string
	StatusCode  int
	ContentType string
	Body        []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("authapi: %s returned status %d", e.Endpoint, e.StatusCode)
}
