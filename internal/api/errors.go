package api

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/design-hub/pkg/authapi"
)

var (
	ErrBadRequest      = errors.New("invalid request body")
	ErrBodyTooLarge    = errors.New("request body too large")

	// ErrAuthUnavailable is what the browser sees when the auth API cannot be reached.
	ErrAuthUnavailable = errors.New("auth service unavailable")
)

// MapHTTPStatus picks the status for errors that are not relayed verbatim.
// Upstream status errors never reach here; the handler relays them directly.
func MapHTTPStatus(err error) int {
	var statusErr *authapi.StatusError
	switch {
	case errors.As(err, &statusErr):
		return statusErr.StatusCode
	case errors.Is(err, ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}
