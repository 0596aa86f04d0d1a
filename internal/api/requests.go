package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// SignupRequest is the form the signup view posts.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the form the login view posts.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func decode[T any](w http.ResponseWriter, r *http.Request, limit int64) (T, error) {
	var req T
	body := http.MaxBytesReader(w, r.Body, limit)

	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return req, fmt.Errorf("%w: limit %d bytes", ErrBodyTooLarge, maxErr.Limit)
		}
		if errors.Is(err, io.EOF) {
			return req, fmt.Errorf("%w: empty body", ErrBadRequest)
		}
		return req, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	return req, nil
}
