package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/design-hub/pkg/authapi"
	"github.com/JaimeStill/design-hub/pkg/handlers"
	"github.com/JaimeStill/design-hub/pkg/routes"
)

type Handler struct {
	auth        AuthSystem
	logger      *slog.Logger
	maxBodySize int64
}

func NewHandler(auth AuthSystem, logger *slog.Logger, maxBodySize int64) *Handler {
	return &Handler{
		auth:        auth,
		logger:      logger,
		maxBodySize: maxBodySize,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/auth",
		Description: "Signup and login relayed to the auth API",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/signup", Handler: h.Signup},
			{Method: "POST", Pattern: "/login", Handler: h.Login},
		},
	}
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	req, err := decode[SignupRequest](w, r, h.maxBodySize)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	body, err := h.auth.Signup(r.Context(), req.Username, req.Email, req.Password)
	h.relay(w, body, err)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	req, err := decode[LoginRequest](w, r, h.maxBodySize)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	body, err := h.auth.Login(r.Context(), req.Email, req.Password)
	h.relay(w, body, err)
}

// relay passes the upstream outcome through. Upstream rejections keep their
// status and body so the view can show the server's own message.
func (h *Handler) relay(w http.ResponseWriter, body []byte, err error) {
	var statusErr *authapi.StatusError
	switch {
	case err == nil:
		if body == nil {
			body = []byte("null")
		}
		handlers.RespondRaw(w, http.StatusOK, body)
	case errors.As(err, &statusErr):
		h.logger.Warn("auth api rejected request", "endpoint", statusErr.Endpoint, "status", statusErr.StatusCode)
		handlers.RespondBytes(w, statusErr.StatusCode, statusErr.ContentType, statusErr.Body)
	case errors.Is(err, authapi.ErrInvalidResponse):
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
	default:
		// transport errors name the upstream host; keep them in the log only
		h.logger.Error("auth api unreachable", "error", err)
		handlers.RespondJSON(w, MapHTTPStatus(err), map[string]string{"error": ErrAuthUnavailable.Error()})
	}
}
