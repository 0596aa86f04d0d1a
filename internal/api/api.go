// Package api exposes the auth pass-through endpoints the views post to.
// Requests are decoded, forwarded to the remote auth API, and the upstream
// response is relayed to the browser without reinterpretation.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/design-hub/internal/config"
	"github.com/JaimeStill/design-hub/pkg/middleware"
	"github.com/JaimeStill/design-hub/pkg/module"
	"github.com/JaimeStill/design-hub/pkg/routes"
)

// Prefix is where the module is mounted.
const Prefix = "/api"

// AuthSystem is the remote auth API. *authapi.Client satisfies it.
type AuthSystem interface {
	Signup(ctx context.Context, username, email, password string) (json.RawMessage, error)
	Login(ctx context.Context, email, password string) (json.RawMessage, error)
}

// NewModule builds the /api module around auth.
func NewModule(cfg *config.Config, auth AuthSystem, logger *slog.Logger) *module.Module {
	h := NewHandler(auth, logger, cfg.API.MaxBodySizeBytes())

	mux := http.NewServeMux()
	routes.Register(mux, h.Routes())

	m := module.New(Prefix, mux)
	m.Use(middleware.Logger(logger))
	m.Use(middleware.TrimSlash())
	m.Use(middleware.CORS(&cfg.CORS))
	return m
}
