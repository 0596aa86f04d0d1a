package main

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/design-hub/internal/api"
	"github.com/JaimeStill/design-hub/internal/config"
	"github.com/JaimeStill/design-hub/pkg/lifecycle"
	"github.com/JaimeStill/design-hub/pkg/middleware"
	"github.com/JaimeStill/design-hub/pkg/module"
	"github.com/JaimeStill/design-hub/web/app"
)

type Modules struct {
	API *module.Module
	App *module.Module
}

func NewModules(cfg *config.Config, auth api.AuthSystem, logger *slog.Logger) (*Modules, error) {
	apiModule := api.NewModule(cfg, auth, logger)

	appModule, err := app.NewModule("/")
	if err != nil {
		return nil, err
	}
	appModule.Use(middleware.Logger(logger))
	appModule.Use(middleware.TrimSlash())

	return &Modules{
		API: apiModule,
		App: appModule,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.Mount(m.App)
}

func buildRouter(ready lifecycle.ReadinessChecker) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !ready.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	return router
}
