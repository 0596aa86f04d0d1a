package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/JaimeStill/design-hub/internal/config"
	"github.com/JaimeStill/design-hub/pkg/authapi"
	"github.com/JaimeStill/design-hub/pkg/lifecycle"
	"github.com/JaimeStill/design-hub/pkg/logging"
)

// Server owns the subsystems of the process and their lifecycle.
type Server struct {
	lifecycle *lifecycle.Coordinator
	logger    *slog.Logger
	handler   http.Handler
	http      *httpServer
}

// NewServer wires the auth client, modules and HTTP listener from cfg.
// The auth base URL is read from cfg here and nowhere else.
func NewServer(cfg *config.Config) (*Server, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging, nil)

	auth := authapi.New(&cfg.Auth, authapi.WithLogger(logger))

	modules, err := NewModules(cfg, auth, logger)
	if err != nil {
		return nil, err
	}

	router := buildRouter(lc)
	modules.Mount(router)

	logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
		"auth_api", auth.BaseURL(),
	)

	return &Server{
		lifecycle: lc,
		logger:    logger,
		handler:   router,
		http:      newHTTPServer(&cfg.Server, cfg.ShutdownTimeoutDuration(), router, logger),
	}, nil
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) Start() error {
	s.logger.Info("starting service")

	if err := s.http.Start(s.lifecycle); err != nil {
		return err
	}

	go func() {
		s.lifecycle.WaitForStartup()
		s.logger.Info("all subsystems ready")
	}()

	return nil
}

// Shutdown stops all subsystems, failing if they do not finish within timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.logger.Info("initiating shutdown")
	return s.lifecycle.Shutdown(timeout)
}
