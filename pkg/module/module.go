// Package module mounts self-contained http.Handlers under a single path prefix.
// A module owns everything beneath its prefix and sees request paths with the
// prefix removed, so it can be mounted elsewhere without changing its routes.
package module

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/JaimeStill/design-hub/pkg/middleware"
)

// Module is a handler bound to a prefix plus the middleware applied to it.
type Module struct {
	prefix     string
	handler    http.Handler
	middleware []middleware.Func
}

// New creates a module. The prefix must be "/" or a single segment such as "/api".
// Invalid prefixes panic since they are programming errors caught at startup.
func New(prefix string, handler http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{
		prefix:  prefix,
		handler: handler,
	}
}

func (m *Module) Prefix() string {
	return m.prefix
}

// Use appends middleware. The first registered middleware runs first.
func (m *Module) Use(mw middleware.Func) {
	m.middleware = append(m.middleware, mw)
}

// Handler returns the module handler wrapped in its middleware. Middleware
// sees the full request path; the prefix is stripped just before the module
// handler runs so redirects and logs keep their public URLs.
func (m *Module) Handler() http.Handler {
	return middleware.Chain(http.HandlerFunc(m.strip), m.middleware...)
}

// Serve dispatches r through the module middleware and handler.
func (m *Module) Serve(w http.ResponseWriter, r *http.Request) {
	m.Handler().ServeHTTP(w, r)
}

func (m *Module) strip(w http.ResponseWriter, r *http.Request) {
	if m.prefix == "/" {
		m.handler.ServeHTTP(w, r)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, m.prefix)
	if path == "" {
		path = "/"
	}

	r2 := r.Clone(r.Context())
	r2.URL.Path = path
	r2.URL.RawPath = ""

	m.handler.ServeHTTP(w, r2)
}

func validatePrefix(prefix string) error {
	if prefix == "/" {
		return nil
	}
	if prefix == "" || !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("module prefix %q must start with /", prefix)
	}
	if strings.Count(prefix, "/") != 1 {
		return fmt.Errorf("module prefix %q must be a single path segment", prefix)
	}
	return nil
}
