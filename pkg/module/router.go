package module

import "net/http"

// Router dispatches to mounted modules and to native handlers registered
// directly on the top-level mux (health probes and the like).
type Router struct {
	mux *http.ServeMux
}

func NewRouter() *Router {
	return &Router{mux: http.NewServeMux()}
}

// HandleNative registers a handler without prefix stripping.
func (r *Router) HandleNative(pattern string, handler http.HandlerFunc) {
	r.mux.HandleFunc(pattern, handler)
}

// Mount routes the module prefix and everything beneath it to m. A module
// mounted at "/" receives every request no other pattern claims.
func (r *Router) Mount(m *Module) {
	if m.prefix == "/" {
		r.mux.HandleFunc("/", m.Serve)
		return
	}
	r.mux.HandleFunc(m.prefix, m.Serve)
	r.mux.HandleFunc(m.prefix+"/", m.Serve)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}
