package web

import (
	"io/fs"
	"mime"
	"net/http"
	"path"
)

// PublicRoute serves a single embedded file at the site root.
type PublicRoute struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// PublicFileRoutes builds one GET route per file in dir so files such as
// favicons are reachable at "/<name>".
func PublicFileRoutes(fsys fs.FS, dir string, files ...string) []PublicRoute {
	routes := make([]PublicRoute, 0, len(files))
	for _, name := range files {
		routes = append(routes, PublicRoute{
			Method:  http.MethodGet,
			Pattern: "/" + name,
			Handler: serveFile(fsys, path.Join(dir, name)),
		})
	}
	return routes
}

func serveFile(fsys fs.FS, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
			w.Header().Set("Content-Type", ct)
		}
		w.Write(data)
	}
}
