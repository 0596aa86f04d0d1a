package middleware

import (
	"net/http"
	"strings"
)

// TrimSlash redirects "/about/" to "/about". The root path is left alone so
// the home view keeps its canonical URL.
func TrimSlash() Func {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := r.URL.Path
			if len(p) <= 1 || !strings.HasSuffix(p, "/") {
				next.ServeHTTP(w, r)
				return
			}

			target := strings.TrimRight(p, "/")
			if target == "" {
				target = "/"
			}
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}

			status := http.StatusMovedPermanently
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				status = http.StatusPermanentRedirect
			}
			http.Redirect(w, r, target, status)
		})
	}
}
