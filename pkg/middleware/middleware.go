// Package middleware provides composable http.Handler wrappers shared by modules.
package middleware

import "net/http"

// Func wraps an http.Handler.
type Func func(http.Handler) http.Handler

// Chain applies mw to h so that mw[0] is the outermost wrapper.
func Chain(h http.Handler, mw ...Func) http.Handler {
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	return h
}
