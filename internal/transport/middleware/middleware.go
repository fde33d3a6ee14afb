// Package middleware holds the HTTP middleware shared by all routes.
package middleware

import "net/http"

// Middleware wraps an http.Handler. It converts directly to mux.MiddlewareFunc.
type Middleware func(http.Handler) http.Handler
