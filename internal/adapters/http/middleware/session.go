package middleware

import (
	"context"
	"net/http"
)

// SessionStarter opens a request-scoped store session. The returned context
// carries the session; the returned function ends it.
type SessionStarter interface {
	BeginSession(ctx context.Context) (context.Context, func())
}

// Session returns middleware that gives each request its own store session,
// so every store call made while serving the request shares one connection.
// The session ends when the handler returns.
//
// This middleware should be registered after Timeout so that the session is
// released on the goroutine that runs the handler.
func Session(starter SessionStarter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, end := starter.BeginSession(r.Context())
			defer end()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
