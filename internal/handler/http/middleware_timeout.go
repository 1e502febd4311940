package http

import (
	"context"
	"net/http"
	"time"
)

// withRequestTimeout bounds the request context. Outbound calls made with it
// fail once the deadline passes and the dispatcher answers 500.
func withRequestTimeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if timeout <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
