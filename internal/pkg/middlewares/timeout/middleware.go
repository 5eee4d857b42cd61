package timeout

import (
	"context"
	"net/http"
	"time"
)

// Middleware bounds every request. The parent is the server BaseContext,
// which outlives SIGTERM until in-flight requests drain.
func Middleware(limit time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), limit)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
