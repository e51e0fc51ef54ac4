package http

import (
	"context"
	"net/http"
	"time"
)

// withRequestTimeout bounds the request context by d. It never writes to the
// response: a handler whose provider call runs out of time answers the
// rest_request_timeout envelope itself.
func withRequestTimeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
