package middleware

import (
	"net/http"
	"time"
)

// unmatchedRoute labels requests that matched no registered pattern.
const unmatchedRoute = "unmatched"

type httpObserver interface {
	ObserveHTTP(method, route string, status int, d time.Duration)
}

// Metrics returns middleware that records request count and latency per
// route pattern. It must wrap the ServeMux directly: the route label is
// read from the pattern the mux stores on the request.
func Metrics(obs httpObserver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)

			next.ServeHTTP(sw, r)

			route := r.Pattern
			if route == "" {
				route = unmatchedRoute
			}
			obs.ObserveHTTP(r.Method, route, sw.status, time.Since(start))
		})
	}
}
