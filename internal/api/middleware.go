package api

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Middleware bundles the cross-cutting HTTP concerns: request-ID tagging,
// request logging, and CORS for the local dev frontend.
type Middleware struct {
	corsOrigin string
}

// NewMiddleware constructs Middleware allowing the given CORS origin.
func NewMiddleware(corsOrigin string) Middleware {
	return Middleware{corsOrigin: corsOrigin}
}

// Wrap attaches the middleware chain to an http.Handler.
func (m Middleware) Wrap(next http.Handler) http.Handler {
	return m.cors(m.logRequests(next))
}

func (m Middleware) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s request_id=%s duration=%s", r.Method, r.URL.Path, requestID, time.Since(start))
	})
}

func (m Middleware) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", m.corsOrigin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
