package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMiddlewareAssignsRequestID(t *testing.T) {
	middleware := NewMiddleware("http://localhost:5173")
	wrapped := middleware.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	wrapped.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/activities", nil))

	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected X-Request-ID to be set")
	}
}

func TestMiddlewareKeepsCallerRequestID(t *testing.T) {
	middleware := NewMiddleware("http://localhost:5173")
	wrapped := middleware.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/activities", nil)
	req.Header.Set("X-Request-ID", "caller-id")
	rr := httptest.NewRecorder()
	wrapped.ServeHTTP(rr, req)

	if got := rr.Header().Get("X-Request-ID"); got != "caller-id" {
		t.Fatalf("expected caller-id got %q", got)
	}
}

func TestMiddlewareAnswersPreflight(t *testing.T) {
	called := false
	middleware := NewMiddleware("http://localhost:5173")
	wrapped := middleware.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rr := httptest.NewRecorder()
	wrapped.ServeHTTP(rr, httptest.NewRequest(http.MethodOptions, "/activities", nil))

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", rr.Code)
	}
	if called {
		t.Fatal("preflight should not reach the inner handler")
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("unexpected allow-origin %q", got)
	}
}
