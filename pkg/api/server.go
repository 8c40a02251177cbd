package api

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/azybler/evepath/pkg/routing"
)

// Server wires the routing core to an HTTP mux, applying a fixed
// middleware stack: security headers, CORS, panic recovery, a per-request
// timeout, and a concurrency ceiling independent of the path service's own
// search gate.
type Server struct {
	Router *routing.Router
	mux    *http.ServeMux
}

// NewServer builds a Server with routes registered and middleware applied.
func NewServer(router *routing.Router) *Server {
	s := &Server{Router: router, mux: http.NewServeMux()}

	s.mux.HandleFunc("GET /{$}", s.HandleRoot)
	s.mux.HandleFunc("POST /api/path", s.HandlePath)
	s.mux.HandleFunc("POST /api/near", s.HandleNear)
	s.mux.HandleFunc("POST /api/v1/path", s.HandlePath)
	s.mux.HandleFunc("POST /api/v1/near", s.HandleNear)

	return s
}

// Handler returns the fully wrapped http.Handler, ready to pass to
// http.Server.
func (s *Server) Handler(maxInFlight int) http.Handler {
	var h http.Handler = s.mux
	h = withTimeout(h, 30*time.Second)
	h = withConcurrencyLimit(h, maxInFlight)
	h = withRecovery(h)
	h = withCORS(h)
	h = withSecurityHeaders(h)
	h = withRequestID(h)
	return h
}

func withSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("api: panic handling %s %s: %v", r.Method, r.URL.Path, rec)
				writeError(w, http.StatusInternalServerError, "internal error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func withTimeout(next http.Handler, d time.Duration) http.Handler {
	return http.TimeoutHandler(next, d, `{"error":"request timed out"}`)
}

// withConcurrencyLimit caps simultaneous in-flight requests with an inline
// channel semaphore, independent of the search engine's own gate: it
// bounds total HTTP work, not just path queries.
func withConcurrencyLimit(next http.Handler, max int) http.Handler {
	if max <= 0 {
		max = 10
	}
	tokens := make(chan struct{}, max)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case tokens <- struct{}{}:
			defer func() { <-tokens }()
			next.ServeHTTP(w, r)
		default:
			writeError(w, http.StatusServiceUnavailable, "too many concurrent requests")
		}
	})
}

type requestIDKey struct{}

func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		start := time.Now()
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
		log.Printf("api: request_id=%s method=%s path=%s duration=%s", id, r.Method, r.URL.Path, time.Since(start))
	})
}
