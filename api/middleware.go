package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"solsite/auth"
)

type ctxKey string

const ctxAccountID ctxKey = "accountID"

// accountID extracts the verified account id set by authenticate.
func accountID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxAccountID).(string)
	return id, ok
}

// authenticate verifies the bearer token and stores the bound account id
// in the request context. The token only proves identity; authorization
// is decided per request by requireAdmin.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			respondFailure(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		id, err := s.auth.VerifyToken(token)
		if err != nil {
			respondFailure(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxAccountID, id)))
	})
}

// requireAdmin re-reads the admin flag from the store on every request,
// so a demotion takes effect immediately even for live tokens.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := accountID(r.Context())
		if !ok {
			respondFailure(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		isAdmin, err := s.auth.IsAdmin(r.Context(), id)
		if err != nil {
			if errors.Is(err, auth.ErrAccountNotFound) {
				respondFailure(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			s.serviceError(w, r, err, nil)
			return
		}
		if !isAdmin {
			respondFailure(w, http.StatusForbidden, "Admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// recovery turns handler panics into a 500 instead of dropping the
// connection.
func (s *Server) recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.ErrorContext(r.Context(), "handler panic",
					"method", r.Method,
					"path", r.URL.Path,
					"panic", rec,
				)
				respondFailure(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// cors answers preflight requests and stamps the configured origin on
// every response.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.corsOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// instrument logs each request and feeds the metrics collector, labelled
// by the matched route pattern rather than the raw path.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		elapsed := time.Since(start)

		if s.metrics != nil {
			s.metrics.RecordRequest(r.Method, route, sw.status, elapsed)
		}
		s.logger.InfoContext(r.Context(), "request",
			"method", r.Method,
			"route", route,
			"status", sw.status,
			"duration_ms", elapsed.Milliseconds(),
		)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
