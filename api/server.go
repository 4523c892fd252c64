// Package api exposes the HTTP surface of the site backend: public
// content and submission endpoints plus an admin console guarded by
// bearer tokens and a fresh per-request admin check.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"solsite/article"
	"solsite/auth"
	"solsite/contact"
	"solsite/event"
	"solsite/feedback"
	"solsite/job"
	"solsite/metrics"
	"solsite/solution"
	"solsite/upload"
)

// ServerConfig carries the wired services and runtime knobs.
type ServerConfig struct {
	Logger   *slog.Logger
	Metrics  *metrics.Collector
	Gatherer prometheus.Gatherer

	Auth      *auth.Service
	Articles  *article.Service
	Solutions *solution.Service
	Feedback  *feedback.Service
	Contact   *contact.Service
	Events    *event.Service
	Jobs      *job.Service

	MaxUploadBytes    int64
	CORSAllowedOrigin string
}

// Server routes HTTP requests to the domain services.
type Server struct {
	logger   *slog.Logger
	metrics  *metrics.Collector
	gatherer prometheus.Gatherer

	auth      *auth.Service
	articles  *article.Service
	solutions *solution.Service
	feedback  *feedback.Service
	contact   *contact.Service
	events    *event.Service
	jobs      *job.Service

	maxUploadBytes int64
	corsOrigin     string
}

// NewServer builds a Server from already-constructed services.
func NewServer(cfg ServerConfig) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	maxUpload := cfg.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = upload.DefaultMaxBytes
	}
	origin := cfg.CORSAllowedOrigin
	if origin == "" {
		origin = "*"
	}

	return &Server{
		logger:         logger,
		metrics:        cfg.Metrics,
		gatherer:       cfg.Gatherer,
		auth:           cfg.Auth,
		articles:       cfg.Articles,
		solutions:      cfg.Solutions,
		feedback:       cfg.Feedback,
		contact:        cfg.Contact,
		events:         cfg.Events,
		jobs:           cfg.Jobs,
		maxUploadBytes: maxUpload,
		corsOrigin:     origin,
	}
}

// Router assembles the full route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(s.recovery)
	r.Use(s.cors)
	r.Use(s.instrument)

	r.Get("/health", s.handleHealth)
	if s.gatherer != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(s.gatherer))
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", s.handleRegister)
			r.Post("/login", s.handleLogin)
			r.With(s.authenticate).Get("/profile", s.handleProfile)
		})

		r.Route("/articles", func(r chi.Router) {
			r.Get("/", s.handleListArticles)
			r.Get("/{id}", s.handleGetArticle)
			r.Group(func(r chi.Router) {
				r.Use(s.authenticate, s.requireAdmin)
				r.Post("/", s.handleCreateArticle)
				r.Put("/{id}", s.handleUpdateArticle)
				r.Delete("/{id}", s.handleDeleteArticle)
			})
		})

		r.Route("/solutions", func(r chi.Router) {
			r.Get("/", s.handleListSolutions)
			r.Get("/{id}", s.handleGetSolution)
			r.Group(func(r chi.Router) {
				r.Use(s.authenticate, s.requireAdmin)
				r.Post("/", s.handleCreateSolution)
				r.Put("/{id}", s.handleUpdateSolution)
				r.Delete("/{id}", s.handleDeleteSolution)
			})
		})

		r.Route("/feedback", func(r chi.Router) {
			r.Get("/", s.handleListApprovedFeedback)
			r.Post("/", s.handleCreateFeedback)
			r.Group(func(r chi.Router) {
				r.Use(s.authenticate, s.requireAdmin)
				r.Get("/pending", s.handleListPendingFeedback)
				r.Put("/{id}/approve", s.handleApproveFeedback)
				r.Delete("/{id}", s.handleDeleteFeedback)
			})
		})

		r.Route("/contact", func(r chi.Router) {
			r.Post("/", s.handleCreateContact)
			r.Group(func(r chi.Router) {
				r.Use(s.authenticate, s.requireAdmin)
				r.Get("/", s.handleListContacts)
				r.Get("/{id}", s.handleGetContact)
				r.Delete("/{id}", s.handleDeleteContact)
			})
		})

		r.Route("/event-registrations", func(r chi.Router) {
			r.Post("/", s.handleCreateRegistration)
			r.Group(func(r chi.Router) {
				r.Use(s.authenticate, s.requireAdmin)
				r.Get("/", s.handleListRegistrations)
				r.Get("/{id}", s.handleGetRegistration)
				r.Delete("/{id}", s.handleDeleteRegistration)
			})
		})

		r.Route("/jobs", func(r chi.Router) {
			r.Post("/", s.handleCreateJob)
			r.Group(func(r chi.Router) {
				r.Use(s.authenticate, s.requireAdmin)
				r.Get("/", s.handleListJobs)
				r.Get("/{id}", s.handleGetJob)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondFailure(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respondFailure(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondData(w, http.StatusOK, map[string]string{"status": "ok"})
}
