package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"solsite/apperr"
)

// envelope is the uniform response shape: success plus either data or a
// message, with per-field errors attached to validation failures.
type envelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func respondData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Success: true, Data: data})
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Success: true, Message: message})
}

func respondFailure(w http.ResponseWriter, status int, message string, errs ...string) {
	writeJSON(w, status, envelope{Success: false, Message: message, Errors: errs})
}

// serviceError maps service-layer failures onto HTTP responses. notFound
// is the owning package's sentinel, or nil when the operation cannot miss.
func (s *Server) serviceError(w http.ResponseWriter, r *http.Request, err error, notFound error) {
	var verr *apperr.ValidationError
	switch {
	case errors.As(err, &verr):
		respondFailure(w, http.StatusBadRequest, "Validation failed", verr.Violations...)
	case notFound != nil && errors.Is(err, notFound):
		respondFailure(w, http.StatusNotFound, "Not found")
	default:
		s.logger.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		respondFailure(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decodeBody parses a JSON request body, responding 400 itself on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondFailure(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
