package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"solsite/feedback"
)

type feedbackResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Occupation *string   `json:"occupation"`
	Email      *string   `json:"email"`
	Rating     int       `json:"rating"`
	Message    string    `json:"message"`
	Approved   bool      `json:"approved"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toFeedbackResponse(rec feedback.Record) feedbackResponse {
	return feedbackResponse{
		ID:         rec.ID,
		Name:       rec.Name,
		Occupation: rec.Occupation,
		Email:      rec.Email,
		Rating:     rec.Rating,
		Message:    rec.Message,
		Approved:   rec.Approved,
		CreatedAt:  rec.CreatedAt,
	}
}

func toFeedbackResponses(recs []feedback.Record) []feedbackResponse {
	out := make([]feedbackResponse, len(recs))
	for i, rec := range recs {
		out[i] = toFeedbackResponse(rec)
	}
	return out
}

type createFeedbackRequest struct {
	Name       string `json:"name"`
	Occupation string `json:"occupation"`
	Email      string `json:"email"`
	Rating     int    `json:"rating"`
	Message    string `json:"message"`
}

func (s *Server) handleListApprovedFeedback(w http.ResponseWriter, r *http.Request) {
	recs, err := s.feedback.ListApproved(r.Context())
	if err != nil {
		s.serviceError(w, r, err, nil)
		return
	}
	respondData(w, http.StatusOK, toFeedbackResponses(recs))
}

func (s *Server) handleListPendingFeedback(w http.ResponseWriter, r *http.Request) {
	recs, err := s.feedback.ListPending(r.Context())
	if err != nil {
		s.serviceError(w, r, err, nil)
		return
	}
	respondData(w, http.StatusOK, toFeedbackResponses(recs))
}

func (s *Server) handleCreateFeedback(w http.ResponseWriter, r *http.Request) {
	var req createFeedbackRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rec, err := s.feedback.Create(r.Context(), feedback.CreateParams{
		Name:       req.Name,
		Occupation: req.Occupation,
		Email:      req.Email,
		Rating:     req.Rating,
		Message:    req.Message,
	})
	if err != nil {
		s.serviceError(w, r, err, nil)
		return
	}

	respondData(w, http.StatusCreated, toFeedbackResponse(rec))
}

func (s *Server) handleApproveFeedback(w http.ResponseWriter, r *http.Request) {
	if err := s.feedback.Approve(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.serviceError(w, r, err, feedback.ErrNotFound)
		return
	}
	respondMessage(w, http.StatusOK, "Feedback approved")
}

func (s *Server) handleDeleteFeedback(w http.ResponseWriter, r *http.Request) {
	if err := s.feedback.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.serviceError(w, r, err, feedback.ErrNotFound)
		return
	}
	respondMessage(w, http.StatusOK, "Feedback deleted")
}
