package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"solsite/contact"
)

type contactResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone"`
	CompanyName *string   `json:"companyName"`
	Country     *string   `json:"country"`
	Job         *string   `json:"job"`
	JobDetails  *string   `json:"jobDetails"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toContactResponse(rec contact.Record) contactResponse {
	return contactResponse{
		ID:          rec.ID,
		Name:        rec.Name,
		Email:       rec.Email,
		Phone:       rec.Phone,
		CompanyName: rec.CompanyName,
		Country:     rec.Country,
		Job:         rec.Job,
		JobDetails:  rec.JobDetails,
		Message:     rec.Message,
		CreatedAt:   rec.CreatedAt,
	}
}

type createContactRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CompanyName string `json:"companyName"`
	Country     string `json:"country"`
	Job         string `json:"job"`
	JobDetails  string `json:"jobDetails"`
	Message     string `json:"message"`
}

func (s *Server) handleCreateContact(w http.ResponseWriter, r *http.Request) {
	var req createContactRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rec, err := s.contact.Create(r.Context(), contact.CreateParams{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		CompanyName: req.CompanyName,
		Country:     req.Country,
		Job:         req.Job,
		JobDetails:  req.JobDetails,
		Message:     req.Message,
	})
	if err != nil {
		s.serviceError(w, r, err, nil)
		return
	}

	respondData(w, http.StatusCreated, toContactResponse(rec))
}

func (s *Server) handleListContacts(w http.ResponseWriter, r *http.Request) {
	recs, err := s.contact.List(r.Context())
	if err != nil {
		s.serviceError(w, r, err, nil)
		return
	}

	out := make([]contactResponse, len(recs))
	for i, rec := range recs {
		out[i] = toContactResponse(rec)
	}
	respondData(w, http.StatusOK, out)
}

func (s *Server) handleGetContact(w http.ResponseWriter, r *http.Request) {
	rec, err := s.contact.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.serviceError(w, r, err, contact.ErrNotFound)
		return
	}
	respondData(w, http.StatusOK, toContactResponse(rec))
}

func (s *Server) handleDeleteContact(w http.ResponseWriter, r *http.Request) {
	if err := s.contact.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.serviceError(w, r, err, contact.ErrNotFound)
		return
	}
	respondMessage(w, http.StatusOK, "Message deleted")
}
