package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"solsite/event"
)

type registrationResponse struct {
	ID         string    `json:"id"`
	EventTitle string    `json:"eventTitle"`
	EventDate  *string   `json:"eventDate"`
	FullName   string    `json:"fullName"`
	Email      string    `json:"email"`
	Phone      *string   `json:"phone"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toRegistrationResponse(reg event.Registration) registrationResponse {
	return registrationResponse{
		ID:         reg.ID,
		EventTitle: reg.EventTitle,
		EventDate:  reg.EventDate,
		FullName:   reg.FullName,
		Email:      reg.Email,
		Phone:      reg.Phone,
		CreatedAt:  reg.CreatedAt,
	}
}

type createRegistrationRequest struct {
	EventTitle string `json:"eventTitle"`
	EventDate  string `json:"eventDate"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

func (s *Server) handleCreateRegistration(w http.ResponseWriter, r *http.Request) {
	var req createRegistrationRequest
	if !decodeBody(w, r, &req) {
		return
	}

	reg, err := s.events.Create(r.Context(), event.CreateParams{
		EventTitle: req.EventTitle,
		EventDate:  req.EventDate,
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      req.Phone,
	})
	if err != nil {
		s.serviceError(w, r, err, nil)
		return
	}

	respondData(w, http.StatusCreated, toRegistrationResponse(reg))
}

func (s *Server) handleListRegistrations(w http.ResponseWriter, r *http.Request) {
	regs, err := s.events.List(r.Context())
	if err != nil {
		s.serviceError(w, r, err, nil)
		return
	}

	out := make([]registrationResponse, len(regs))
	for i, reg := range regs {
		out[i] = toRegistrationResponse(reg)
	}
	respondData(w, http.StatusOK, out)
}

func (s *Server) handleGetRegistration(w http.ResponseWriter, r *http.Request) {
	reg, err := s.events.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.serviceError(w, r, err, event.ErrNotFound)
		return
	}
	respondData(w, http.StatusOK, toRegistrationResponse(reg))
}

func (s *Server) handleDeleteRegistration(w http.ResponseWriter, r *http.Request) {
	if err := s.events.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.serviceError(w, r, err, event.ErrNotFound)
		return
	}
	respondMessage(w, http.StatusOK, "Registration deleted")
}
