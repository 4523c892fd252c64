package api

import (
	"errors"
	"net/http"
	"time"

	"solsite/auth"
)

type accountResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

func toAccountResponse(a auth.Account) accountResponse {
	return accountResponse{
		ID:        a.ID,
		Email:     a.Email,
		Name:      a.Name,
		IsAdmin:   a.IsAdmin,
		CreatedAt: a.CreatedAt,
	}
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	account, err := s.auth.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, auth.ErrDuplicateEmail) {
			respondFailure(w, http.StatusConflict, "Email already registered")
			return
		}
		s.serviceError(w, r, err, nil)
		return
	}

	respondData(w, http.StatusCreated, toAccountResponse(*account))
}

type loginResponse struct {
	Token string          `json:"token"`
	User  accountResponse `json:"user"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := s.auth.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			respondFailure(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		s.serviceError(w, r, err, nil)
		return
	}

	respondData(w, http.StatusOK, loginResponse{
		Token: result.Token,
		User:  toAccountResponse(result.Account),
	})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(r.Context())
	if !ok {
		respondFailure(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	account, err := s.auth.GetProfile(r.Context(), id)
	if err != nil {
		s.serviceError(w, r, err, auth.ErrAccountNotFound)
		return
	}

	respondData(w, http.StatusOK, toAccountResponse(*account))
}
