package event

import (
	"context"
	"strings"

	"solsite/apperr"
)

// Repository defines the data access required by the service.
type Repository interface {
	Create(ctx context.Context, params CreateParams) (Registration, error)
	List(ctx context.Context) ([]Registration, error)
	GetByID(ctx context.Context, id string) (Registration, error)
	Delete(ctx context.Context, id string) error
}

// Service exposes business-level event-registration operations.
type Service struct {
	repo Repository
}

// NewService builds a Service using the provided repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and persists a registration.
func (s *Service) Create(ctx context.Context, params CreateParams) (Registration, error) {
	params.EventTitle = strings.TrimSpace(params.EventTitle)
	params.EventDate = strings.TrimSpace(params.EventDate)
	params.FullName = strings.TrimSpace(params.FullName)
	params.Email = strings.TrimSpace(params.Email)
	params.Phone = strings.TrimSpace(params.Phone)

	var violations []string
	if params.EventTitle == "" {
		violations = append(violations, "event title is required")
	}
	if params.FullName == "" {
		violations = append(violations, "full name is required")
	}
	if params.Email == "" {
		violations = append(violations, "email is required")
	}
	if len(violations) > 0 {
		return Registration{}, apperr.NewValidation(violations...)
	}

	return s.repo.Create(ctx, params)
}

// List returns all registrations for the admin console, newest first.
func (s *Service) List(ctx context.Context) ([]Registration, error) {
	return s.repo.List(ctx)
}

// GetByID returns one registration.
func (s *Service) GetByID(ctx context.Context, id string) (Registration, error) {
	return s.repo.GetByID(ctx, id)
}

// Delete removes a registration.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
