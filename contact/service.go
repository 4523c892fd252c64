package contact

import (
	"context"
	"strings"

	"solsite/apperr"
)

// Repository defines the data access required by the service.
type Repository interface {
	Create(ctx context.Context, params CreateParams, packedMessage string) (Record, error)
	List(ctx context.Context) ([]Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	Delete(ctx context.Context, id string) error
}

// Service exposes business-level contact-message operations.
type Service struct {
	repo Repository
}

// NewService builds a Service using the provided repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and persists a contact message. Either JobDetails
// (current form) or Message (legacy form) must carry the requirement
// text.
func (s *Service) Create(ctx context.Context, params CreateParams) (Record, error) {
	params.Name = strings.TrimSpace(params.Name)
	params.Email = strings.TrimSpace(params.Email)
	params.Phone = strings.TrimSpace(params.Phone)
	params.CompanyName = strings.TrimSpace(params.CompanyName)
	params.Country = strings.TrimSpace(params.Country)
	params.Job = strings.TrimSpace(params.Job)
	params.JobDetails = strings.TrimSpace(params.JobDetails)
	params.Message = strings.TrimSpace(params.Message)

	var violations []string
	if params.Name == "" {
		violations = append(violations, "name is required")
	}
	if params.Email == "" {
		violations = append(violations, "email is required")
	}
	if params.JobDetails == "" && params.Message == "" {
		violations = append(violations, "requirement details are required")
	}
	if len(violations) > 0 {
		return Record{}, apperr.NewValidation(violations...)
	}

	return s.repo.Create(ctx, params, params.packedMessage())
}

// List returns all messages for the admin console, newest first.
func (s *Service) List(ctx context.Context) ([]Record, error) {
	return s.repo.List(ctx)
}

// GetByID returns one message.
func (s *Service) GetByID(ctx context.Context, id string) (Record, error) {
	return s.repo.GetByID(ctx, id)
}

// Delete removes a message.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
