package feedback

import (
	"context"
	"strings"

	"solsite/apperr"
)

// Repository defines the data access required by the service.
type Repository interface {
	Create(ctx context.Context, params CreateParams) (Record, error)
	ListApproved(ctx context.Context) ([]Record, error)
	ListPending(ctx context.Context) ([]Record, error)
	Approve(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// Service exposes business-level feedback operations.
type Service struct {
	repo Repository
}

// NewService builds a Service using the provided repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and persists a new submission. New feedback is always
// unapproved regardless of caller input.
func (s *Service) Create(ctx context.Context, params CreateParams) (Record, error) {
	params.Name = strings.TrimSpace(params.Name)
	params.Occupation = strings.TrimSpace(params.Occupation)
	params.Email = strings.TrimSpace(params.Email)
	params.Message = strings.TrimSpace(params.Message)

	var violations []string
	if params.Name == "" {
		violations = append(violations, "name is required")
	}
	if params.Rating < 1 || params.Rating > 5 {
		violations = append(violations, "rating must be between 1 and 5")
	}
	if params.Message == "" {
		violations = append(violations, "message is required")
	}
	if len(violations) > 0 {
		return Record{}, apperr.NewValidation(violations...)
	}

	return s.repo.Create(ctx, params)
}

// ListApproved returns the public carousel entries, newest first.
func (s *Service) ListApproved(ctx context.Context) ([]Record, error) {
	return s.repo.ListApproved(ctx)
}

// ListPending returns submissions awaiting moderation, newest first.
func (s *Service) ListPending(ctx context.Context) ([]Record, error) {
	return s.repo.ListPending(ctx)
}

// Approve marks a submission approved. The transition is one-way and
// idempotent: approving an already-approved record succeeds without
// side effects.
func (s *Service) Approve(ctx context.Context, id string) error {
	return s.repo.Approve(ctx, id)
}

// Delete removes a submission.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
