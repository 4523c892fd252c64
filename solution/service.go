package solution

import (
	"context"
	"strings"

	"solsite/apperr"
)

// Repository defines the data access required by the service.
type Repository interface {
	Create(ctx context.Context, params CreateParams) (Record, error)
	ListByType(ctx context.Context, t Type) ([]Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	Update(ctx context.Context, id string, params UpdateParams) error
	Delete(ctx context.Context, id string) error
}

// Service exposes business-level solution-catalog operations.
type Service struct {
	repo Repository
}

// NewService builds a Service using the provided repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and persists a new solution.
func (s *Service) Create(ctx context.Context, params CreateParams) (Record, error) {
	params.Name = strings.TrimSpace(params.Name)
	params.Summary = strings.TrimSpace(params.Summary)
	params.Category = strings.TrimSpace(params.Category)

	var violations []string
	if params.Name == "" {
		violations = append(violations, "name is required")
	}
	if !isValidType(params.Type) {
		violations = append(violations, "type must be 'software' or 'project'")
	}
	if len(violations) > 0 {
		return Record{}, apperr.NewValidation(violations...)
	}

	return s.repo.Create(ctx, params)
}

// ListByType returns the catalog section for one type, newest first.
// The type filter is mandatory; the public site renders the two sections
// separately.
func (s *Service) ListByType(ctx context.Context, t Type) ([]Record, error) {
	if !isValidType(t) {
		return nil, apperr.NewValidation("query param 'type' must be 'software' or 'project'")
	}
	return s.repo.ListByType(ctx, t)
}

// GetByID returns one solution.
func (s *Service) GetByID(ctx context.Context, id string) (Record, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies a partial update. The type of an existing solution is
// immutable; moving an entry between sections means recreating it.
func (s *Service) Update(ctx context.Context, id string, params UpdateParams) error {
	if params.isEmpty() {
		return apperr.NewValidation("provide at least one field to update")
	}
	return s.repo.Update(ctx, id, params)
}

// Delete removes a solution.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
