package article

import (
	"context"
	"strings"

	"solsite/apperr"
)

// Repository defines the data access required by the service.
type Repository interface {
	Create(ctx context.Context, params CreateParams) (Record, error)
	List(ctx context.Context) ([]Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	Update(ctx context.Context, id string, params UpdateParams) error
	Delete(ctx context.Context, id string) error
}

// Service exposes business-level article operations.
type Service struct {
	repo Repository
}

// NewService builds a Service using the provided repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and persists a new article, returning its record.
func (s *Service) Create(ctx context.Context, params CreateParams) (Record, error) {
	params.Title = strings.TrimSpace(params.Title)
	params.Excerpt = strings.TrimSpace(params.Excerpt)
	params.ImageURL = strings.TrimSpace(params.ImageURL)
	params.Category = strings.TrimSpace(params.Category)
	params.Author = strings.TrimSpace(params.Author)
	params.ReadTime = strings.TrimSpace(params.ReadTime)

	var missing []string
	if params.Title == "" {
		missing = append(missing, "title is required")
	}
	if params.Content == "" {
		missing = append(missing, "content is required")
	}
	if len(missing) > 0 {
		return Record{}, apperr.NewValidation(missing...)
	}

	return s.repo.Create(ctx, params)
}

// List returns all articles, newest first.
func (s *Service) List(ctx context.Context) ([]Record, error) {
	return s.repo.List(ctx)
}

// GetByID returns one article.
func (s *Service) GetByID(ctx context.Context, id string) (Record, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies a partial update. Omitted fields keep their previous
// values; an empty patch is a validation error.
func (s *Service) Update(ctx context.Context, id string, params UpdateParams) error {
	if params.isEmpty() {
		return apperr.NewValidation("provide at least one field to update")
	}
	return s.repo.Update(ctx, id, params)
}

// Delete removes an article.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
