package job

import (
	"context"
	"strings"

	"solsite/apperr"
	"solsite/upload"
)

// Repository defines the data access required by the service.
type Repository interface {
	Create(ctx context.Context, params CreateParams, fileURL *string) (Requirement, error)
	List(ctx context.Context) ([]Requirement, error)
	GetByID(ctx context.Context, id string) (Requirement, error)
}

// Storer is the slice of the upload pipeline the service needs.
type Storer interface {
	Store(ctx context.Context, file upload.File) (string, error)
}

// Service composes the upload pipeline with requirement persistence.
type Service struct {
	repo     Repository
	pipeline Storer
}

// NewService builds a Service using the provided repository and pipeline.
func NewService(repo Repository, pipeline Storer) *Service {
	return &Service{repo: repo, pipeline: pipeline}
}

// Create validates the submission, uploads the attachment if present and
// then inserts the record. The upload strictly precedes the insert: a
// failed upload aborts creation, so no record ever exists with a missing
// URL after an attempted upload.
func (s *Service) Create(ctx context.Context, params CreateParams, file *upload.File) (Requirement, error) {
	params.Name = strings.TrimSpace(params.Name)
	params.Email = strings.TrimSpace(params.Email)
	params.Phone = strings.TrimSpace(params.Phone)
	params.Country = strings.TrimSpace(params.Country)
	params.JobTitle = strings.TrimSpace(params.JobTitle)

	var violations []string
	if params.Name == "" {
		violations = append(violations, "name is required")
	}
	if params.Email == "" {
		violations = append(violations, "email is required")
	}
	if len(violations) > 0 {
		return Requirement{}, apperr.NewValidation(violations...)
	}

	var fileURL *string
	if file != nil {
		url, err := s.pipeline.Store(ctx, *file)
		if err != nil {
			return Requirement{}, err
		}
		fileURL = &url
	}

	return s.repo.Create(ctx, params, fileURL)
}

// List returns all submissions for the admin console, newest first.
func (s *Service) List(ctx context.Context) ([]Requirement, error) {
	return s.repo.List(ctx)
}

// GetByID returns one submission.
func (s *Service) GetByID(ctx context.Context, id string) (Requirement, error) {
	return s.repo.GetByID(ctx, id)
}
