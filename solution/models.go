package solution

import "time"

// Type distinguishes the two catalog sections.
type Type string

const (
	TypeSoftware Type = "software"
	TypeProject  Type = "project"
)

func isValidType(t Type) bool {
	return t == TypeSoftware || t == TypeProject
}

// Record is the domain representation of a catalog solution.
type Record struct {
	ID           string
	Name         string
	Summary      *string
	ProjectStory *string
	IconURL      *string
	ImageURL     *string
	Type         Type
	Category     *string
	Features     []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CreateParams contains write parameters for creating solutions.
type CreateParams struct {
	Name         string
	Summary      string
	ProjectStory string
	IconURL      string
	ImageURL     string
	Type         Type
	Category     string
	Features     []string
}

// UpdateParams is a patch: nil fields keep their previous value.
type UpdateParams struct {
	Name         *string
	Summary      *string
	ProjectStory *string
	IconURL      *string
	ImageURL     *string
	Category     *string
	Features     []string
}

func (p UpdateParams) isEmpty() bool {
	return p.Name == nil && p.Summary == nil && p.ProjectStory == nil &&
		p.IconURL == nil && p.ImageURL == nil && p.Category == nil && p.Features == nil
}
