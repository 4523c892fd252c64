package article

import "time"

// Record is the domain representation of a published article.
type Record struct {
	ID        string
	Title     string
	Excerpt   *string
	Content   string
	ImageURL  *string
	Category  *string
	Author    *string
	ReadTime  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateParams contains write parameters for creating articles. Optional
// fields left empty are stored as NULL.
type CreateParams struct {
	Title    string
	Excerpt  string
	Content  string
	ImageURL string
	Category string
	Author   string
	ReadTime string
}

// UpdateParams is a patch: nil fields keep their previous value, set
// fields are written. At least one field must be set.
type UpdateParams struct {
	Title    *string
	Excerpt  *string
	Content  *string
	ImageURL *string
	Category *string
	Author   *string
	ReadTime *string
}

func (p UpdateParams) isEmpty() bool {
	return p.Title == nil && p.Excerpt == nil && p.Content == nil &&
		p.ImageURL == nil && p.Category == nil && p.Author == nil && p.ReadTime == nil
}
