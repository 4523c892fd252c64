package job

import "time"

// Requirement is the domain representation of a job submission. FileURL
// is set at most once, at creation time, and never changes afterwards.
type Requirement struct {
	ID        string
	Name      string
	Email     string
	Phone     *string
	Country   *string
	JobTitle  *string
	FileURL   *string
	CreatedAt time.Time
}

// CreateParams contains write parameters for submitting a requirement.
type CreateParams struct {
	Name     string
	Email    string
	Phone    string
	Country  string
	JobTitle string
}
