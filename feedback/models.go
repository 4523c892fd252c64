package feedback

import "time"

// Record is the domain representation of a visitor testimonial.
// Submissions start unapproved and only show on the public carousel
// after an admin approves them.
type Record struct {
	ID         string
	Name       string
	Occupation *string
	Email      *string
	Rating     int
	Message    string
	Approved   bool
	CreatedAt  time.Time
}

// CreateParams contains write parameters for submitting feedback.
type CreateParams struct {
	Name       string
	Occupation string
	Email      string
	Rating     int
	Message    string
}
