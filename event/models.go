package event

import "time"

// Registration is the domain representation of an event signup.
type Registration struct {
	ID         string
	EventTitle string
	EventDate  *string
	FullName   string
	Email      string
	Phone      *string
	CreatedAt  time.Time
}

// CreateParams contains write parameters for registering for an event.
type CreateParams struct {
	EventTitle string
	EventDate  string
	FullName   string
	Email      string
	Phone      string
}
