package contact

import (
	"strings"
	"time"
)

// Record is the domain representation of a contact-form message.
type Record struct {
	ID          string
	Name        string
	Email       string
	Phone       *string
	CompanyName *string
	Country     *string
	Job         *string
	JobDetails  *string
	Message     string
	CreatedAt   time.Time
}

// CreateParams contains write parameters for submitting a message.
// JobDetails is what the current form sends; Message is kept for clients
// still posting the old free-text field.
type CreateParams struct {
	Name        string
	Email       string
	Phone       string
	CompanyName string
	Country     string
	Job         string
	JobDetails  string
	Message     string
}

// packedMessage flattens the structured fields into the message column so
// older admin tooling that only reads message keeps working.
func (p CreateParams) packedMessage() string {
	parts := []string{}
	if p.CompanyName != "" {
		parts = append(parts, "Company: "+p.CompanyName)
	}
	if p.Country != "" {
		parts = append(parts, "Country: "+p.Country)
	}
	if p.Job != "" {
		parts = append(parts, "Job: "+p.Job)
	}
	if p.JobDetails != "" {
		parts = append(parts, "Job Details: "+p.JobDetails)
	}
	if p.Message != "" && p.JobDetails == "" {
		parts = append(parts, "Requirement: "+p.Message)
	}
	return strings.Join(parts, "\n")
}
