package types

import "github.com/m-mizutani/goerr/v2"

// ImplementationStatus represents the state of a protection measure on a risk entry
type ImplementationStatus string

const (
	ImplementationYes           ImplementationStatus = "yes"
	ImplementationNo            ImplementationStatus = "no"
	ImplementationNotApplicable ImplementationStatus = "not_applicable"
	ImplementationPending       ImplementationStatus = "pending"
)

// AllImplementationStatuses returns all valid implementation statuses
func AllImplementationStatuses() []ImplementationStatus {
	return []ImplementationStatus{
		ImplementationYes,
		ImplementationNo,
		ImplementationNotApplicable,
		ImplementationPending,
	}
}

// IsValid checks if the implementation status is valid
func (s ImplementationStatus) IsValid() bool {
	switch s {
	case ImplementationYes,
		ImplementationNo,
		ImplementationNotApplicable,
		ImplementationPending:
		return true
	default:
		return false
	}
}

// Normalize returns the status, treating empty as ImplementationPending
func (s ImplementationStatus) Normalize() ImplementationStatus {
	if s == "" {
		return ImplementationPending
	}
	return s
}

// Label returns the display text used in report rows
func (s ImplementationStatus) Label() string {
	switch s {
	case ImplementationYes:
		return "Yes"
	case ImplementationNo:
		return "No"
	case ImplementationNotApplicable:
		return "N/A"
	default:
		return "Pending"
	}
}

// String returns the string representation of the implementation status
func (s ImplementationStatus) String() string {
	return string(s)
}

// ParseImplementationStatus parses a string into an ImplementationStatus
func ParseImplementationStatus(s string) (ImplementationStatus, error) {
	status := ImplementationStatus(s)
	if !status.IsValid() {
		return "", goerr.New("invalid implementation status", goerr.V("status", s))
	}
	return status, nil
}
