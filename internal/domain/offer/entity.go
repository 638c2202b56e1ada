package offer

import "time"

type Status string

const (
	StatusSent      Status = "sent"
	StatusAccepted  Status = "accepted"
	StatusDeclined  Status = "declined"
	StatusWithdrawn Status = "withdrawn"
)

// Offer is an employment offer tied to exactly one application.
type Offer struct {
	ID            string
	ApplicationID string
	JobID         string
	GraduateID    string

	Status     Status
	AcceptedAt *time.Time
	DeclinedAt *time.Time
	UpdatedBy  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
