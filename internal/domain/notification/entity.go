package notification

import "time"

// Type categorizes a notification for the client.
type Type string

const (
	TypeApplication Type = "application"
	TypeOffer       Type = "offer"
	TypeInterview   Type = "interview"
	TypeMessage     Type = "message"
	TypeSystem      Type = "system"
)

// AllTypes returns every notification type.
func AllTypes() []Type {
	return []Type{TypeApplication, TypeOffer, TypeInterview, TypeMessage, TypeSystem}
}

// Notification is an in-app notice for one user, optionally mirrored to email.
type Notification struct {
	ID          string
	UserID      string
	Type        Type
	Title       string
	Message     string
	RelatedID   *string
	RelatedType *string
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
}
