package notification

import "time"

// ============= Request DTOs =============

// EmailPayload mirrors a notification to the recipient's inbox.
type EmailPayload struct {
	Subject string
	Text    string
}

// CreateNotificationRequest represents a request to create a notification
type CreateNotificationRequest struct {
	UserID      string
	Type        Type
	Title       string
	Message     string
	RelatedID   *string
	RelatedType *string
	Email       *EmailPayload
}

// MarkAsReadRequest represents a request to mark notifications as read
type MarkAsReadRequest struct {
	NotificationIDs []string `json:"notification_ids"`
}

// ============= Response DTOs =============

// Response represents a notification in API responses
type Response struct {
	ID          string     `json:"id"`
	Type        Type       `json:"type"`
	Title       string     `json:"title"`
	Message     string     `json:"message"`
	RelatedID   *string    `json:"related_id,omitempty"`
	RelatedType *string    `json:"related_type,omitempty"`
	IsRead      bool       `json:"is_read"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ListResponse represents a paginated list of notifications
type ListResponse struct {
	Notifications []Response `json:"notifications"`
	Total         int        `json:"total"`
	UnreadCount   int        `json:"unread_count"`
	Page          int        `json:"page"`
	PageSize      int        `json:"page_size"`
}

// UnreadCountResponse represents unread count response
type UnreadCountResponse struct {
	UnreadCount int `json:"unread_count"`
}

// SSETokenResponse represents the SSE token response
type SSETokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

// SSEEvent represents a Server-Sent Event
type SSEEvent struct {
	Event string   `json:"event"`
	Data  Response `json:"data"`
}
