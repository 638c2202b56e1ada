package notification

import "context"

// Service defines the notification dispatcher interface. Queueing is
// fire-and-forget from the caller's perspective: delivery failures are
// logged by the workers, never propagated.
type Service interface {
	Queue(ctx context.Context, req CreateNotificationRequest) error
	QueueBulk(ctx context.Context, reqs []CreateNotificationRequest) error

	// Direct operations
	GetNotifications(ctx context.Context, userID string, page, pageSize int, unreadOnly bool) (*ListResponse, error)
	GetUnreadCount(ctx context.Context, userID string) (int, error)
	MarkAsRead(ctx context.Context, userID string, req MarkAsReadRequest) error
	MarkAllAsRead(ctx context.Context, userID string) error
	Delete(ctx context.Context, userID string, notificationID string) error

	// SSE subscription
	Subscribe(ctx context.Context, userID string) (<-chan SSEEvent, func())

	// Lifecycle
	Stop()
}
