package interview

import (
	"context"
	"time"
)

// ListFilter narrows interview listings. Upcoming semantics follow the admin
// dashboard: nil means no time filter, true keeps interviews scheduled after
// now minus the grace window (plus pending selections), false keeps past
// interviews only.
type ListFilter struct {
	JobIDs   []string
	Status   *Status
	Upcoming *bool
	Page     int
	Limit    int
}

// Repository - interface for the interviews table
type Repository interface {
	Create(ctx context.Context, i Interview) (Interview, error)
	GetByID(ctx context.Context, id string) (Interview, error)
	GetByApplicationID(ctx context.Context, applicationID string) (Interview, error)
	// GetByRoomSlug returns the interview with job, company and graduate
	// hydrated for the room view.
	GetByRoomSlug(ctx context.Context, slug string) (Interview, error)
	List(ctx context.Context, filter ListFilter) ([]Interview, int64, error)

	// CompleteExpired advances every interview among jobIDs whose scheduled
	// end time has passed and whose status is scheduled or in_progress to
	// completed with ended_at = now, in one bulk update. It returns the
	// number of rows advanced.
	CompleteExpired(ctx context.Context, jobIDs []string, now time.Time) (int64, error)

	// Schedule sets the chosen slot and flips the interview to scheduled.
	Schedule(ctx context.Context, id string, scheduledAt time.Time, durationMinutes int, updatedBy string) error
	UpdateStatus(ctx context.Context, id string, status Status, updatedBy string) error
}
