package application

import (
	"context"
	"time"
)

// StatusUpdate is the unconditional write the transition workflow performs
// before any side-effecting branch.
type StatusUpdate struct {
	ID         string
	Status     Status
	ReviewedAt time.Time
	Notes      *string
}

// Repository - interface for the applications table
type Repository interface {
	Create(ctx context.Context, a Application) (Application, error)

	// GetByID returns the application with its job (and the job's company)
	// and graduate references hydrated.
	GetByID(ctx context.Context, id string) (Application, error)

	UpdateStatus(ctx context.Context, upd StatusUpdate) error
	// SetStatus writes only the status column; used by offer issuance to
	// flip an application to offer_sent.
	SetStatus(ctx context.Context, id string, status Status) error

	ListByJob(ctx context.Context, jobID string, page, limit int) ([]Application, int64, error)
	ListByGraduate(ctx context.Context, graduateID string) ([]Application, error)
	CountByStatus(ctx context.Context) (map[Status]int64, error)
}
