package offer

import (
	"context"
	"time"
)

// Repository - interface for the offers table
type Repository interface {
	Create(ctx context.Context, o Offer) (Offer, error)
	GetByID(ctx context.Context, id string) (Offer, error)
	// GetByApplicationID returns ErrOfferNotFound when no offer exists for
	// the application yet.
	GetByApplicationID(ctx context.Context, applicationID string) (Offer, error)
	// MarkAccepted is an idempotent set-to-value write.
	MarkAccepted(ctx context.Context, id string, acceptedAt time.Time, updatedBy string) error
	UpdateStatus(ctx context.Context, id string, status Status, updatedBy string) error
	ListByGraduate(ctx context.Context, graduateID string) ([]Offer, error)
}
