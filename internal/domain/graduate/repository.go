package graduate

import "context"

// Repository - interface for the graduates table
type Repository interface {
	GetByID(ctx context.Context, id string) (Graduate, error)
	GetByUserID(ctx context.Context, userID string) (Graduate, error)
	Upsert(ctx context.Context, g Graduate) (Graduate, error)
	SetAssessment(ctx context.Context, graduateID string, a Assessment) error
	List(ctx context.Context, search string, page, limit int) ([]Graduate, int64, error)
	Count(ctx context.Context) (int64, error)
}
