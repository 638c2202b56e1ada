package company

import "context"

// Repository - interface for the companies table and its hire-set
type Repository interface {
	GetByID(ctx context.Context, id string) (Company, error)
	GetByUserID(ctx context.Context, userID string) (Company, error)
	Upsert(ctx context.Context, c Company) (Company, error)
	SetActive(ctx context.Context, id string, active bool) error
	List(ctx context.Context, search string, page, limit int) ([]Company, int64, error)
	Count(ctx context.Context) (int64, error)

	// AddHiredCandidate records graduateID in the company's hire-set.
	// The add is idempotent: repeating it leaves the set unchanged.
	AddHiredCandidate(ctx context.Context, companyID, graduateID string) error
	GetHireStats(ctx context.Context, companyID string) (HireStats, error)
}
