package job

import "context"

// ListFilter narrows job listings.
type ListFilter struct {
	Status        *Status
	CompanyID     *string
	DirectContact *bool
	Search        string
	Page          int
	Limit         int
}

// Repository - interface for the jobs table
type Repository interface {
	Create(ctx context.Context, j Job) (Job, error)
	// GetByID returns the job with its company reference hydrated.
	GetByID(ctx context.Context, id string) (Job, error)
	List(ctx context.Context, filter ListFilter) ([]Job, int64, error)
	Update(ctx context.Context, j Job) error
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error

	// AdminManagedIDs returns the ids of every job with direct_contact = false.
	AdminManagedIDs(ctx context.Context) ([]string, error)
	CountByStatus(ctx context.Context, status Status) (int64, error)
	// ActiveWithEmbeddings returns active jobs that carry an embedding,
	// for match scoring.
	ActiveWithEmbeddings(ctx context.Context) ([]Job, error)
}
