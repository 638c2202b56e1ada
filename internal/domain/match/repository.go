package match

import "context"

// Repository - interface for the matches table
type Repository interface {
	// Upsert writes the score for a (graduate, job) pair, replacing any
	// previous score.
	Upsert(ctx context.Context, m Match) (Match, error)
	ListByGraduate(ctx context.Context, graduateID string, limit int) ([]Match, error)
	ListByJob(ctx context.Context, jobID string, limit int) ([]Match, error)
	Count(ctx context.Context) (int64, error)
}
