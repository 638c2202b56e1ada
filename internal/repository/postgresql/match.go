package postgresql

import (
	"context"
	"fmt"

	"github.com/DLT-Africa-Hub/Recruita/internal/domain/match"
	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type matchRepositoryImpl struct {
	db *database.DB
}

func NewMatchRepository(db *database.DB) match.Repository {
	return &matchRepositoryImpl{db: db}
}

func scanMatch(row pgx.Row) (match.Match, error) {
	var m match.Match
	err := row.Scan(&m.ID, &m.GraduateID, &m.JobID, &m.Score, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func (r *matchRepositoryImpl) Upsert(ctx context.Context, m match.Match) (match.Match, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO matches (id, graduate_id, job_id, score, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, NOW(), NOW())
		ON CONFLICT (graduate_id, job_id) DO UPDATE SET
			score = EXCLUDED.score,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, m.GraduateID, m.JobID, m.Score).
		Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return match.Match{}, fmt.Errorf("upsert match: %w", err)
	}

	return m, nil
}

func (r *matchRepositoryImpl) ListByGraduate(ctx context.Context, graduateID string, limit int) ([]match.Match, error) {
	q := GetQuerier(ctx, r.db)

	if limit <= 0 {
		limit = 20
	}

	rows, err := q.Query(ctx, `
		SELECT id, graduate_id, job_id, score, created_at, updated_at
		FROM matches
		WHERE graduate_id = $1
		ORDER BY score DESC
		LIMIT $2
	`, graduateID, limit)
	if err != nil {
		return nil, fmt.Errorf("list matches by graduate: %w", err)
	}
	defer rows.Close()

	var matches []match.Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

func (r *matchRepositoryImpl) ListByJob(ctx context.Context, jobID string, limit int) ([]match.Match, error) {
	q := GetQuerier(ctx, r.db)

	if limit <= 0 {
		limit = 20
	}

	rows, err := q.Query(ctx, `
		SELECT id, graduate_id, job_id, score, created_at, updated_at
		FROM matches
		WHERE job_id = $1
		ORDER BY score DESC
		LIMIT $2
	`, jobID, limit)
	if err != nil {
		return nil, fmt.Errorf("list matches by job: %w", err)
	}
	defer rows.Close()

	var matches []match.Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

func (r *matchRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM matches`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count matches: %w", err)
	}
	return total, nil
}
