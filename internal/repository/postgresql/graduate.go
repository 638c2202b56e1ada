package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DLT-Africa-Hub/Recruita/internal/domain/graduate"
	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type graduateRepositoryImpl struct {
	db *database.DB
}

func NewGraduateRepository(db *database.DB) graduate.Repository {
	return &graduateRepositoryImpl{db: db}
}

const graduateColumns = `
	id, user_id, first_name, last_name, skills, education, interests, assessment, created_at, updated_at
`

func scanGraduate(row pgx.Row) (graduate.Graduate, error) {
	var g graduate.Graduate
	var educationJSON []byte
	var assessmentJSON []byte

	err := row.Scan(
		&g.ID, &g.UserID, &g.FirstName, &g.LastName,
		&g.Skills, &educationJSON, &g.Interests, &assessmentJSON,
		&g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return graduate.Graduate{}, err
	}

	if len(educationJSON) > 0 {
		if err := json.Unmarshal(educationJSON, &g.Education); err != nil {
			return graduate.Graduate{}, fmt.Errorf("unmarshal education: %w", err)
		}
	}
	if len(assessmentJSON) > 0 {
		var a graduate.Assessment
		if err := json.Unmarshal(assessmentJSON, &a); err != nil {
			return graduate.Graduate{}, fmt.Errorf("unmarshal assessment: %w", err)
		}
		g.Assessment = &a
	}

	return g, nil
}

func (r *graduateRepositoryImpl) GetByID(ctx context.Context, id string) (graduate.Graduate, error) {
	q := GetQuerier(ctx, r.db)

	g, err := scanGraduate(q.QueryRow(ctx,
		`SELECT `+graduateColumns+` FROM graduates WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return graduate.Graduate{}, graduate.ErrGraduateNotFound
	}
	if err != nil {
		return graduate.Graduate{}, fmt.Errorf("get graduate by id: %w", err)
	}
	return g, nil
}

func (r *graduateRepositoryImpl) GetByUserID(ctx context.Context, userID string) (graduate.Graduate, error) {
	q := GetQuerier(ctx, r.db)

	g, err := scanGraduate(q.QueryRow(ctx,
		`SELECT `+graduateColumns+` FROM graduates WHERE user_id = $1`, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return graduate.Graduate{}, graduate.ErrGraduateNotFound
	}
	if err != nil {
		return graduate.Graduate{}, fmt.Errorf("get graduate by user id: %w", err)
	}
	return g, nil
}

func (r *graduateRepositoryImpl) Upsert(ctx context.Context, g graduate.Graduate) (graduate.Graduate, error) {
	q := GetQuerier(ctx, r.db)

	educationJSON, err := json.Marshal(g.Education)
	if err != nil {
		return graduate.Graduate{}, fmt.Errorf("marshal education: %w", err)
	}

	query := `
		INSERT INTO graduates (id, user_id, first_name, last_name, skills, education, interests, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			skills = EXCLUDED.skills,
			education = EXCLUDED.education,
			interests = EXCLUDED.interests,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		g.UserID, g.FirstName, g.LastName, g.Skills, educationJSON, g.Interests,
	).Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return graduate.Graduate{}, fmt.Errorf("upsert graduate: %w", err)
	}

	return g, nil
}

func (r *graduateRepositoryImpl) SetAssessment(ctx context.Context, graduateID string, a graduate.Assessment) error {
	q := GetQuerier(ctx, r.db)

	assessmentJSON, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshal assessment: %w", err)
	}

	commandTag, err := q.Exec(ctx,
		`UPDATE graduates SET assessment = $1, updated_at = NOW() WHERE id = $2`,
		assessmentJSON, graduateID)
	if err != nil {
		return fmt.Errorf("set assessment: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return graduate.ErrGraduateNotFound
	}
	return nil
}

func (r *graduateRepositoryImpl) List(ctx context.Context, search string, page, limit int) ([]graduate.Graduate, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "1=1"
	args := []interface{}{}
	if search != "" {
		args = append(args, "%"+search+"%")
		where = "(first_name ILIKE $1 OR last_name ILIKE $1)"
	}

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM graduates WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count graduates: %w", err)
	}

	args = append(args, limit, (page-1)*limit)
	query := fmt.Sprintf(`
		SELECT %s FROM graduates
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, graduateColumns, where, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list graduates: %w", err)
	}
	defer rows.Close()

	var graduates []graduate.Graduate
	for rows.Next() {
		g, err := scanGraduate(rows)
		if err != nil {
			return nil, 0, err
		}
		graduates = append(graduates, g)
	}

	return graduates, total, rows.Err()
}

func (r *graduateRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM graduates`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count graduates: %w", err)
	}
	return total, nil
}
