package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/DLT-Africa-Hub/Recruita/internal/domain/company"
	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type companyRepositoryImpl struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.Repository {
	return &companyRepositoryImpl{db: db}
}

const companyColumns = `
	id, user_id, company_name, industry, description, website, is_active, created_at, updated_at
`

func scanCompany(row pgx.Row) (company.Company, error) {
	var c company.Company
	err := row.Scan(
		&c.ID, &c.UserID, &c.CompanyName, &c.Industry,
		&c.Description, &c.Website, &c.IsActive,
		&c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (r *companyRepositoryImpl) GetByID(ctx context.Context, id string) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	c, err := scanCompany(q.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return company.Company{}, company.ErrCompanyNotFound
	}
	if err != nil {
		return company.Company{}, fmt.Errorf("get company by id: %w", err)
	}
	return c, nil
}

func (r *companyRepositoryImpl) GetByUserID(ctx context.Context, userID string) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	c, err := scanCompany(q.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE user_id = $1`, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return company.Company{}, company.ErrCompanyNotFound
	}
	if err != nil {
		return company.Company{}, fmt.Errorf("get company by user id: %w", err)
	}
	return c, nil
}

func (r *companyRepositoryImpl) Upsert(ctx context.Context, c company.Company) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO companies (id, user_id, company_name, industry, description, website, is_active, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, TRUE, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			industry = EXCLUDED.industry,
			description = EXCLUDED.description,
			website = EXCLUDED.website,
			updated_at = NOW()
		RETURNING id, is_active, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		c.UserID, c.CompanyName, c.Industry, c.Description, c.Website,
	).Scan(&c.ID, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return company.Company{}, fmt.Errorf("upsert company: %w", err)
	}

	return c, nil
}

func (r *companyRepositoryImpl) SetActive(ctx context.Context, id string, active bool) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		`UPDATE companies SET is_active = $1, updated_at = NOW() WHERE id = $2`,
		active, id)
	if err != nil {
		return fmt.Errorf("set company active: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return company.ErrCompanyNotFound
	}
	return nil
}

func (r *companyRepositoryImpl) List(ctx context.Context, search string, page, limit int) ([]company.Company, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "1=1"
	args := []interface{}{}
	if search != "" {
		args = append(args, "%"+search+"%")
		where = "(company_name ILIKE $1 OR industry ILIKE $1)"
	}

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM companies WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count companies: %w", err)
	}

	args = append(args, limit, (page-1)*limit)
	query := fmt.Sprintf(`
		SELECT %s FROM companies
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, companyColumns, where, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var companies []company.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, 0, err
		}
		companies = append(companies, c)
	}

	return companies, total, rows.Err()
}

func (r *companyRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM companies`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count companies: %w", err)
	}
	return total, nil
}

func (r *companyRepositoryImpl) AddHiredCandidate(ctx context.Context, companyID, graduateID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO company_hired_candidates (company_id, graduate_id, hired_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (company_id, graduate_id) DO NOTHING
	`, companyID, graduateID)
	if err != nil {
		return fmt.Errorf("add hired candidate: %w", err)
	}
	return nil
}

func (r *companyRepositoryImpl) GetHireStats(ctx context.Context, companyID string) (company.HireStats, error) {
	q := GetQuerier(ctx, r.db)

	var stats company.HireStats
	err := q.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM jobs WHERE company_id = $1),
			(SELECT COUNT(*) FROM company_hired_candidates WHERE company_id = $1)
	`, companyID).Scan(&stats.PostedJobs, &stats.HiredCandidates)
	if err != nil {
		return company.HireStats{}, fmt.Errorf("get hire stats: %w", err)
	}
	return stats, nil
}
