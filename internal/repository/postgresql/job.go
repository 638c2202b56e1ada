package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DLT-Africa-Hub/Recruita/internal/domain/company"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/job"
	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/database"
	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/ref"
	"github.com/jackc/pgx/v5"
)

type jobRepositoryImpl struct {
	db *database.DB
}

func NewJobRepository(db *database.DB) job.Repository {
	return &jobRepositoryImpl{db: db}
}

const jobColumns = `
	j.id, j.company_id, j.title, j.description, j.location, j.job_type,
	j.status, j.direct_contact, j.embedding, j.created_at, j.updated_at
`

const jobJoinedColumns = jobColumns + `,
	c.id, c.user_id, c.company_name, c.industry, c.description, c.website, c.is_active, c.created_at, c.updated_at
`

func scanJob(row pgx.Row) (job.Job, error) {
	var j job.Job
	var companyID string

	err := row.Scan(
		&j.ID, &companyID, &j.Title, &j.Description, &j.Location, &j.JobType,
		&j.Status, &j.DirectContact, &j.Embedding, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return job.Job{}, err
	}
	j.Company = ref.ID[company.Company](companyID)
	return j, nil
}

func scanJobWithCompany(row pgx.Row) (job.Job, error) {
	var j job.Job
	var companyID string
	var c company.Company

	err := row.Scan(
		&j.ID, &companyID, &j.Title, &j.Description, &j.Location, &j.JobType,
		&j.Status, &j.DirectContact, &j.Embedding, &j.CreatedAt, &j.UpdatedAt,
		&c.ID, &c.UserID, &c.CompanyName, &c.Industry, &c.Description,
		&c.Website, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return job.Job{}, err
	}
	j.Company = ref.Populated(companyID, &c)
	return j, nil
}

func (r *jobRepositoryImpl) Create(ctx context.Context, j job.Job) (job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO jobs (id, company_id, title, description, location, job_type, status, direct_contact, embedding, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		j.Company.ID(), j.Title, j.Description, j.Location, j.JobType,
		j.Status, j.DirectContact, j.Embedding,
	).Scan(&j.ID, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return job.Job{}, fmt.Errorf("create job: %w", err)
	}

	return j, nil
}

func (r *jobRepositoryImpl) GetByID(ctx context.Context, id string) (job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + jobJoinedColumns + `
		FROM jobs j
		JOIN companies c ON c.id = j.company_id
		WHERE j.id = $1
	`

	j, err := scanJobWithCompany(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return job.Job{}, job.ErrJobNotFound
	}
	if err != nil {
		return job.Job{}, fmt.Errorf("get job by id: %w", err)
	}
	return j, nil
}

func (r *jobRepositoryImpl) List(ctx context.Context, filter job.ListFilter) ([]job.Job, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("j.status = $%d", len(args)))
	}
	if filter.CompanyID != nil {
		args = append(args, *filter.CompanyID)
		conditions = append(conditions, fmt.Sprintf("j.company_id = $%d", len(args)))
	}
	if filter.DirectContact != nil {
		args = append(args, *filter.DirectContact)
		conditions = append(conditions, fmt.Sprintf("j.direct_contact = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(j.title ILIKE $%d OR j.location ILIKE $%d)", len(args), len(args)))
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM jobs j WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count jobs: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	args = append(args, limit, (page-1)*limit)

	query := fmt.Sprintf(`
		SELECT %s
		FROM jobs j
		JOIN companies c ON c.id = j.company_id
		WHERE %s
		ORDER BY j.created_at DESC
		LIMIT $%d OFFSET $%d
	`, jobJoinedColumns, where, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []job.Job
	for rows.Next() {
		j, err := scanJobWithCompany(rows)
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, j)
	}

	return jobs, total, rows.Err()
}

func (r *jobRepositoryImpl) Update(ctx context.Context, j job.Job) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE jobs SET
			title = $1, description = $2, location = $3, job_type = $4,
			status = $5, direct_contact = $6, embedding = $7, updated_at = NOW()
		WHERE id = $8
	`, j.Title, j.Description, j.Location, j.JobType, j.Status, j.DirectContact, j.Embedding, j.ID)
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return job.ErrJobNotFound
	}
	return nil
}

func (r *jobRepositoryImpl) UpdateStatus(ctx context.Context, id string, status job.Status) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		`UPDATE jobs SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id)
	if err != nil {
		return fmt.Errorf("update job status: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return job.ErrJobNotFound
	}
	return nil
}

func (r *jobRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return job.ErrJobNotFound
	}
	return nil
}

func (r *jobRepositoryImpl) AdminManagedIDs(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id FROM jobs WHERE direct_contact = FALSE`)
	if err != nil {
		return nil, fmt.Errorf("admin managed job ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *jobRepositoryImpl) CountByStatus(ctx context.Context, status job.Status) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE status = $1`, status).Scan(&total); err != nil {
		return 0, fmt.Errorf("count jobs by status: %w", err)
	}
	return total, nil
}

func (r *jobRepositoryImpl) ActiveWithEmbeddings(ctx context.Context) ([]job.Job, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT `+jobColumns+`
		FROM jobs j
		WHERE j.status = 'active' AND j.embedding IS NOT NULL
	`)
	if err != nil {
		return nil, fmt.Errorf("active jobs with embeddings: %w", err)
	}
	defer rows.Close()

	var jobs []job.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}
