package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/DLT-Africa-Hub/Recruita/internal/domain/application"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/company"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/graduate"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/job"
	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/database"
	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/ref"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type applicationRepositoryImpl struct {
	db *database.DB
}

func NewApplicationRepository(db *database.DB) application.Repository {
	return &applicationRepositoryImpl{db: db}
}

const applicationColumns = `
	a.id, a.job_id, a.graduate_id, a.status, a.notes, a.resume, a.reviewed_at, a.created_at, a.updated_at
`

const applicationJoinedColumns = applicationColumns + `,
	j.id, j.company_id, j.title, j.description, j.location, j.job_type,
	j.status, j.direct_contact, j.embedding, j.created_at, j.updated_at,
	c.id, c.user_id, c.company_name, c.industry, c.description, c.website, c.is_active, c.created_at, c.updated_at,
	g.id, g.user_id, g.first_name, g.last_name, g.skills, g.interests, g.created_at, g.updated_at
`

func scanApplication(row pgx.Row) (application.Application, error) {
	var a application.Application
	var jobID, graduateID string

	err := row.Scan(
		&a.ID, &jobID, &graduateID, &a.Status, &a.Notes, &a.Resume,
		&a.ReviewedAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return application.Application{}, err
	}
	a.Job = ref.ID[job.Job](jobID)
	a.Graduate = ref.ID[graduate.Graduate](graduateID)
	return a, nil
}

func scanApplicationHydrated(row pgx.Row) (application.Application, error) {
	var a application.Application
	var jobID, graduateID string
	var j job.Job
	var jobCompanyID string
	var c company.Company
	var g graduate.Graduate

	err := row.Scan(
		&a.ID, &jobID, &graduateID, &a.Status, &a.Notes, &a.Resume,
		&a.ReviewedAt, &a.CreatedAt, &a.UpdatedAt,
		&j.ID, &jobCompanyID, &j.Title, &j.Description, &j.Location, &j.JobType,
		&j.Status, &j.DirectContact, &j.Embedding, &j.CreatedAt, &j.UpdatedAt,
		&c.ID, &c.UserID, &c.CompanyName, &c.Industry, &c.Description,
		&c.Website, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
		&g.ID, &g.UserID, &g.FirstName, &g.LastName, &g.Skills, &g.Interests,
		&g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return application.Application{}, err
	}
	j.Company = ref.Populated(jobCompanyID, &c)
	a.Job = ref.Populated(jobID, &j)
	a.Graduate = ref.Populated(graduateID, &g)
	return a, nil
}

func (r *applicationRepositoryImpl) Create(ctx context.Context, a application.Application) (application.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO applications (id, job_id, graduate_id, status, notes, resume, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.Job.ID(), a.Graduate.ID(), a.Status, a.Notes, a.Resume,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return application.Application{}, application.ErrAlreadyApplied
		}
		return application.Application{}, fmt.Errorf("create application: %w", err)
	}

	return a, nil
}

func (r *applicationRepositoryImpl) GetByID(ctx context.Context, id string) (application.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + applicationJoinedColumns + `
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN companies c ON c.id = j.company_id
		JOIN graduates g ON g.id = a.graduate_id
		WHERE a.id = $1
	`

	a, err := scanApplicationHydrated(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return application.Application{}, application.ErrApplicationNotFound
	}
	if err != nil {
		return application.Application{}, fmt.Errorf("get application by id: %w", err)
	}
	return a, nil
}

func (r *applicationRepositoryImpl) UpdateStatus(ctx context.Context, upd application.StatusUpdate) error {
	q := GetQuerier(ctx, r.db)

	// A NULL notes value means the caller did not supply any; existing
	// notes survive the transition.
	commandTag, err := q.Exec(ctx, `
		UPDATE applications
		SET status = $1, reviewed_at = $2, notes = COALESCE($3, notes), updated_at = NOW()
		WHERE id = $4
	`, upd.Status, upd.ReviewedAt, upd.Notes, upd.ID)
	if err != nil {
		return fmt.Errorf("update application status: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return application.ErrApplicationNotFound
	}
	return nil
}

func (r *applicationRepositoryImpl) SetStatus(ctx context.Context, id string, status application.Status) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		`UPDATE applications SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id)
	if err != nil {
		return fmt.Errorf("set application status: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return application.ErrApplicationNotFound
	}
	return nil
}

func (r *applicationRepositoryImpl) ListByJob(ctx context.Context, jobID string, page, limit int) ([]application.Application, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM applications WHERE job_id = $1`, jobID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count applications by job: %w", err)
	}

	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}

	query := `
		SELECT ` + applicationJoinedColumns + `
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN companies c ON c.id = j.company_id
		JOIN graduates g ON g.id = a.graduate_id
		WHERE a.job_id = $1
		ORDER BY a.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, jobID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list applications by job: %w", err)
	}
	defer rows.Close()

	var applications []application.Application
	for rows.Next() {
		a, err := scanApplicationHydrated(rows)
		if err != nil {
			return nil, 0, err
		}
		applications = append(applications, a)
	}

	return applications, total, rows.Err()
}

func (r *applicationRepositoryImpl) ListByGraduate(ctx context.Context, graduateID string) ([]application.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + applicationJoinedColumns + `
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN companies c ON c.id = j.company_id
		JOIN graduates g ON g.id = a.graduate_id
		WHERE a.graduate_id = $1
		ORDER BY a.created_at DESC
	`

	rows, err := q.Query(ctx, query, graduateID)
	if err != nil {
		return nil, fmt.Errorf("list applications by graduate: %w", err)
	}
	defer rows.Close()

	var applications []application.Application
	for rows.Next() {
		a, err := scanApplicationHydrated(rows)
		if err != nil {
			return nil, err
		}
		applications = append(applications, a)
	}

	return applications, rows.Err()
}

func (r *applicationRepositoryImpl) CountByStatus(ctx context.Context) (map[application.Status]int64, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT status, COUNT(*) FROM applications GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count applications by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[application.Status]int64)
	for rows.Next() {
		var status application.Status
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}
