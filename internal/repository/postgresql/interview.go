package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/DLT-Africa-Hub/Recruita/internal/domain/company"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/graduate"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/interview"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/job"
	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/database"
	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/ref"
	"github.com/jackc/pgx/v5"
)

type interviewRepositoryImpl struct {
	db *database.DB
}

func NewInterviewRepository(db *database.DB) interview.Repository {
	return &interviewRepositoryImpl{db: db}
}

// upcomingGraceWindow keeps just-started interviews in the upcoming list.
const upcomingGraceWindow = 6 * time.Hour

const interviewColumns = `
	i.id, i.application_id, i.job_id, i.graduate_id, i.company_id,
	i.graduate_user_id, i.company_user_id,
	i.scheduled_at, i.duration_minutes, i.status, i.suggested_time_slots,
	i.room_slug, i.room_url, i.created_by, i.updated_by,
	i.started_at, i.ended_at, i.notes, i.created_at, i.updated_at
`

func scanInterview(row pgx.Row) (interview.Interview, error) {
	var iv interview.Interview
	var jobID, graduateID string
	var slotsJSON []byte

	err := row.Scan(
		&iv.ID, &iv.ApplicationID, &jobID, &graduateID, &iv.CompanyID,
		&iv.GraduateUserID, &iv.CompanyUserID,
		&iv.ScheduledAt, &iv.DurationMinutes, &iv.Status, &slotsJSON,
		&iv.RoomSlug, &iv.RoomURL, &iv.CreatedBy, &iv.UpdatedBy,
		&iv.StartedAt, &iv.EndedAt, &iv.Notes, &iv.CreatedAt, &iv.UpdatedAt,
	)
	if err != nil {
		return interview.Interview{}, err
	}

	if len(slotsJSON) > 0 {
		if err := json.Unmarshal(slotsJSON, &iv.SuggestedTimeSlots); err != nil {
			return interview.Interview{}, fmt.Errorf("unmarshal suggested time slots: %w", err)
		}
	}

	iv.Job = ref.ID[job.Job](jobID)
	iv.Graduate = ref.ID[graduate.Graduate](graduateID)
	return iv, nil
}

func scanInterviewHydrated(row pgx.Row) (interview.Interview, error) {
	var iv interview.Interview
	var jobID, graduateID string
	var slotsJSON []byte
	var j job.Job
	var jobCompanyID string
	var g graduate.Graduate

	err := row.Scan(
		&iv.ID, &iv.ApplicationID, &jobID, &graduateID, &iv.CompanyID,
		&iv.GraduateUserID, &iv.CompanyUserID,
		&iv.ScheduledAt, &iv.DurationMinutes, &iv.Status, &slotsJSON,
		&iv.RoomSlug, &iv.RoomURL, &iv.CreatedBy, &iv.UpdatedBy,
		&iv.StartedAt, &iv.EndedAt, &iv.Notes, &iv.CreatedAt, &iv.UpdatedAt,
		&j.ID, &jobCompanyID, &j.Title, &j.Location, &j.JobType,
		&g.ID, &g.UserID, &g.FirstName, &g.LastName,
	)
	if err != nil {
		return interview.Interview{}, err
	}

	if len(slotsJSON) > 0 {
		if err := json.Unmarshal(slotsJSON, &iv.SuggestedTimeSlots); err != nil {
			return interview.Interview{}, fmt.Errorf("unmarshal suggested time slots: %w", err)
		}
	}

	j.Company = ref.ID[company.Company](jobCompanyID)
	iv.Job = ref.Populated(jobID, &j)
	iv.Graduate = ref.Populated(graduateID, &g)
	return iv, nil
}

func (r *interviewRepositoryImpl) Create(ctx context.Context, iv interview.Interview) (interview.Interview, error) {
	q := GetQuerier(ctx, r.db)

	slotsJSON, err := json.Marshal(iv.SuggestedTimeSlots)
	if err != nil {
		return interview.Interview{}, fmt.Errorf("marshal suggested time slots: %w", err)
	}

	query := `
		INSERT INTO interviews (
			id, application_id, job_id, graduate_id, company_id,
			graduate_user_id, company_user_id,
			scheduled_at, duration_minutes, status, suggested_time_slots,
			room_slug, room_url, created_by, created_at, updated_at
		)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		iv.ApplicationID, iv.Job.ID(), iv.Graduate.ID(), iv.CompanyID,
		iv.GraduateUserID, iv.CompanyUserID,
		iv.ScheduledAt, iv.DurationMinutes, iv.Status, slotsJSON,
		iv.RoomSlug, iv.RoomURL, iv.CreatedBy,
	).Scan(&iv.ID, &iv.CreatedAt, &iv.UpdatedAt)
	if err != nil {
		return interview.Interview{}, fmt.Errorf("create interview: %w", err)
	}

	return iv, nil
}

func (r *interviewRepositoryImpl) GetByID(ctx context.Context, id string) (interview.Interview, error) {
	q := GetQuerier(ctx, r.db)

	iv, err := scanInterview(q.QueryRow(ctx,
		`SELECT `+interviewColumns+` FROM interviews i WHERE i.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return interview.Interview{}, interview.ErrInterviewNotFound
	}
	if err != nil {
		return interview.Interview{}, fmt.Errorf("get interview by id: %w", err)
	}
	return iv, nil
}

func (r *interviewRepositoryImpl) GetByApplicationID(ctx context.Context, applicationID string) (interview.Interview, error) {
	q := GetQuerier(ctx, r.db)

	iv, err := scanInterview(q.QueryRow(ctx,
		`SELECT `+interviewColumns+` FROM interviews i WHERE i.application_id = $1`, applicationID))
	if errors.Is(err, pgx.ErrNoRows) {
		return interview.Interview{}, interview.ErrInterviewNotFound
	}
	if err != nil {
		return interview.Interview{}, fmt.Errorf("get interview by application id: %w", err)
	}
	return iv, nil
}

func (r *interviewRepositoryImpl) GetByRoomSlug(ctx context.Context, slug string) (interview.Interview, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + interviewColumns + `,
			j.id, j.company_id, j.title, j.location, j.job_type,
			g.id, g.user_id, g.first_name, g.last_name
		FROM interviews i
		JOIN jobs j ON j.id = i.job_id
		JOIN graduates g ON g.id = i.graduate_id
		WHERE i.room_slug = $1
	`

	iv, err := scanInterviewHydrated(q.QueryRow(ctx, query, slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return interview.Interview{}, interview.ErrInterviewNotFound
	}
	if err != nil {
		return interview.Interview{}, fmt.Errorf("get interview by room slug: %w", err)
	}
	return iv, nil
}

func (r *interviewRepositoryImpl) List(ctx context.Context, filter interview.ListFilter) ([]interview.Interview, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}

	if filter.JobIDs != nil {
		args = append(args, filter.JobIDs)
		conditions = append(conditions, fmt.Sprintf("i.job_id = ANY($%d)", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("i.status = $%d", len(args)))
	}
	if filter.Upcoming != nil {
		args = append(args, time.Now().Add(-upcomingGraceWindow))
		if *filter.Upcoming {
			conditions = append(conditions, fmt.Sprintf(
				"(i.scheduled_at >= $%d OR i.status = 'pending_selection')", len(args)))
		} else {
			conditions = append(conditions, fmt.Sprintf(
				"(i.scheduled_at < $%d AND i.status <> 'pending_selection')", len(args)))
		}
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM interviews i WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count interviews: %w", err)
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
		SELECT %s,
			j.id, j.company_id, j.title, j.location, j.job_type,
			g.id, g.user_id, g.first_name, g.last_name
		FROM interviews i
		JOIN jobs j ON j.id = i.job_id
		JOIN graduates g ON g.id = i.graduate_id
		WHERE %s
		ORDER BY COALESCE(i.scheduled_at, (i.suggested_time_slots->0->>'date')::timestamptz) ASC, i.created_at DESC
		LIMIT $%d OFFSET $%d
	`, interviewColumns, where, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list interviews: %w", err)
	}
	defer rows.Close()

	var interviews []interview.Interview
	for rows.Next() {
		iv, err := scanInterviewHydrated(rows)
		if err != nil {
			return nil, 0, err
		}
		interviews = append(interviews, iv)
	}

	return interviews, total, rows.Err()
}

func (r *interviewRepositoryImpl) CompleteExpired(ctx context.Context, jobIDs []string, now time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	if len(jobIDs) == 0 {
		return 0, nil
	}

	commandTag, err := q.Exec(ctx, `
		UPDATE interviews
		SET status = 'completed', ended_at = $2, updated_at = NOW()
		WHERE job_id = ANY($1)
		  AND status IN ('scheduled', 'in_progress')
		  AND scheduled_at + duration_minutes * interval '1 minute' <= $2
	`, jobIDs, now)
	if err != nil {
		return 0, fmt.Errorf("complete expired interviews: %w", err)
	}

	return commandTag.RowsAffected(), nil
}

func (r *interviewRepositoryImpl) Schedule(ctx context.Context, id string, scheduledAt time.Time, durationMinutes int, updatedBy string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE interviews
		SET scheduled_at = $1, duration_minutes = $2, status = 'scheduled',
		    updated_by = $3, updated_at = NOW()
		WHERE id = $4
	`, scheduledAt, durationMinutes, updatedBy, id)
	if err != nil {
		return fmt.Errorf("schedule interview: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return interview.ErrInterviewNotFound
	}
	return nil
}

func (r *interviewRepositoryImpl) UpdateStatus(ctx context.Context, id string, status interview.Status, updatedBy string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE interviews
		SET status = $1,
		    updated_by = $2,
		    started_at = CASE WHEN $1 = 'in_progress' AND started_at IS NULL THEN NOW() ELSE started_at END,
		    ended_at = CASE WHEN $1 IN ('completed', 'cancelled') AND ended_at IS NULL THEN NOW() ELSE ended_at END,
		    updated_at = NOW()
		WHERE id = $3
	`

	commandTag, err := q.Exec(ctx, query, status, updatedBy, id)
	if err != nil {
		return fmt.Errorf("update interview status: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return interview.ErrInterviewNotFound
	}
	return nil
}
