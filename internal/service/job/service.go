package job

import (
	"context"
	"log/slog"
	"strings"

	"github.com/DLT-Africa-Hub/Recruita/internal/domain/company"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/job"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/match"
	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/ai"
	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/ref"
)

type JobService interface {
	// Create posts a job for the company identified by companyUserID. The
	// job description is embedded for match scoring.
	Create(ctx context.Context, companyUserID string, req job.CreateJobRequest) (job.Response, error)
	Update(ctx context.Context, companyUserID, jobID string, req job.UpdateJobRequest) (job.Response, error)
	Delete(ctx context.Context, companyUserID, jobID string) error
	Get(ctx context.Context, jobID string) (job.Response, error)
	// ListActive is the public catalog served to graduates.
	ListActive(ctx context.Context, search string, page, limit int) ([]job.Response, int64, error)
	ListForCompany(ctx context.Context, companyUserID string, page, limit int) ([]job.Response, int64, error)
	// MatchesForJob returns the top scored graduates for one of the
	// caller's jobs.
	MatchesForJob(ctx context.Context, companyUserID, jobID string, limit int) ([]match.Response, error)

	// Admin variants skip the ownership check.
	ListAll(ctx context.Context, status *job.Status, search string, page, limit int) ([]job.Response, int64, error)
	AdminUpdate(ctx context.Context, jobID string, req job.UpdateJobRequest) (job.Response, error)
	// AdminDelete removes the job along with its applications, offers and
	// interviews.
	AdminDelete(ctx context.Context, jobID string) error
}

type JobServiceImpl struct {
	jobs      job.Repository
	companies company.Repository
	matches   match.Repository
	ai        *ai.Client
}

func NewJobService(jobs job.Repository, companies company.Repository, matches match.Repository, aiClient *ai.Client) JobService {
	return &JobServiceImpl{
		jobs:      jobs,
		companies: companies,
		matches:   matches,
		ai:        aiClient,
	}
}

// Create implements JobService.
func (s *JobServiceImpl) Create(ctx context.Context, companyUserID string, req job.CreateJobRequest) (job.Response, error) {
	if err := req.Validate(); err != nil {
		return job.Response{}, err
	}

	c, err := s.companies.GetByUserID(ctx, companyUserID)
	if err != nil {
		return job.Response{}, err
	}
	if !c.IsActive {
		return job.Response{}, company.ErrCompanyInactive
	}

	directContact := false
	if req.DirectContact != nil {
		directContact = *req.DirectContact
	}

	j := job.Job{
		Company:       ref.Populated(c.ID, &c),
		Title:         strings.TrimSpace(req.Title),
		Description:   req.Description,
		Location:      req.Location,
		JobType:       req.JobType,
		Status:        job.StatusActive,
		DirectContact: directContact,
	}

	embedding, err := s.ai.Embed(ctx, j.Title+"\n"+j.Description)
	if err != nil {
		// A job without an embedding still posts; it just stays out of
		// match scoring until updated.
		slog.Error("failed to embed job description", "title", j.Title, "error", err)
	} else {
		j.Embedding = embedding
	}

	created, err := s.jobs.Create(ctx, j)
	if err != nil {
		return job.Response{}, err
	}
	created.Company = ref.Populated(c.ID, &c)

	return job.ToResponse(created), nil
}

// Update implements JobService.
func (s *JobServiceImpl) Update(ctx context.Context, companyUserID, jobID string, req job.UpdateJobRequest) (job.Response, error) {
	if err := req.Validate(); err != nil {
		return job.Response{}, err
	}

	j, err := s.ownedJob(ctx, companyUserID, jobID)
	if err != nil {
		return job.Response{}, err
	}
	return s.applyUpdate(ctx, j, req)
}

// AdminUpdate implements JobService. Admins may edit any job, including the
// direct-contact flag that moves its applications between the admin and
// company workflows.
func (s *JobServiceImpl) AdminUpdate(ctx context.Context, jobID string, req job.UpdateJobRequest) (job.Response, error) {
	if err := req.Validate(); err != nil {
		return job.Response{}, err
	}

	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return job.Response{}, err
	}
	return s.applyUpdate(ctx, j, req)
}

func (s *JobServiceImpl) applyUpdate(ctx context.Context, j job.Job, req job.UpdateJobRequest) (job.Response, error) {
	reembed := false
	if req.Title != nil {
		j.Title = strings.TrimSpace(*req.Title)
		reembed = true
	}
	if req.Description != nil {
		j.Description = *req.Description
		reembed = true
	}
	if req.Location != nil {
		j.Location = *req.Location
	}
	if req.JobType != nil {
		j.JobType = *req.JobType
	}
	if req.Status != nil {
		status, _ := job.ParseStatus(*req.Status)
		j.Status = status
	}
	if req.DirectContact != nil {
		j.DirectContact = *req.DirectContact
	}

	if reembed {
		embedding, err := s.ai.Embed(ctx, j.Title+"\n"+j.Description)
		if err != nil {
			slog.Error("failed to re-embed job description", "job_id", j.ID, "error", err)
		} else {
			j.Embedding = embedding
		}
	}

	if err := s.jobs.Update(ctx, j); err != nil {
		return job.Response{}, err
	}

	return job.ToResponse(j), nil
}

// Delete implements JobService.
func (s *JobServiceImpl) Delete(ctx context.Context, companyUserID, jobID string) error {
	j, err := s.ownedJob(ctx, companyUserID, jobID)
	if err != nil {
		return err
	}
	return s.jobs.Delete(ctx, j.ID)
}

// ownedJob loads a job and verifies it belongs to the caller's company.
func (s *JobServiceImpl) ownedJob(ctx context.Context, companyUserID, jobID string) (job.Job, error) {
	c, err := s.companies.GetByUserID(ctx, companyUserID)
	if err != nil {
		return job.Job{}, err
	}

	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return job.Job{}, err
	}
	if j.Company.ID() != c.ID {
		return job.Job{}, job.ErrNotJobOwner
	}
	return j, nil
}

// Get implements JobService.
func (s *JobServiceImpl) Get(ctx context.Context, jobID string) (job.Response, error) {
	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return job.Response{}, err
	}
	return job.ToResponse(j), nil
}

// ListActive implements JobService.
func (s *JobServiceImpl) ListActive(ctx context.Context, search string, page, limit int) ([]job.Response, int64, error) {
	active := job.StatusActive
	return s.list(ctx, job.ListFilter{
		Status: &active,
		Search: search,
		Page:   page,
		Limit:  limit,
	})
}

// ListForCompany implements JobService.
func (s *JobServiceImpl) ListForCompany(ctx context.Context, companyUserID string, page, limit int) ([]job.Response, int64, error) {
	c, err := s.companies.GetByUserID(ctx, companyUserID)
	if err != nil {
		return nil, 0, err
	}
	return s.list(ctx, job.ListFilter{
		CompanyID: &c.ID,
		Page:      page,
		Limit:     limit,
	})
}

// MatchesForJob implements JobService.
func (s *JobServiceImpl) MatchesForJob(ctx context.Context, companyUserID, jobID string, limit int) ([]match.Response, error) {
	j, err := s.ownedJob(ctx, companyUserID, jobID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}

	matches, err := s.matches.ListByJob(ctx, j.ID, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]match.Response, len(matches))
	for i, m := range matches {
		responses[i] = match.Response{
			ID:         m.ID,
			GraduateID: m.GraduateID,
			JobID:      m.JobID,
			JobTitle:   j.Title,
			Score:      m.Score,
		}
	}
	return responses, nil
}

// ListAll implements JobService.
func (s *JobServiceImpl) ListAll(ctx context.Context, status *job.Status, search string, page, limit int) ([]job.Response, int64, error) {
	return s.list(ctx, job.ListFilter{
		Status: status,
		Search: search,
		Page:   page,
		Limit:  limit,
	})
}

// AdminDelete implements JobService. Dependent rows go with the job through
// the schema's cascade rules.
func (s *JobServiceImpl) AdminDelete(ctx context.Context, jobID string) error {
	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		return err
	}
	return s.jobs.Delete(ctx, jobID)
}

func (s *JobServiceImpl) list(ctx context.Context, filter job.ListFilter) ([]job.Response, int64, error) {
	jobs, total, err := s.jobs.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]job.Response, len(jobs))
	for i, j := range jobs {
		responses[i] = job.ToResponse(j)
	}
	return responses, total, nil
}
