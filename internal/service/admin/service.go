package admin

import (
	"context"

	"github.com/DLT-Africa-Hub/Recruita/internal/domain/application"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/company"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/graduate"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/job"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/match"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/notification"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/user"
	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/validator"
)

// DashboardStats aggregates platform counts for the admin overview.
type DashboardStats struct {
	Graduates    int64                        `json:"graduates"`
	Companies    int64                        `json:"companies"`
	ActiveJobs   int64                        `json:"active_jobs"`
	ClosedJobs   int64                        `json:"closed_jobs"`
	Matches      int64                        `json:"matches"`
	Applications map[application.Status]int64 `json:"applications"`
}

// SendMessageRequest is an admin-authored message delivered as a
// notification, mirrored to email.
type SendMessageRequest struct {
	UserID  string `json:"user_id"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (r SendMessageRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Subject) {
		errs = append(errs, validator.ValidationError{Field: "subject", Message: "is required"})
	}
	if validator.IsEmpty(r.Message) {
		errs = append(errs, validator.ValidationError{Field: "message", Message: "is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdminService interface {
	Dashboard(ctx context.Context) (DashboardStats, error)
	ListUsers(ctx context.Context, search string, role *user.Role, page, limit int) ([]user.Response, int64, error)
	ListGraduates(ctx context.Context, search string, page, limit int) ([]graduate.Response, int64, error)
	ListCompanies(ctx context.Context, search string, page, limit int) ([]company.Response, int64, error)
	DeleteUser(ctx context.Context, id string) error
	SendMessage(ctx context.Context, req SendMessageRequest) error
}

type AdminServiceImpl struct {
	users        user.Repository
	graduates    graduate.Repository
	companies    company.Repository
	jobs         job.Repository
	applications application.Repository
	matches      match.Repository
	notifier     notification.Service
}

func NewAdminService(
	users user.Repository,
	graduates graduate.Repository,
	companies company.Repository,
	jobs job.Repository,
	applications application.Repository,
	matches match.Repository,
	notifier notification.Service,
) AdminService {
	return &AdminServiceImpl{
		users:        users,
		graduates:    graduates,
		companies:    companies,
		jobs:         jobs,
		applications: applications,
		matches:      matches,
		notifier:     notifier,
	}
}

// Dashboard implements AdminService.
func (s *AdminServiceImpl) Dashboard(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats
	var err error

	if stats.Graduates, err = s.graduates.Count(ctx); err != nil {
		return DashboardStats{}, err
	}
	if stats.Companies, err = s.companies.Count(ctx); err != nil {
		return DashboardStats{}, err
	}
	if stats.ActiveJobs, err = s.jobs.CountByStatus(ctx, job.StatusActive); err != nil {
		return DashboardStats{}, err
	}
	if stats.ClosedJobs, err = s.jobs.CountByStatus(ctx, job.StatusClosed); err != nil {
		return DashboardStats{}, err
	}
	if stats.Matches, err = s.matches.Count(ctx); err != nil {
		return DashboardStats{}, err
	}
	if stats.Applications, err = s.applications.CountByStatus(ctx); err != nil {
		return DashboardStats{}, err
	}

	return stats, nil
}

// ListUsers implements AdminService.
func (s *AdminServiceImpl) ListUsers(ctx context.Context, search string, role *user.Role, page, limit int) ([]user.Response, int64, error) {
	users, total, err := s.users.List(ctx, search, role, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]user.Response, len(users))
	for i, u := range users {
		responses[i] = user.ToResponse(u)
	}
	return responses, total, nil
}

// ListGraduates implements AdminService.
func (s *AdminServiceImpl) ListGraduates(ctx context.Context, search string, page, limit int) ([]graduate.Response, int64, error) {
	graduates, total, err := s.graduates.List(ctx, search, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]graduate.Response, len(graduates))
	for i, g := range graduates {
		responses[i] = graduate.ToResponse(g)
	}
	return responses, total, nil
}

// ListCompanies implements AdminService.
func (s *AdminServiceImpl) ListCompanies(ctx context.Context, search string, page, limit int) ([]company.Response, int64, error) {
	companies, total, err := s.companies.List(ctx, search, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]company.Response, len(companies))
	for i, c := range companies {
		responses[i] = company.ToResponse(c)
	}
	return responses, total, nil
}

// DeleteUser implements AdminService.
func (s *AdminServiceImpl) DeleteUser(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}

// SendMessage implements AdminService.
func (s *AdminServiceImpl) SendMessage(ctx context.Context, req SendMessageRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.users.GetByID(ctx, req.UserID); err != nil {
		return err
	}

	return s.notifier.Queue(ctx, notification.CreateNotificationRequest{
		UserID:  req.UserID,
		Type:    notification.TypeMessage,
		Title:   req.Subject,
		Message: req.Message,
		Email: &notification.EmailPayload{
			Subject: req.Subject,
			Text:    req.Message,
		},
	})
}
