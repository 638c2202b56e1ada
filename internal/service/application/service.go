package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DLT-Africa-Hub/Recruita/internal/domain/application"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/company"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/graduate"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/job"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/notification"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/offer"
	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/database"
	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/ref"
	"github.com/DLT-Africa-Hub/Recruita/internal/repository/postgresql"
)

const (
	msgStatusUpdated        = "Application status updated successfully"
	msgAcceptedAndOfferSent = "Application accepted and offer sent successfully"
)

// effect runs after the status write has been committed. It returns the
// success message reported to the caller.
type effect func(ctx context.Context, app application.Application, actor application.Actor, now time.Time) (string, error)

type ApplicationServiceImpl struct {
	db           *database.DB
	applications application.Repository
	jobs         job.Repository
	companies    company.Repository
	graduates    graduate.Repository
	offers       offer.Repository
	offerIssuer  offer.Issuer
	notifier     notification.Service

	// effects maps a requested status to its post-write side effects.
	// Statuses without an entry fall through to the default notification.
	effects map[application.Status]effect

	// withTx runs fn transactionally; replaceable in tests.
	withTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewApplicationService(
	db *database.DB,
	applications application.Repository,
	jobs job.Repository,
	companies company.Repository,
	graduates graduate.Repository,
	offers offer.Repository,
	offerIssuer offer.Issuer,
	notifier notification.Service,
) application.Service {
	s := &ApplicationServiceImpl{
		db:           db,
		applications: applications,
		jobs:         jobs,
		companies:    companies,
		graduates:    graduates,
		offers:       offers,
		offerIssuer:  offerIssuer,
		notifier:     notifier,
	}
	s.effects = map[application.Status]effect{
		application.StatusAccepted: s.acceptedEffect,
		application.StatusHired:    s.hiredEffect,
	}
	s.withTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
		return postgresql.WithTransaction(ctx, db, fn)
	}
	return s
}

// Submit implements application.Service.
func (s *ApplicationServiceImpl) Submit(ctx context.Context, graduateUserID string, req application.SubmitRequest) (application.Response, error) {
	g, err := s.graduates.GetByUserID(ctx, graduateUserID)
	if err != nil {
		return application.Response{}, err
	}

	j, err := s.jobs.GetByID(ctx, req.JobID)
	if err != nil {
		return application.Response{}, err
	}
	if j.Status != job.StatusActive {
		return application.Response{}, job.ErrJobNotActive
	}

	created, err := s.applications.Create(ctx, application.Application{
		Job:      ref.Populated(j.ID, &j),
		Graduate: ref.Populated(g.ID, &g),
		Status:   application.StatusPending,
		Resume:   req.Resume,
	})
	if err != nil {
		return application.Response{}, err
	}

	if c, ok := j.Company.Entity(); ok {
		relatedType := "application"
		_ = s.notifier.Queue(ctx, notification.CreateNotificationRequest{
			UserID:      c.UserID,
			Type:        notification.TypeApplication,
			Title:       "New Application",
			Message:     fmt.Sprintf("%s applied for %s", g.FullName(), j.Title),
			RelatedID:   &created.ID,
			RelatedType: &relatedType,
		})
	}

	return application.ToResponse(created), nil
}

// UpdateStatus implements the admin entry point of the transition workflow.
func (s *ApplicationServiceImpl) UpdateStatus(ctx context.Context, actor application.Actor, applicationID string, req application.UpdateStatusRequest) (application.Response, string, error) {
	return s.updateStatus(ctx, actor, applicationID, req, func(j job.Job) error {
		if !j.AdminManaged() {
			return application.ErrNotAdminManaged
		}
		return nil
	})
}

// UpdateStatusAsCompany implements the company entry point.
func (s *ApplicationServiceImpl) UpdateStatusAsCompany(ctx context.Context, actor application.Actor, applicationID string, req application.UpdateStatusRequest) (application.Response, string, error) {
	return s.updateStatus(ctx, actor, applicationID, req, func(j job.Job) error {
		if j.AdminManaged() {
			return application.ErrNotCompanyManaged
		}
		if j.Company.ID() != actor.CompanyID {
			return job.ErrNotJobOwner
		}
		return nil
	})
}

// updateStatus is the shared transition pipeline: validate the requested
// status, authorize against the job, write the status unconditionally, then
// dispatch the per-status effect.
func (s *ApplicationServiceImpl) updateStatus(ctx context.Context, actor application.Actor, applicationID string, req application.UpdateStatusRequest, authorize func(job.Job) error) (application.Response, string, error) {
	status, ok := application.ParseReviewStatus(req.Status)
	if !ok {
		return application.Response{}, "", application.ErrInvalidStatus
	}

	app, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return application.Response{}, "", err
	}

	j, ok := app.Job.Entity()
	if !ok {
		return application.Response{}, "", fmt.Errorf("application %s has no job", app.ID)
	}
	if err := authorize(*j); err != nil {
		return application.Response{}, "", err
	}

	now := time.Now()
	if err := s.applications.UpdateStatus(ctx, application.StatusUpdate{
		ID:         app.ID,
		Status:     status,
		ReviewedAt: now,
		Notes:      req.Notes,
	}); err != nil {
		return application.Response{}, "", err
	}

	app.Status = status
	app.ReviewedAt = &now
	if req.Notes != nil {
		app.Notes = req.Notes
	}

	run := s.effects[status]
	if run == nil {
		run = s.defaultEffect
	}
	message, err := run(ctx, app, actor, now)
	if err != nil {
		return application.Response{}, "", err
	}

	// Effects can move the status further (offer issuance flips accepted to
	// offer_sent); re-fetch so the caller sees the stored state.
	updated, err := s.applications.GetByID(ctx, app.ID)
	if err != nil {
		return application.Response{}, "", err
	}
	return application.ToResponse(updated), message, nil
}

// acceptedEffect runs offer issuance. The accepted status already written
// stands even when issuance fails; re-requesting accepted retries only the
// offer.
func (s *ApplicationServiceImpl) acceptedEffect(ctx context.Context, app application.Application, actor application.Actor, _ time.Time) (string, error) {
	if err := s.offerIssuer.CreateAndSend(ctx, app.ID, actor.UserID); err != nil {
		return "", err
	}
	return msgAcceptedAndOfferSent, nil
}

// hiredEffect finalizes the hire in one transaction, then queues the
// confirmation notifications after commit.
func (s *ApplicationServiceImpl) hiredEffect(ctx context.Context, app application.Application, actor application.Actor, now time.Time) (string, error) {
	j, _ := app.Job.Entity()
	g, _ := app.Graduate.Entity()
	if j == nil || g == nil {
		return "", fmt.Errorf("application %s is not fully hydrated", app.ID)
	}

	err := s.withTx(ctx, func(ctx context.Context) error {
		o, err := s.offers.GetByApplicationID(ctx, app.ID)
		switch {
		case err == nil:
			if err := s.offers.MarkAccepted(ctx, o.ID, now, actor.UserID); err != nil {
				return err
			}
		case !errors.Is(err, offer.ErrOfferNotFound):
			// An application can be hired without an offer on record;
			// only a real lookup failure aborts.
			return err
		}

		if err := s.jobs.UpdateStatus(ctx, j.ID, job.StatusClosed); err != nil {
			return err
		}

		return s.companies.AddHiredCandidate(ctx, j.Company.ID(), g.ID)
	})
	if err != nil {
		return "", fmt.Errorf("failed to finalize hire: %w", err)
	}

	relatedType := "application"
	reqs := []notification.CreateNotificationRequest{
		{
			UserID:      g.UserID,
			Type:        notification.TypeApplication,
			Title:       "Hire Confirmed",
			Message:     fmt.Sprintf("Congratulations! You have been hired for %s", j.Title),
			RelatedID:   &app.ID,
			RelatedType: &relatedType,
			Email: &notification.EmailPayload{
				Subject: "Hire Confirmed",
				Text:    fmt.Sprintf("Congratulations! You have been hired for the %s position.", j.Title),
			},
		},
	}
	if c, ok := j.Company.Entity(); ok {
		reqs = append(reqs, notification.CreateNotificationRequest{
			UserID:      c.UserID,
			Type:        notification.TypeApplication,
			Title:       "Candidate Hired",
			Message:     fmt.Sprintf("%s has been hired for %s", g.FullName(), j.Title),
			RelatedID:   &app.ID,
			RelatedType: &relatedType,
			Email: &notification.EmailPayload{
				Subject: "Candidate Hired",
				Text:    fmt.Sprintf("%s has been hired for the %s position.", g.FullName(), j.Title),
			},
		})
	}
	_ = s.notifier.QueueBulk(ctx, reqs)

	return msgStatusUpdated, nil
}

// defaultEffect notifies the graduate of the new status.
func (s *ApplicationServiceImpl) defaultEffect(ctx context.Context, app application.Application, _ application.Actor, _ time.Time) (string, error) {
	g, _ := app.Graduate.Entity()
	if g == nil {
		return msgStatusUpdated, nil
	}

	title := "Application Updated"
	if app.Status == application.StatusRejected {
		title = "Application Rejected"
	}

	jobTitle := ""
	if j, ok := app.Job.Entity(); ok {
		jobTitle = j.Title
	}

	relatedType := "application"
	_ = s.notifier.Queue(ctx, notification.CreateNotificationRequest{
		UserID:      g.UserID,
		Type:        notification.TypeApplication,
		Title:       title,
		Message:     fmt.Sprintf("Your application for %s has been %s", jobTitle, app.Status),
		RelatedID:   &app.ID,
		RelatedType: &relatedType,
		Email: &notification.EmailPayload{
			Subject: title,
			Text:    fmt.Sprintf("Your application for the %s position has been %s.", jobTitle, app.Status),
		},
	})

	return msgStatusUpdated, nil
}

// Get implements application.Service.
func (s *ApplicationServiceImpl) Get(ctx context.Context, applicationID string) (application.Response, error) {
	app, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return application.Response{}, err
	}
	return application.ToResponse(app), nil
}

// ListForJob implements application.Service.
func (s *ApplicationServiceImpl) ListForJob(ctx context.Context, jobID string, page, limit int) ([]application.Response, int64, error) {
	apps, total, err := s.applications.ListByJob(ctx, jobID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]application.Response, len(apps))
	for i, a := range apps {
		responses[i] = application.ToResponse(a)
	}
	return responses, total, nil
}

// ListForGraduate implements application.Service.
func (s *ApplicationServiceImpl) ListForGraduate(ctx context.Context, graduateUserID string) ([]application.Response, error) {
	g, err := s.graduates.GetByUserID(ctx, graduateUserID)
	if err != nil {
		return nil, err
	}

	apps, err := s.applications.ListByGraduate(ctx, g.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]application.Response, len(apps))
	for i, a := range apps {
		responses[i] = application.ToResponse(a)
	}
	return responses, nil
}
