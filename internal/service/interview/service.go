package interview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DLT-Africa-Hub/Recruita/internal/domain/application"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/interview"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/job"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/notification"
	"github.com/google/uuid"
)

type InterviewServiceImpl struct {
	interviews   interview.Repository
	applications application.Repository
	jobs         job.Repository
	notifier     notification.Service
	frontendURL  string
	now          func() time.Time
}

func NewInterviewService(
	interviews interview.Repository,
	applications application.Repository,
	jobs job.Repository,
	notifier notification.Service,
	frontendURL string,
) interview.Service {
	return &InterviewServiceImpl{
		interviews:   interviews,
		applications: applications,
		jobs:         jobs,
		notifier:     notifier,
		frontendURL:  frontendURL,
		now:          time.Now,
	}
}

// Schedule implements interview.Service. The interview starts in pending
// selection; the graduate picks one of the suggested slots later.
func (s *InterviewServiceImpl) Schedule(ctx context.Context, actingUserID string, req interview.ScheduleRequest) (interview.Response, error) {
	if err := req.Validate(); err != nil {
		return interview.Response{}, err
	}

	app, err := s.applications.GetByID(ctx, req.ApplicationID)
	if err != nil {
		return interview.Response{}, err
	}

	if _, err := s.interviews.GetByApplicationID(ctx, app.ID); err == nil {
		return interview.Response{}, interview.ErrInterviewExists
	} else if !errors.Is(err, interview.ErrInterviewNotFound) {
		return interview.Response{}, err
	}

	j, ok := app.Job.Entity()
	if !ok {
		return interview.Response{}, fmt.Errorf("application %s has no job", app.ID)
	}
	g, ok := app.Graduate.Entity()
	if !ok {
		return interview.Response{}, fmt.Errorf("application %s has no graduate", app.ID)
	}

	companyUserID := ""
	if c, ok := j.Company.Entity(); ok {
		companyUserID = c.UserID
	}

	slug := uuid.New().String()
	created, err := s.interviews.Create(ctx, interview.Interview{
		ApplicationID:      app.ID,
		Job:                app.Job,
		Graduate:           app.Graduate,
		CompanyID:          j.Company.ID(),
		GraduateUserID:     g.UserID,
		CompanyUserID:      companyUserID,
		Status:             interview.StatusPendingSelection,
		SuggestedTimeSlots: req.SuggestedTimeSlots,
		RoomSlug:           slug,
		RoomURL:            s.frontendURL + "/interviews/room/" + slug,
		CreatedBy:          actingUserID,
	})
	if err != nil {
		return interview.Response{}, err
	}

	relatedType := "interview"
	_ = s.notifier.Queue(ctx, notification.CreateNotificationRequest{
		UserID:      g.UserID,
		Type:        notification.TypeInterview,
		Title:       "Interview Invitation",
		Message:     fmt.Sprintf("Select a time slot for your %s interview", j.Title),
		RelatedID:   &created.ID,
		RelatedType: &relatedType,
		Email: &notification.EmailPayload{
			Subject: "Interview Invitation",
			Text:    fmt.Sprintf("You have been invited to interview for the %s position. Pick one of the suggested time slots from your dashboard.", j.Title),
		},
	})

	created.Job = app.Job
	created.Graduate = app.Graduate
	return interview.ToResponse(created), nil
}

// SelectSlot implements interview.Service.
func (s *InterviewServiceImpl) SelectSlot(ctx context.Context, graduateUserID, interviewID string, req interview.SelectSlotRequest) (interview.Response, error) {
	iv, err := s.interviews.GetByID(ctx, interviewID)
	if err != nil {
		return interview.Response{}, err
	}

	if iv.GraduateUserID != graduateUserID {
		return interview.Response{}, interview.ErrNotParticipant
	}
	if iv.Status != interview.StatusPendingSelection {
		return interview.Response{}, interview.ErrAlreadyScheduled
	}
	if req.SlotIndex < 0 || req.SlotIndex >= len(iv.SuggestedTimeSlots) {
		return interview.Response{}, interview.ErrInvalidSlot
	}

	slot := iv.SuggestedTimeSlots[req.SlotIndex]
	duration := slot.Duration
	if duration == 0 {
		duration = 30
	}

	if err := s.interviews.Schedule(ctx, iv.ID, slot.Date, duration, graduateUserID); err != nil {
		return interview.Response{}, err
	}

	relatedType := "interview"
	_ = s.notifier.Queue(ctx, notification.CreateNotificationRequest{
		UserID:      iv.CompanyUserID,
		Type:        notification.TypeInterview,
		Title:       "Interview Scheduled",
		Message:     fmt.Sprintf("The candidate confirmed the interview for %s", slot.Date.Format(time.RFC1123)),
		RelatedID:   &iv.ID,
		RelatedType: &relatedType,
	})

	return s.response(ctx, iv.ID)
}

// GetByRoomSlug implements interview.Service. Only participants may load the
// room view.
func (s *InterviewServiceImpl) GetByRoomSlug(ctx context.Context, userID, slug string) (interview.Response, error) {
	iv, err := s.interviews.GetByRoomSlug(ctx, slug)
	if err != nil {
		return interview.Response{}, err
	}

	if iv.GraduateUserID != userID && iv.CompanyUserID != userID && iv.CreatedBy != userID {
		return interview.Response{}, interview.ErrNotParticipant
	}

	// Entering the room inside the scheduled window starts the interview.
	if iv.Status == interview.StatusScheduled && iv.ScheduledAt != nil {
		now := s.now()
		if end, ok := iv.EndsAt(); ok && !now.Before(*iv.ScheduledAt) && now.Before(end) {
			if err := s.interviews.UpdateStatus(ctx, iv.ID, interview.StatusInProgress, userID); err != nil {
				return interview.Response{}, err
			}
			iv.Status = interview.StatusInProgress
			iv.StartedAt = &now
		}
	}

	return interview.ToResponse(iv), nil
}

// ListAdminManaged implements interview.Service. Expired interviews across
// admin-managed jobs are swept to completed before the page is read, so a
// listing never shows a live status for an interview whose window has
// passed.
func (s *InterviewServiceImpl) ListAdminManaged(ctx context.Context, filter interview.ListFilter) (interview.ListResponse, error) {
	jobIDs, err := s.jobs.AdminManagedIDs(ctx)
	if err != nil {
		return interview.ListResponse{}, err
	}

	if n, err := s.interviews.CompleteExpired(ctx, jobIDs, s.now()); err != nil {
		// The sweep failing should not take the listing down with it.
		slog.Error("interview expiry sweep failed", "error", err)
	} else if n > 0 {
		slog.Info("interview expiry sweep", "completed", n)
	}

	filter.JobIDs = jobIDs
	interviews, total, err := s.interviews.List(ctx, filter)
	if err != nil {
		return interview.ListResponse{}, err
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	responses := make([]interview.Response, len(interviews))
	for i, iv := range interviews {
		responses[i] = interview.ToResponse(iv)
	}

	pages := int((total + int64(limit) - 1) / int64(limit))
	return interview.ListResponse{
		Interviews: responses,
		Page:       page,
		Limit:      limit,
		Total:      total,
		Pages:      pages,
	}, nil
}

// Cancel implements interview.Service.
func (s *InterviewServiceImpl) Cancel(ctx context.Context, actingUserID, interviewID string) error {
	iv, err := s.interviews.GetByID(ctx, interviewID)
	if err != nil {
		return err
	}
	if iv.Status.Terminal() {
		return interview.ErrAlreadyFinished
	}

	if err := s.interviews.UpdateStatus(ctx, iv.ID, interview.StatusCancelled, actingUserID); err != nil {
		return err
	}

	relatedType := "interview"
	_ = s.notifier.Queue(ctx, notification.CreateNotificationRequest{
		UserID:      iv.GraduateUserID,
		Type:        notification.TypeInterview,
		Title:       "Interview Cancelled",
		Message:     "Your interview has been cancelled",
		RelatedID:   &iv.ID,
		RelatedType: &relatedType,
	})

	return nil
}

// SweepExpired implements interview.Service; the cron scheduler runs it in
// addition to the pre-listing sweep.
func (s *InterviewServiceImpl) SweepExpired(ctx context.Context) (int64, error) {
	jobIDs, err := s.jobs.AdminManagedIDs(ctx)
	if err != nil {
		return 0, err
	}
	return s.interviews.CompleteExpired(ctx, jobIDs, s.now())
}

func (s *InterviewServiceImpl) response(ctx context.Context, id string) (interview.Response, error) {
	iv, err := s.interviews.GetByID(ctx, id)
	if err != nil {
		return interview.Response{}, err
	}
	return interview.ToResponse(iv), nil
}
