package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/DLT-Africa-Hub/Recruita/internal/domain/interview"
)

type InterviewJobs struct {
	interviewSvc interview.Service
}

func NewInterviewJobs(interviewSvc interview.Service) *InterviewJobs {
	return &InterviewJobs{interviewSvc: interviewSvc}
}

func (j *InterviewJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("complete_expired_interviews", 10*time.Minute, j.CompleteExpiredInterviews)
}

// CompleteExpiredInterviews moves scheduled and in-progress interviews whose
// time window has elapsed to completed. Listings also sweep on demand, so this
// only catches interviews nobody has looked at recently.
func (j *InterviewJobs) CompleteExpiredInterviews(ctx context.Context) error {
	count, err := j.interviewSvc.SweepExpired(ctx)
	if err != nil {
		return err
	}

	if count > 0 {
		slog.Info("Cron: Completed expired interviews", "count", count)
	}
	return nil
}
