// Package application defines a graduate's submission against a job and the
// review statuses it moves through.
//
// Review status graph (admin- or company-driven):
//
//	pending ──► reviewed ──► shortlisted ──► interviewed ──► accepted ──► offer_sent ──► hired
//	    │           │             │               │                           │
//	    └───────────┴─────────────┴───────────────┴───────────────────────────┴──► rejected
//
// Reviewers may also jump straight to any review status; the enumerated set,
// not the current status, is what gates a transition.
package application

import (
	"time"

	"github.com/DLT-Africa-Hub/Recruita/internal/domain/graduate"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/job"
	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/ref"
)

type Status string

const (
	StatusPending     Status = "pending"
	StatusReviewed    Status = "reviewed"
	StatusShortlisted Status = "shortlisted"
	StatusInterviewed Status = "interviewed"
	StatusAccepted    Status = "accepted"
	StatusOfferSent   Status = "offer_sent"
	StatusHired       Status = "hired"
	StatusRejected    Status = "rejected"
)

// ReviewStatuses is the set of statuses a reviewer may request through the
// transition workflow, in the order they are reported to callers.
var ReviewStatuses = []Status{
	StatusAccepted,
	StatusRejected,
	StatusReviewed,
	StatusShortlisted,
	StatusInterviewed,
	StatusOfferSent,
	StatusHired,
}

// ParseReviewStatus converts a raw string to a Status a reviewer may request.
// It returns false for anything outside the review set, including "pending",
// which only submission may produce.
func ParseReviewStatus(s string) (Status, bool) {
	st := Status(s)
	for _, valid := range ReviewStatuses {
		if st == valid {
			return st, true
		}
	}
	return "", false
}

type Application struct {
	ID       string
	Job      ref.Ref[job.Job]
	Graduate ref.Ref[graduate.Graduate]

	Status     Status
	Notes      *string
	Resume     *string
	ReviewedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
