// Package interview models scheduled interview sessions.
//
// Status graph:
//
//	pending_selection ──► scheduled ──► in_progress ──► completed
//
// cancelled is reachable from any non-terminal status. The expiry sweep only
// ever drives scheduled|in_progress → completed.
package interview

import (
	"time"

	"github.com/DLT-Africa-Hub/Recruita/internal/domain/graduate"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/job"
	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/ref"
)

type Status string

const (
	StatusPendingSelection Status = "pending_selection"
	StatusScheduled        Status = "scheduled"
	StatusInProgress       Status = "in_progress"
	StatusCompleted        Status = "completed"
	StatusCancelled        Status = "cancelled"
)

// ParseStatus converts a raw string to a Status, returning false for unknown
// values.
func ParseStatus(s string) (Status, bool) {
	st := Status(s)
	switch st {
	case StatusPendingSelection, StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled:
		return st, true
	}
	return "", false
}

// Terminal reports whether no further transition may leave st.
func (st Status) Terminal() bool {
	return st == StatusCompleted || st == StatusCancelled
}

// TimeSlot is one candidate interview time offered to the graduate.
type TimeSlot struct {
	Date     time.Time `json:"date"`
	Duration int       `json:"duration"`
}

type Interview struct {
	ID            string
	ApplicationID string
	Job           ref.Ref[job.Job]
	Graduate      ref.Ref[graduate.Graduate]
	CompanyID     string

	GraduateUserID string
	CompanyUserID  string

	ScheduledAt     *time.Time
	DurationMinutes int
	Status          Status

	// SuggestedTimeSlots is the ordered sequence offered while the
	// interview is pending selection.
	SuggestedTimeSlots []TimeSlot

	RoomSlug string
	RoomURL  string

	CreatedBy string
	UpdatedBy *string
	StartedAt *time.Time
	EndedAt   *time.Time
	Notes     *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndsAt returns the scheduled end time, or false while no slot is chosen.
func (i Interview) EndsAt() (time.Time, bool) {
	if i.ScheduledAt == nil {
		return time.Time{}, false
	}
	return i.ScheduledAt.Add(time.Duration(i.DurationMinutes) * time.Minute), true
}

// DisplayScheduledAt returns the time a listing should show: the chosen slot
// when one exists, otherwise the first suggested slot for pending-selection
// interviews. The substitute is display-only and never written back.
func (i Interview) DisplayScheduledAt() *time.Time {
	if i.ScheduledAt != nil {
		return i.ScheduledAt
	}
	if i.Status == StatusPendingSelection && len(i.SuggestedTimeSlots) > 0 {
		d := i.SuggestedTimeSlots[0].Date
		return &d
	}
	return nil
}

// DisplayDuration mirrors DisplayScheduledAt for the duration column.
func (i Interview) DisplayDuration() int {
	if i.DurationMinutes > 0 {
		return i.DurationMinutes
	}
	if len(i.SuggestedTimeSlots) > 0 && i.SuggestedTimeSlots[0].Duration > 0 {
		return i.SuggestedTimeSlots[0].Duration
	}
	return 30
}
