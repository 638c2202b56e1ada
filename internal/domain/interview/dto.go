package interview

import (
	"time"

	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/validator"
)

// ============= Request DTOs =============

type ScheduleRequest struct {
	ApplicationID      string     `json:"application_id"`
	SuggestedTimeSlots []TimeSlot `json:"suggested_time_slots"`
}

func (r ScheduleRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.ApplicationID) {
		errs = append(errs, validator.ValidationError{Field: "application_id", Message: "is required"})
	}
	if len(r.SuggestedTimeSlots) == 0 {
		errs = append(errs, validator.ValidationError{Field: "suggested_time_slots", Message: "at least one slot is required"})
	}
	for _, slot := range r.SuggestedTimeSlots {
		if slot.Duration < 15 || slot.Duration > 240 {
			errs = append(errs, validator.ValidationError{Field: "suggested_time_slots", Message: "slot duration must be between 15 and 240 minutes"})
			break
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SelectSlotRequest struct {
	SlotIndex int `json:"slot_index"`
}

// ============= Response DTOs =============

type JobSummary struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title,omitempty"`
	Location    string `json:"location,omitempty"`
	JobType     string `json:"job_type,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
}

type ParticipantSummary struct {
	Name string `json:"name,omitempty"`
}

type Response struct {
	ID                 string             `json:"id"`
	ApplicationID      string             `json:"application_id,omitempty"`
	ScheduledAt        *time.Time         `json:"scheduled_at,omitempty"`
	Status             Status             `json:"status"`
	DurationMinutes    int                `json:"duration_minutes"`
	SuggestedTimeSlots []TimeSlot         `json:"suggested_time_slots,omitempty"`
	RoomSlug           string             `json:"room_slug,omitempty"`
	RoomURL            string             `json:"room_url,omitempty"`
	Job                JobSummary         `json:"job"`
	Participant        ParticipantSummary `json:"participant"`
}

// ToResponse serializes an interview for listings. Pending selections show
// the first suggested slot's date without it ever being persisted.
func ToResponse(i Interview) Response {
	resp := Response{
		ID:                 i.ID,
		ApplicationID:      i.ApplicationID,
		ScheduledAt:        i.DisplayScheduledAt(),
		Status:             i.Status,
		DurationMinutes:    i.DisplayDuration(),
		SuggestedTimeSlots: i.SuggestedTimeSlots,
		RoomSlug:           i.RoomSlug,
		RoomURL:            i.RoomURL,
	}
	if j, ok := i.Job.Entity(); ok {
		resp.Job = JobSummary{
			ID:       j.ID,
			Title:    j.Title,
			Location: j.Location,
			JobType:  j.JobType,
		}
		if c, ok := j.Company.Entity(); ok {
			resp.Job.CompanyName = c.CompanyName
		}
	}
	if g, ok := i.Graduate.Entity(); ok {
		resp.Participant = ParticipantSummary{Name: g.FullName()}
	}
	return resp
}

type ListResponse struct {
	Interviews []Response `json:"interviews"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	Total      int64      `json:"total"`
	Pages      int        `json:"pages"`
}
