package application

import "time"

// ============= Request DTOs =============

type UpdateStatusRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes"`
}

type SubmitRequest struct {
	JobID  string  `json:"job_id"`
	Resume *string `json:"resume"`
}

// ============= Response DTOs =============

type Response struct {
	ID           string     `json:"id"`
	JobID        string     `json:"job_id"`
	JobTitle     string     `json:"job_title,omitempty"`
	GraduateID   string     `json:"graduate_id"`
	GraduateName string     `json:"graduate_name,omitempty"`
	Status       Status     `json:"status"`
	Notes        *string    `json:"notes,omitempty"`
	Resume       *string    `json:"resume,omitempty"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func ToResponse(a Application) Response {
	resp := Response{
		ID:         a.ID,
		JobID:      a.Job.ID(),
		GraduateID: a.Graduate.ID(),
		Status:     a.Status,
		Notes:      a.Notes,
		Resume:     a.Resume,
		ReviewedAt: a.ReviewedAt,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
	if j, ok := a.Job.Entity(); ok {
		resp.JobTitle = j.Title
	}
	if g, ok := a.Graduate.Entity(); ok {
		resp.GraduateName = g.FullName()
	}
	return resp
}
