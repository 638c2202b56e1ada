package job

import (
	"time"

	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/validator"
)

// ============= Request DTOs =============

type CreateJobRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	JobType       string `json:"job_type"`
	DirectContact *bool  `json:"direct_contact"`
}

func (r CreateJobRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateJobRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	Location      *string `json:"location"`
	JobType       *string `json:"job_type"`
	Status        *string `json:"status"`
	DirectContact *bool   `json:"direct_contact"`
}

func (r UpdateJobRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "must not be empty"})
	}
	if r.Status != nil {
		if _, ok := ParseStatus(*r.Status); !ok {
			errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of: active, closed, draft"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ============= Response DTOs =============

type Response struct {
	ID            string    `json:"id"`
	CompanyID     string    `json:"company_id"`
	CompanyName   string    `json:"company_name,omitempty"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Location      string    `json:"location,omitempty"`
	JobType       string    `json:"job_type,omitempty"`
	Status        Status    `json:"status"`
	DirectContact bool      `json:"direct_contact"`
	CreatedAt     time.Time `json:"created_at"`
}

func ToResponse(j Job) Response {
	resp := Response{
		ID:            j.ID,
		CompanyID:     j.Company.ID(),
		Title:         j.Title,
		Description:   j.Description,
		Location:      j.Location,
		JobType:       j.JobType,
		Status:        j.Status,
		DirectContact: j.DirectContact,
		CreatedAt:     j.CreatedAt,
	}
	if c, ok := j.Company.Entity(); ok {
		resp.CompanyName = c.CompanyName
	}
	return resp
}
