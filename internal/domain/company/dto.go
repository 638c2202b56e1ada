package company

import (
	"time"

	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/validator"
)

// ============= Request DTOs =============

type UpsertProfileRequest struct {
	CompanyName string `json:"company_name"`
	Industry    string `json:"industry"`
	Description string `json:"description"`
	Website     string `json:"website"`
}

func (r UpsertProfileRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.CompanyName) {
		errs = append(errs, validator.ValidationError{Field: "company_name", Message: "is required"})
	}
	if r.Website != "" && !validator.IsValidURL(r.Website) {
		errs = append(errs, validator.ValidationError{Field: "website", Message: "must be a valid http(s) URL"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ============= Response DTOs =============

type Response struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"company_name"`
	Industry    string    `json:"industry,omitempty"`
	Description string    `json:"description,omitempty"`
	Website     string    `json:"website,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

type DetailResponse struct {
	Response
	PostedJobs      int64 `json:"posted_jobs"`
	HiredCandidates int64 `json:"hired_candidates"`
}

func ToResponse(c Company) Response {
	return Response{
		ID:          c.ID,
		CompanyName: c.CompanyName,
		Industry:    c.Industry,
		Description: c.Description,
		Website:     c.Website,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
}
