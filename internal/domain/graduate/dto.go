package graduate

import (
	"time"

	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/validator"
)

// ============= Request DTOs =============

type UpsertProfileRequest struct {
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Skills    []string  `json:"skills"`
	Education Education `json:"education"`
	Interests []string  `json:"interests"`
}

func (r UpsertProfileRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "is required"})
	}
	if validator.IsEmpty(r.Education.Degree) {
		errs = append(errs, validator.ValidationError{Field: "education.degree", Message: "is required"})
	}
	if validator.IsEmpty(r.Education.Institution) {
		errs = append(errs, validator.ValidationError{Field: "education.institution", Message: "is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SubmitAssessmentRequest struct {
	Answers string `json:"answers"`
}

func (r SubmitAssessmentRequest) Validate() error {
	if validator.IsEmpty(r.Answers) {
		return validator.ValidationErrors{{Field: "answers", Message: "is required"}}
	}
	return nil
}

// ============= Response DTOs =============

type Response struct {
	ID         string     `json:"id"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Skills     []string   `json:"skills"`
	Education  Education  `json:"education"`
	Interests  []string   `json:"interests"`
	AssessedAt *time.Time `json:"assessed_at,omitempty"`
	Feedback   string     `json:"feedback,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func ToResponse(g Graduate) Response {
	resp := Response{
		ID:        g.ID,
		FirstName: g.FirstName,
		LastName:  g.LastName,
		Skills:    g.Skills,
		Education: g.Education,
		Interests: g.Interests,
		CreatedAt: g.CreatedAt,
	}
	if g.Assessment != nil {
		t := g.Assessment.SubmittedAt
		resp.AssessedAt = &t
		resp.Feedback = g.Assessment.Feedback
	}
	return resp
}
