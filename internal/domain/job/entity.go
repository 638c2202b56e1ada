package job

import (
	"time"

	"github.com/DLT-Africa-Hub/Recruita/internal/domain/company"
	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/ref"
)

type Status string

const (
	StatusActive Status = "active"
	StatusClosed Status = "closed"
	StatusDraft  Status = "draft"
)

// ParseStatus converts a raw string to a Status, returning false for unknown
// values.
func ParseStatus(s string) (Status, bool) {
	st := Status(s)
	switch st {
	case StatusActive, StatusClosed, StatusDraft:
		return st, true
	}
	return "", false
}

type Job struct {
	ID          string
	Company     ref.Ref[company.Company]
	Title       string
	Description string
	Location    string
	JobType     string
	Status      Status

	// DirectContact false means the platform's admins mediate the hiring
	// workflow for this job; true means the company handles it directly.
	DirectContact bool

	Embedding []float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AdminManaged reports whether applications for this job are transitioned by
// platform admins rather than the owning company.
func (j Job) AdminManaged() bool {
	return !j.DirectContact
}
