package company

import "time"

type Company struct {
	ID          string
	UserID      string
	CompanyName string
	Industry    string
	Description string
	Website     string
	IsActive    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HireStats summarizes a company's hiring activity for admin views.
type HireStats struct {
	PostedJobs      int64
	HiredCandidates int64
}
