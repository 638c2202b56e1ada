package match

import "time"

// Match is one AI-scored graduate/job pairing.
type Match struct {
	ID         string
	GraduateID string
	JobID      string
	Score      float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
