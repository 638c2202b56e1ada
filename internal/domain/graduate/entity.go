package graduate

import "time"

type Education struct {
	Degree         string `json:"degree"`
	Field          string `json:"field"`
	Institution    string `json:"institution"`
	GraduationYear int    `json:"graduation_year"`
}

// Assessment holds the graduate's submitted assessment and the embedding the
// AI service derived from it.
type Assessment struct {
	SubmittedAt time.Time `json:"submitted_at"`
	Embedding   []float64 `json:"embedding,omitempty"`
	Feedback    string    `json:"feedback,omitempty"`
}

type Graduate struct {
	ID        string
	UserID    string
	FirstName string
	LastName  string
	Skills    []string
	Education Education
	Interests []string

	Assessment *Assessment

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName returns "First Last" trimmed of stray spaces.
func (g Graduate) FullName() string {
	if g.FirstName == "" {
		return g.LastName
	}
	if g.LastName == "" {
		return g.FirstName
	}
	return g.FirstName + " " + g.LastName
}
