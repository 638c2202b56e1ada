package match

// Response is one scored pairing as served to graduates and companies.
type Response struct {
	ID         string  `json:"id,omitempty"`
	GraduateID string  `json:"graduate_id"`
	JobID      string  `json:"job_id"`
	JobTitle   string  `json:"job_title,omitempty"`
	Score      float64 `json:"score"`
}
