package graduate

import "errors"

var (
	ErrGraduateNotFound   = errors.New("graduate not found")
	ErrProfileIncomplete  = errors.New("graduate profile is incomplete")
	ErrAssessmentRequired = errors.New("assessment has not been submitted")
)
