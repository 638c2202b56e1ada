package match

import "errors"

var (
	ErrMatchNotFound = errors.New("match not found")
	ErrScoringFailed = errors.New("match scoring failed")
)
