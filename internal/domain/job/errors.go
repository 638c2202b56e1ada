package job

import "errors"

var (
	ErrJobNotFound   = errors.New("job not found")
	ErrInvalidStatus = errors.New("invalid job status")
	ErrNotJobOwner   = errors.New("job is not owned by this company")
	ErrJobNotActive  = errors.New("job is not accepting applications")
)
