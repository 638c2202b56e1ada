package interview

import "errors"

var (
	ErrInterviewNotFound   = errors.New("interview not found")
	ErrNotParticipant      = errors.New("user is not a participant of this interview")
	ErrInvalidSlot         = errors.New("selected time slot is not among the suggested slots")
	ErrAlreadyScheduled    = errors.New("interview has already been scheduled")
	ErrInterviewExists     = errors.New("an interview for this application already exists")
	ErrInvalidStatusFilter = errors.New("invalid interview status filter")
	ErrAlreadyFinished     = errors.New("interview is already completed or cancelled")
)
