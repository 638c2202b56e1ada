package application

import "errors"

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrInvalidStatus       = errors.New("invalid application status")
	ErrInvalidNotes        = errors.New("notes must be a string if provided")
	ErrAlreadyApplied      = errors.New("an application for this job already exists")

	// ErrNotAdminManaged is returned when an admin tries to transition an
	// application whose job the owning company handles directly.
	ErrNotAdminManaged = errors.New("job is not managed by the platform admins")

	// ErrNotCompanyManaged is the symmetric guard for the company entry
	// point: the job must have direct contact enabled.
	ErrNotCompanyManaged = errors.New("job applications are managed by the platform admins")
)
