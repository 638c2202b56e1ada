package application

import "context"

// Actor identifies the authenticated reviewer driving a transition.
type Actor struct {
	UserID string
	// CompanyID is set for the company entry point and used for the job
	// ownership check.
	CompanyID string
}

// Service drives the status transition workflow.
type Service interface {
	// Submit creates a new application for an active job.
	Submit(ctx context.Context, graduateUserID string, req SubmitRequest) (Response, error)

	// UpdateStatus is the admin entry point: the application's job must be
	// admin-managed (direct contact disabled).
	UpdateStatus(ctx context.Context, actor Actor, applicationID string, req UpdateStatusRequest) (Response, string, error)

	// UpdateStatusAsCompany is the symmetric company entry point: the job
	// must have direct contact enabled and belong to the actor's company.
	UpdateStatusAsCompany(ctx context.Context, actor Actor, applicationID string, req UpdateStatusRequest) (Response, string, error)

	Get(ctx context.Context, applicationID string) (Response, error)
	ListForJob(ctx context.Context, jobID string, page, limit int) ([]Response, int64, error)
	ListForGraduate(ctx context.Context, graduateUserID string) ([]Response, error)
}
