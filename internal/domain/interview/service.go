package interview

import "context"

// Service manages the interview lifecycle, including the lazy expiry sweep
// run before every listing.
type Service interface {
	// Schedule creates a pending-selection interview offering the given
	// slots to the graduate.
	Schedule(ctx context.Context, actingUserID string, req ScheduleRequest) (Response, error)

	// SelectSlot is the graduate choosing one of the suggested slots; the
	// interview becomes scheduled and a room is minted.
	SelectSlot(ctx context.Context, graduateUserID, interviewID string, req SelectSlotRequest) (Response, error)

	// GetByRoomSlug serves the room view to participants only.
	GetByRoomSlug(ctx context.Context, userID, slug string) (Response, error)

	// ListAdminManaged sweeps expired interviews across admin-managed jobs,
	// then returns the filtered page.
	ListAdminManaged(ctx context.Context, filter ListFilter) (ListResponse, error)

	Cancel(ctx context.Context, actingUserID, interviewID string) error

	// SweepExpired advances every expired interview on admin-managed jobs;
	// also wired as a cron job.
	SweepExpired(ctx context.Context) (int64, error)
}
