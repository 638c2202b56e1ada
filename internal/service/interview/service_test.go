package interview

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/DLT-Africa-Hub/Recruita/internal/domain/application"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/company"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/graduate"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/interview"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/job"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/notification"
	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/ref"
	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============= In-memory fakes =============

type fakeInterviewRepo struct {
	interviews map[string]interview.Interview
	nextID     int
}

func newFakeInterviewRepo() *fakeInterviewRepo {
	return &fakeInterviewRepo{interviews: make(map[string]interview.Interview)}
}

func (f *fakeInterviewRepo) Create(ctx context.Context, i interview.Interview) (interview.Interview, error) {
	f.nextID++
	i.ID = "iv-" + strconv.Itoa(f.nextID)
	i.CreatedAt = time.Now()
	i.UpdatedAt = i.CreatedAt
	f.interviews[i.ID] = i
	return i, nil
}

func (f *fakeInterviewRepo) GetByID(ctx context.Context, id string) (interview.Interview, error) {
	iv, ok := f.interviews[id]
	if !ok {
		return interview.Interview{}, interview.ErrInterviewNotFound
	}
	return iv, nil
}

func (f *fakeInterviewRepo) GetByApplicationID(ctx context.Context, applicationID string) (interview.Interview, error) {
	for _, iv := range f.interviews {
		if iv.ApplicationID == applicationID {
			return iv, nil
		}
	}
	return interview.Interview{}, interview.ErrInterviewNotFound
}

func (f *fakeInterviewRepo) GetByRoomSlug(ctx context.Context, slug string) (interview.Interview, error) {
	for _, iv := range f.interviews {
		if iv.RoomSlug == slug {
			return iv, nil
		}
	}
	return interview.Interview{}, interview.ErrInterviewNotFound
}

func (f *fakeInterviewRepo) List(ctx context.Context, filter interview.ListFilter) ([]interview.Interview, int64, error) {
	var out []interview.Interview
	for _, iv := range f.interviews {
		if len(filter.JobIDs) > 0 && !contains(filter.JobIDs, iv.Job.ID()) {
			continue
		}
		if filter.Status != nil && iv.Status != *filter.Status {
			continue
		}
		out = append(out, iv)
	}
	return out, int64(len(out)), nil
}

func (f *fakeInterviewRepo) CompleteExpired(ctx context.Context, jobIDs []string, now time.Time) (int64, error) {
	var n int64
	for id, iv := range f.interviews {
		if !contains(jobIDs, iv.Job.ID()) {
			continue
		}
		if iv.Status != interview.StatusScheduled && iv.Status != interview.StatusInProgress {
			continue
		}
		end, ok := iv.EndsAt()
		if !ok || end.After(now) {
			continue
		}
		iv.Status = interview.StatusCompleted
		iv.EndedAt = &now
		f.interviews[id] = iv
		n++
	}
	return n, nil
}

func (f *fakeInterviewRepo) Schedule(ctx context.Context, id string, scheduledAt time.Time, durationMinutes int, updatedBy string) error {
	iv, ok := f.interviews[id]
	if !ok {
		return interview.ErrInterviewNotFound
	}
	iv.ScheduledAt = &scheduledAt
	iv.DurationMinutes = durationMinutes
	iv.Status = interview.StatusScheduled
	iv.UpdatedBy = &updatedBy
	f.interviews[id] = iv
	return nil
}

func (f *fakeInterviewRepo) UpdateStatus(ctx context.Context, id string, status interview.Status, updatedBy string) error {
	iv, ok := f.interviews[id]
	if !ok {
		return interview.ErrInterviewNotFound
	}
	iv.Status = status
	iv.UpdatedBy = &updatedBy
	now := time.Now()
	switch status {
	case interview.StatusInProgress:
		if iv.StartedAt == nil {
			iv.StartedAt = &now
		}
	case interview.StatusCompleted, interview.StatusCancelled:
		if iv.EndedAt == nil {
			iv.EndedAt = &now
		}
	}
	f.interviews[id] = iv
	return nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

type fakeApplicationReader struct {
	apps map[string]application.Application
}

func (f *fakeApplicationReader) Create(ctx context.Context, a application.Application) (application.Application, error) {
	return a, nil
}

func (f *fakeApplicationReader) GetByID(ctx context.Context, id string) (application.Application, error) {
	a, ok := f.apps[id]
	if !ok {
		return application.Application{}, application.ErrApplicationNotFound
	}
	return a, nil
}

func (f *fakeApplicationReader) UpdateStatus(ctx context.Context, upd application.StatusUpdate) error {
	return nil
}

func (f *fakeApplicationReader) SetStatus(ctx context.Context, id string, status application.Status) error {
	return nil
}

func (f *fakeApplicationReader) ListByJob(ctx context.Context, jobID string, page, limit int) ([]application.Application, int64, error) {
	return nil, 0, nil
}

func (f *fakeApplicationReader) ListByGraduate(ctx context.Context, graduateID string) ([]application.Application, error) {
	return nil, nil
}

func (f *fakeApplicationReader) CountByStatus(ctx context.Context) (map[application.Status]int64, error) {
	return nil, nil
}

type fakeJobIDs struct {
	adminManaged []string
}

func (f *fakeJobIDs) Create(ctx context.Context, j job.Job) (job.Job, error) { return j, nil }
func (f *fakeJobIDs) GetByID(ctx context.Context, id string) (job.Job, error) {
	return job.Job{}, job.ErrJobNotFound
}
func (f *fakeJobIDs) List(ctx context.Context, filter job.ListFilter) ([]job.Job, int64, error) {
	return nil, 0, nil
}
func (f *fakeJobIDs) Update(ctx context.Context, j job.Job) error                     { return nil }
func (f *fakeJobIDs) UpdateStatus(ctx context.Context, id string, s job.Status) error { return nil }
func (f *fakeJobIDs) Delete(ctx context.Context, id string) error                     { return nil }
func (f *fakeJobIDs) AdminManagedIDs(ctx context.Context) ([]string, error) {
	return f.adminManaged, nil
}
func (f *fakeJobIDs) CountByStatus(ctx context.Context, s job.Status) (int64, error) { return 0, nil }
func (f *fakeJobIDs) ActiveWithEmbeddings(ctx context.Context) ([]job.Job, error)    { return nil, nil }

type fakeNotifier struct {
	queued []notification.CreateNotificationRequest
}

func (f *fakeNotifier) Queue(ctx context.Context, req notification.CreateNotificationRequest) error {
	f.queued = append(f.queued, req)
	return nil
}

func (f *fakeNotifier) QueueBulk(ctx context.Context, reqs []notification.CreateNotificationRequest) error {
	f.queued = append(f.queued, reqs...)
	return nil
}

func (f *fakeNotifier) GetNotifications(ctx context.Context, userID string, page, pageSize int, unreadOnly bool) (*notification.ListResponse, error) {
	return &notification.ListResponse{}, nil
}

func (f *fakeNotifier) GetUnreadCount(ctx context.Context, userID string) (int, error) { return 0, nil }

func (f *fakeNotifier) MarkAsRead(ctx context.Context, userID string, req notification.MarkAsReadRequest) error {
	return nil
}

func (f *fakeNotifier) MarkAllAsRead(ctx context.Context, userID string) error { return nil }

func (f *fakeNotifier) Delete(ctx context.Context, userID string, notificationID string) error {
	return nil
}

func (f *fakeNotifier) Subscribe(ctx context.Context, userID string) (<-chan notification.SSEEvent, func()) {
	return nil, func() {}
}

func (f *fakeNotifier) Stop() {}

// ============= Fixture =============

type interviewFixture struct {
	svc        *InterviewServiceImpl
	interviews *fakeInterviewRepo
	apps       *fakeApplicationReader
	jobs       *fakeJobIDs
	notifier   *fakeNotifier
}

func newInterviewFixture(t *testing.T) *interviewFixture {
	t.Helper()
	f := &interviewFixture{
		interviews: newFakeInterviewRepo(),
		apps:       &fakeApplicationReader{apps: make(map[string]application.Application)},
		jobs:       &fakeJobIDs{},
		notifier:   &fakeNotifier{},
	}
	svc := NewInterviewService(f.interviews, f.apps, f.jobs, f.notifier, "https://app.recruita.test")
	f.svc = svc.(*InterviewServiceImpl)
	return f
}

func (f *interviewFixture) seedApplication(t *testing.T) string {
	t.Helper()

	c := company.Company{ID: "comp-1", UserID: "comp-user-1", CompanyName: "Acme"}
	j := job.Job{ID: "job-1", Company: ref.Populated(c.ID, &c), Title: "Backend Engineer", Status: job.StatusActive}
	g := graduate.Graduate{ID: "grad-1", UserID: "grad-user-1", FirstName: "Ada", LastName: "Obi"}

	a := application.Application{
		ID:       "app-1",
		Job:      ref.Populated(j.ID, &j),
		Graduate: ref.Populated(g.ID, &g),
		Status:   application.StatusInterviewed,
	}
	f.apps.apps[a.ID] = a
	f.jobs.adminManaged = []string{j.ID}
	return a.ID
}

func slots(dates ...time.Time) []interview.TimeSlot {
	out := make([]interview.TimeSlot, len(dates))
	for i, d := range dates {
		out[i] = interview.TimeSlot{Date: d, Duration: 45}
	}
	return out
}

// ============= Scheduling =============

func TestInterviewService_Schedule_Success(t *testing.T) {
	ctx := context.Background()
	f := newInterviewFixture(t)
	appID := f.seedApplication(t)

	tomorrow := time.Now().Add(24 * time.Hour)
	resp, err := f.svc.Schedule(ctx, "admin-user-1", interview.ScheduleRequest{
		ApplicationID:      appID,
		SuggestedTimeSlots: slots(tomorrow, tomorrow.Add(2*time.Hour)),
	})
	require.NoError(t, err)

	assert.Equal(t, interview.StatusPendingSelection, resp.Status)
	assert.NotEmpty(t, resp.RoomSlug)
	assert.Equal(t, "https://app.recruita.test/interviews/room/"+resp.RoomSlug, resp.RoomURL)
	assert.Len(t, resp.SuggestedTimeSlots, 2)

	// The graduate is invited to pick a slot, with an email mirror.
	require.Len(t, f.notifier.queued, 1)
	assert.Equal(t, "grad-user-1", f.notifier.queued[0].UserID)
	assert.Equal(t, "Interview Invitation", f.notifier.queued[0].Title)
	assert.NotNil(t, f.notifier.queued[0].Email)
}

func TestInterviewService_Schedule_RequiresSlots(t *testing.T) {
	ctx := context.Background()
	f := newInterviewFixture(t)
	appID := f.seedApplication(t)

	_, err := f.svc.Schedule(ctx, "admin-user-1", interview.ScheduleRequest{ApplicationID: appID})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestInterviewService_Schedule_Duplicate(t *testing.T) {
	ctx := context.Background()
	f := newInterviewFixture(t)
	appID := f.seedApplication(t)

	req := interview.ScheduleRequest{
		ApplicationID:      appID,
		SuggestedTimeSlots: slots(time.Now().Add(24 * time.Hour)),
	}
	_, err := f.svc.Schedule(ctx, "admin-user-1", req)
	require.NoError(t, err)

	_, err = f.svc.Schedule(ctx, "admin-user-1", req)
	assert.ErrorIs(t, err, interview.ErrInterviewExists)
}

// ============= Slot selection =============

func TestInterviewService_SelectSlot_Success(t *testing.T) {
	ctx := context.Background()
	f := newInterviewFixture(t)
	appID := f.seedApplication(t)

	first := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	second := first.Add(3 * time.Hour)
	created, err := f.svc.Schedule(ctx, "admin-user-1", interview.ScheduleRequest{
		ApplicationID:      appID,
		SuggestedTimeSlots: slots(first, second),
	})
	require.NoError(t, err)
	f.notifier.queued = nil

	resp, err := f.svc.SelectSlot(ctx, "grad-user-1", created.ID, interview.SelectSlotRequest{SlotIndex: 1})
	require.NoError(t, err)

	assert.Equal(t, interview.StatusScheduled, resp.Status)
	require.NotNil(t, resp.ScheduledAt)
	assert.True(t, resp.ScheduledAt.Equal(second))
	assert.Equal(t, 45, resp.DurationMinutes)

	require.Len(t, f.notifier.queued, 1)
	assert.Equal(t, "comp-user-1", f.notifier.queued[0].UserID)
	assert.Equal(t, "Interview Scheduled", f.notifier.queued[0].Title)
}

func TestInterviewService_SelectSlot_Guards(t *testing.T) {
	ctx := context.Background()
	f := newInterviewFixture(t)
	appID := f.seedApplication(t)

	created, err := f.svc.Schedule(ctx, "admin-user-1", interview.ScheduleRequest{
		ApplicationID:      appID,
		SuggestedTimeSlots: slots(time.Now().Add(24 * time.Hour)),
	})
	require.NoError(t, err)

	_, err = f.svc.SelectSlot(ctx, "someone-else", created.ID, interview.SelectSlotRequest{SlotIndex: 0})
	assert.ErrorIs(t, err, interview.ErrNotParticipant)

	_, err = f.svc.SelectSlot(ctx, "grad-user-1", created.ID, interview.SelectSlotRequest{SlotIndex: 5})
	assert.ErrorIs(t, err, interview.ErrInvalidSlot)
	_, err = f.svc.SelectSlot(ctx, "grad-user-1", created.ID, interview.SelectSlotRequest{SlotIndex: -1})
	assert.ErrorIs(t, err, interview.ErrInvalidSlot)

	_, err = f.svc.SelectSlot(ctx, "grad-user-1", created.ID, interview.SelectSlotRequest{SlotIndex: 0})
	require.NoError(t, err)
	_, err = f.svc.SelectSlot(ctx, "grad-user-1", created.ID, interview.SelectSlotRequest{SlotIndex: 0})
	assert.ErrorIs(t, err, interview.ErrAlreadyScheduled)
}

func TestInterviewService_SelectSlot_DefaultDuration(t *testing.T) {
	ctx := context.Background()
	f := newInterviewFixture(t)
	appID := f.seedApplication(t)

	// A slot without an explicit duration falls back to 30 minutes.
	date := time.Now().Add(24 * time.Hour)
	created, err := f.svc.Schedule(ctx, "admin-user-1", interview.ScheduleRequest{
		ApplicationID:      appID,
		SuggestedTimeSlots: []interview.TimeSlot{{Date: date, Duration: 30}},
	})
	require.NoError(t, err)

	iv := f.interviews.interviews[created.ID]
	iv.SuggestedTimeSlots[0].Duration = 0
	f.interviews.interviews[created.ID] = iv

	resp, err := f.svc.SelectSlot(ctx, "grad-user-1", created.ID, interview.SelectSlotRequest{SlotIndex: 0})
	require.NoError(t, err)
	assert.Equal(t, 30, resp.DurationMinutes)
}

// ============= Expiry sweep =============

func TestInterviewService_ListAdminManaged_SweepsExpired(t *testing.T) {
	ctx := context.Background()
	f := newInterviewFixture(t)
	f.seedApplication(t)

	now := time.Now()
	past := now.Add(-2 * time.Hour)
	future := now.Add(2 * time.Hour)

	seedScheduled := func(appID string, at time.Time) string {
		iv, err := f.interviews.Create(ctx, interview.Interview{
			ApplicationID:   appID,
			Job:             ref.ID[job.Job]("job-1"),
			Graduate:        ref.ID[graduate.Graduate]("grad-1"),
			GraduateUserID:  "grad-user-1",
			CompanyUserID:   "comp-user-1",
			ScheduledAt:     &at,
			DurationMinutes: 60,
			Status:          interview.StatusScheduled,
			RoomSlug:        "room-" + appID,
		})
		require.NoError(t, err)
		return iv.ID
	}
	expiredID := seedScheduled("app-old", past)
	liveID := seedScheduled("app-new", future)

	f.svc.now = func() time.Time { return now }

	resp, err := f.svc.ListAdminManaged(ctx, interview.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Total)

	statuses := make(map[string]interview.Status)
	for _, iv := range resp.Interviews {
		statuses[iv.ID] = iv.Status
	}
	assert.Equal(t, interview.StatusCompleted, statuses[expiredID])
	assert.Equal(t, interview.StatusScheduled, statuses[liveID])
}

func TestInterviewService_SweepExpired_IgnoresDirectContactJobs(t *testing.T) {
	ctx := context.Background()
	f := newInterviewFixture(t)
	f.jobs.adminManaged = []string{"job-admin"}

	now := time.Now()
	past := now.Add(-3 * time.Hour)
	for _, jobID := range []string{"job-admin", "job-direct"} {
		_, err := f.interviews.Create(ctx, interview.Interview{
			ApplicationID:   "app-" + jobID,
			Job:             ref.ID[job.Job](jobID),
			Graduate:        ref.ID[graduate.Graduate]("grad-1"),
			ScheduledAt:     &past,
			DurationMinutes: 30,
			Status:          interview.StatusInProgress,
			RoomSlug:        "room-" + jobID,
		})
		require.NoError(t, err)
	}

	f.svc.now = func() time.Time { return now }
	n, err := f.svc.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	direct, err := f.interviews.GetByApplicationID(ctx, "app-job-direct")
	require.NoError(t, err)
	assert.Equal(t, interview.StatusInProgress, direct.Status)
}

// ============= Room access and cancel =============

func TestInterviewService_GetByRoomSlug_ParticipantsOnly(t *testing.T) {
	ctx := context.Background()
	f := newInterviewFixture(t)
	appID := f.seedApplication(t)

	created, err := f.svc.Schedule(ctx, "admin-user-1", interview.ScheduleRequest{
		ApplicationID:      appID,
		SuggestedTimeSlots: slots(time.Now().Add(24 * time.Hour)),
	})
	require.NoError(t, err)

	for _, userID := range []string{"grad-user-1", "comp-user-1", "admin-user-1"} {
		_, err := f.svc.GetByRoomSlug(ctx, userID, created.RoomSlug)
		assert.NoError(t, err, userID)
	}

	_, err = f.svc.GetByRoomSlug(ctx, "stranger", created.RoomSlug)
	assert.ErrorIs(t, err, interview.ErrNotParticipant)
}

func TestInterviewService_GetByRoomSlug_StartsInsideWindow(t *testing.T) {
	ctx := context.Background()
	f := newInterviewFixture(t)
	appID := f.seedApplication(t)

	slotAt := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	created, err := f.svc.Schedule(ctx, "admin-user-1", interview.ScheduleRequest{
		ApplicationID:      appID,
		SuggestedTimeSlots: slots(slotAt),
	})
	require.NoError(t, err)
	_, err = f.svc.SelectSlot(ctx, "grad-user-1", created.ID, interview.SelectSlotRequest{SlotIndex: 0})
	require.NoError(t, err)

	// Before the slot the room view leaves the interview scheduled.
	f.svc.now = func() time.Time { return slotAt.Add(-time.Hour) }
	resp, err := f.svc.GetByRoomSlug(ctx, "grad-user-1", created.RoomSlug)
	require.NoError(t, err)
	assert.Equal(t, interview.StatusScheduled, resp.Status)

	// Inside the window it starts.
	f.svc.now = func() time.Time { return slotAt.Add(5 * time.Minute) }
	resp, err = f.svc.GetByRoomSlug(ctx, "comp-user-1", created.RoomSlug)
	require.NoError(t, err)
	assert.Equal(t, interview.StatusInProgress, resp.Status)

	stored, err := f.interviews.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, interview.StatusInProgress, stored.Status)
	require.NotNil(t, stored.StartedAt)
}

func TestInterviewService_Cancel(t *testing.T) {
	ctx := context.Background()
	f := newInterviewFixture(t)
	appID := f.seedApplication(t)

	created, err := f.svc.Schedule(ctx, "admin-user-1", interview.ScheduleRequest{
		ApplicationID:      appID,
		SuggestedTimeSlots: slots(time.Now().Add(24 * time.Hour)),
	})
	require.NoError(t, err)
	f.notifier.queued = nil

	require.NoError(t, f.svc.Cancel(ctx, "admin-user-1", created.ID))

	iv, err := f.interviews.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, interview.StatusCancelled, iv.Status)

	require.Len(t, f.notifier.queued, 1)
	assert.Equal(t, "Interview Cancelled", f.notifier.queued[0].Title)

	// Terminal interviews stay put.
	assert.ErrorIs(t, f.svc.Cancel(ctx, "admin-user-1", created.ID), interview.ErrAlreadyFinished)
}

// ============= Display substitution =============

func TestInterviewToResponse_PendingSelectionShowsFirstSlot(t *testing.T) {
	first := time.Now().Add(48 * time.Hour)
	iv := interview.Interview{
		ID:     "iv-1",
		Status: interview.StatusPendingSelection,
		SuggestedTimeSlots: []interview.TimeSlot{
			{Date: first, Duration: 45},
			{Date: first.Add(time.Hour), Duration: 60},
		},
	}

	resp := interview.ToResponse(iv)
	require.NotNil(t, resp.ScheduledAt)
	assert.True(t, resp.ScheduledAt.Equal(first))
	assert.Equal(t, 45, resp.DurationMinutes)

	// The substitution is display-only.
	assert.Nil(t, iv.ScheduledAt)
	assert.Zero(t, iv.DurationMinutes)
}

func TestInterviewToResponse_NoSlotsDefaults(t *testing.T) {
	resp := interview.ToResponse(interview.Interview{ID: "iv-1", Status: interview.StatusPendingSelection})
	assert.Nil(t, resp.ScheduledAt)
	assert.Equal(t, 30, resp.DurationMinutes)
}
