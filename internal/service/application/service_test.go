package application

import (
	"context"
	"testing"
	"time"

	"github.com/DLT-Africa-Hub/Recruita/internal/domain/application"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/company"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/graduate"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/job"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/notification"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/offer"
	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/ref"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============= In-memory fakes =============

type fakeApplicationRepo struct {
	apps    map[string]application.Application
	updates []application.StatusUpdate
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: make(map[string]application.Application)}
}

func (f *fakeApplicationRepo) Create(ctx context.Context, a application.Application) (application.Application, error) {
	for _, existing := range f.apps {
		if existing.Job.ID() == a.Job.ID() && existing.Graduate.ID() == a.Graduate.ID() {
			return application.Application{}, application.ErrAlreadyApplied
		}
	}
	a.ID = "app-" + a.Job.ID() + "-" + a.Graduate.ID()
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	f.apps[a.ID] = a
	return a, nil
}

func (f *fakeApplicationRepo) GetByID(ctx context.Context, id string) (application.Application, error) {
	a, ok := f.apps[id]
	if !ok {
		return application.Application{}, application.ErrApplicationNotFound
	}
	return a, nil
}

func (f *fakeApplicationRepo) UpdateStatus(ctx context.Context, upd application.StatusUpdate) error {
	a, ok := f.apps[upd.ID]
	if !ok {
		return application.ErrApplicationNotFound
	}
	f.updates = append(f.updates, upd)
	a.Status = upd.Status
	a.ReviewedAt = &upd.ReviewedAt
	if upd.Notes != nil {
		a.Notes = upd.Notes
	}
	f.apps[upd.ID] = a
	return nil
}

func (f *fakeApplicationRepo) SetStatus(ctx context.Context, id string, status application.Status) error {
	a, ok := f.apps[id]
	if !ok {
		return application.ErrApplicationNotFound
	}
	a.Status = status
	f.apps[id] = a
	return nil
}

func (f *fakeApplicationRepo) ListByJob(ctx context.Context, jobID string, page, limit int) ([]application.Application, int64, error) {
	var out []application.Application
	for _, a := range f.apps {
		if a.Job.ID() == jobID {
			out = append(out, a)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeApplicationRepo) ListByGraduate(ctx context.Context, graduateID string) ([]application.Application, error) {
	var out []application.Application
	for _, a := range f.apps {
		if a.Graduate.ID() == graduateID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) CountByStatus(ctx context.Context) (map[application.Status]int64, error) {
	counts := make(map[application.Status]int64)
	for _, a := range f.apps {
		counts[a.Status]++
	}
	return counts, nil
}

type fakeJobRepo struct {
	jobs map[string]job.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]job.Job)}
}

func (f *fakeJobRepo) Create(ctx context.Context, j job.Job) (job.Job, error) {
	f.jobs[j.ID] = j
	return j, nil
}

func (f *fakeJobRepo) GetByID(ctx context.Context, id string) (job.Job, error) {
	j, ok := f.jobs[id]
	if !ok {
		return job.Job{}, job.ErrJobNotFound
	}
	return j, nil
}

func (f *fakeJobRepo) List(ctx context.Context, filter job.ListFilter) ([]job.Job, int64, error) {
	return nil, 0, nil
}

func (f *fakeJobRepo) Update(ctx context.Context, j job.Job) error {
	f.jobs[j.ID] = j
	return nil
}

func (f *fakeJobRepo) UpdateStatus(ctx context.Context, id string, status job.Status) error {
	j, ok := f.jobs[id]
	if !ok {
		return job.ErrJobNotFound
	}
	j.Status = status
	f.jobs[id] = j
	return nil
}

func (f *fakeJobRepo) Delete(ctx context.Context, id string) error {
	delete(f.jobs, id)
	return nil
}

func (f *fakeJobRepo) AdminManagedIDs(ctx context.Context) ([]string, error) {
	var ids []string
	for _, j := range f.jobs {
		if j.AdminManaged() {
			ids = append(ids, j.ID)
		}
	}
	return ids, nil
}

func (f *fakeJobRepo) CountByStatus(ctx context.Context, status job.Status) (int64, error) {
	var n int64
	for _, j := range f.jobs {
		if j.Status == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeJobRepo) ActiveWithEmbeddings(ctx context.Context) ([]job.Job, error) {
	return nil, nil
}

type fakeCompanyRepo struct {
	companies map[string]company.Company
	hired     map[string]map[string]struct{}
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{
		companies: make(map[string]company.Company),
		hired:     make(map[string]map[string]struct{}),
	}
}

func (f *fakeCompanyRepo) GetByID(ctx context.Context, id string) (company.Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return company.Company{}, company.ErrCompanyNotFound
	}
	return c, nil
}

func (f *fakeCompanyRepo) GetByUserID(ctx context.Context, userID string) (company.Company, error) {
	for _, c := range f.companies {
		if c.UserID == userID {
			return c, nil
		}
	}
	return company.Company{}, company.ErrCompanyNotFound
}

func (f *fakeCompanyRepo) Upsert(ctx context.Context, c company.Company) (company.Company, error) {
	f.companies[c.ID] = c
	return c, nil
}

func (f *fakeCompanyRepo) SetActive(ctx context.Context, id string, active bool) error {
	c, ok := f.companies[id]
	if !ok {
		return company.ErrCompanyNotFound
	}
	c.IsActive = active
	f.companies[id] = c
	return nil
}

func (f *fakeCompanyRepo) List(ctx context.Context, search string, page, limit int) ([]company.Company, int64, error) {
	return nil, 0, nil
}

func (f *fakeCompanyRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.companies)), nil
}

func (f *fakeCompanyRepo) AddHiredCandidate(ctx context.Context, companyID, graduateID string) error {
	if f.hired[companyID] == nil {
		f.hired[companyID] = make(map[string]struct{})
	}
	f.hired[companyID][graduateID] = struct{}{}
	return nil
}

func (f *fakeCompanyRepo) GetHireStats(ctx context.Context, companyID string) (company.HireStats, error) {
	return company.HireStats{HiredCandidates: int64(len(f.hired[companyID]))}, nil
}

type fakeGraduateRepo struct {
	graduates map[string]graduate.Graduate
}

func newFakeGraduateRepo() *fakeGraduateRepo {
	return &fakeGraduateRepo{graduates: make(map[string]graduate.Graduate)}
}

func (f *fakeGraduateRepo) GetByID(ctx context.Context, id string) (graduate.Graduate, error) {
	g, ok := f.graduates[id]
	if !ok {
		return graduate.Graduate{}, graduate.ErrGraduateNotFound
	}
	return g, nil
}

func (f *fakeGraduateRepo) GetByUserID(ctx context.Context, userID string) (graduate.Graduate, error) {
	for _, g := range f.graduates {
		if g.UserID == userID {
			return g, nil
		}
	}
	return graduate.Graduate{}, graduate.ErrGraduateNotFound
}

func (f *fakeGraduateRepo) Upsert(ctx context.Context, g graduate.Graduate) (graduate.Graduate, error) {
	f.graduates[g.ID] = g
	return g, nil
}

func (f *fakeGraduateRepo) SetAssessment(ctx context.Context, graduateID string, a graduate.Assessment) error {
	return nil
}

func (f *fakeGraduateRepo) List(ctx context.Context, search string, page, limit int) ([]graduate.Graduate, int64, error) {
	return nil, 0, nil
}

func (f *fakeGraduateRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.graduates)), nil
}

type fakeOfferRepo struct {
	offers map[string]offer.Offer // keyed by application id
}

func newFakeOfferRepo() *fakeOfferRepo {
	return &fakeOfferRepo{offers: make(map[string]offer.Offer)}
}

func (f *fakeOfferRepo) Create(ctx context.Context, o offer.Offer) (offer.Offer, error) {
	o.ID = "offer-" + o.ApplicationID
	f.offers[o.ApplicationID] = o
	return o, nil
}

func (f *fakeOfferRepo) GetByID(ctx context.Context, id string) (offer.Offer, error) {
	for _, o := range f.offers {
		if o.ID == id {
			return o, nil
		}
	}
	return offer.Offer{}, offer.ErrOfferNotFound
}

func (f *fakeOfferRepo) GetByApplicationID(ctx context.Context, applicationID string) (offer.Offer, error) {
	o, ok := f.offers[applicationID]
	if !ok {
		return offer.Offer{}, offer.ErrOfferNotFound
	}
	return o, nil
}

func (f *fakeOfferRepo) MarkAccepted(ctx context.Context, id string, acceptedAt time.Time, updatedBy string) error {
	for appID, o := range f.offers {
		if o.ID == id {
			o.Status = offer.StatusAccepted
			o.AcceptedAt = &acceptedAt
			o.UpdatedBy = &updatedBy
			f.offers[appID] = o
			return nil
		}
	}
	return offer.ErrOfferNotFound
}

func (f *fakeOfferRepo) UpdateStatus(ctx context.Context, id string, status offer.Status, updatedBy string) error {
	for appID, o := range f.offers {
		if o.ID == id {
			o.Status = status
			f.offers[appID] = o
			return nil
		}
	}
	return offer.ErrOfferNotFound
}

func (f *fakeOfferRepo) ListByGraduate(ctx context.Context, graduateID string) ([]offer.Offer, error) {
	return nil, nil
}

type fakeIssuer struct {
	apps  *fakeApplicationRepo
	calls int
	err   error
}

// CreateAndSend mirrors the real issuer's side effect of flipping the
// application to offer_sent.
func (f *fakeIssuer) CreateAndSend(ctx context.Context, applicationID, actingUserID string) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	return f.apps.SetStatus(ctx, applicationID, application.StatusOfferSent)
}

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

func (f *fakeNotifier) titles() []string {
	out := make([]string, len(f.queued))
	for i, req := range f.queued {
		out[i] = req.Title
	}
	return out
}

// ============= Test fixture =============

type workflowFixture struct {
	svc       *ApplicationServiceImpl
	apps      *fakeApplicationRepo
	jobs      *fakeJobRepo
	companies *fakeCompanyRepo
	graduates *fakeGraduateRepo
	offers    *fakeOfferRepo
	issuer    *fakeIssuer
	notifier  *fakeNotifier
}

func newWorkflowFixture(t *testing.T) *workflowFixture {
	t.Helper()
	f := &workflowFixture{
		apps:      newFakeApplicationRepo(),
		jobs:      newFakeJobRepo(),
		companies: newFakeCompanyRepo(),
		graduates: newFakeGraduateRepo(),
		offers:    newFakeOfferRepo(),
		issuer:    &fakeIssuer{},
		notifier:  &fakeNotifier{},
	}
	f.issuer.apps = f.apps
	svc := NewApplicationService(nil, f.apps, f.jobs, f.companies, f.graduates, f.offers, f.issuer, f.notifier)
	f.svc = svc.(*ApplicationServiceImpl)
	// No real database behind the fakes.
	f.svc.withTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
		return fn(ctx)
	}
	return f
}

// seedApplication stores a hydrated pending application and returns its id.
func (f *workflowFixture) seedApplication(t *testing.T, directContact bool) string {
	t.Helper()

	c := company.Company{ID: "comp-1", UserID: "comp-user-1", CompanyName: "Acme", IsActive: true}
	f.companies.companies[c.ID] = c

	j := job.Job{
		ID:            "job-1",
		Company:       ref.Populated(c.ID, &c),
		Title:         "Backend Engineer",
		Status:        job.StatusActive,
		DirectContact: directContact,
	}
	f.jobs.jobs[j.ID] = j

	g := graduate.Graduate{ID: "grad-1", UserID: "grad-user-1", FirstName: "Ada", LastName: "Obi"}
	f.graduates.graduates[g.ID] = g

	a := application.Application{
		ID:       "app-1",
		Job:      ref.Populated(j.ID, &j),
		Graduate: ref.Populated(g.ID, &g),
		Status:   application.StatusPending,
	}
	f.apps.apps[a.ID] = a
	return a.ID
}

var adminActor = application.Actor{UserID: "admin-user-1"}

// ============= Transition workflow =============

func TestApplicationService_UpdateStatus_InvalidStatus(t *testing.T) {
	ctx := context.Background()
	f := newWorkflowFixture(t)
	appID := f.seedApplication(t, false)

	for _, raw := range []string{"pending", "archived", "", "ACCEPTED"} {
		_, _, err := f.svc.UpdateStatus(ctx, adminActor, appID, application.UpdateStatusRequest{Status: raw})
		assert.ErrorIs(t, err, application.ErrInvalidStatus, "status %q", raw)
	}

	// Nothing was written.
	assert.Empty(t, f.apps.updates)
	stored, _ := f.apps.GetByID(ctx, appID)
	assert.Equal(t, application.StatusPending, stored.Status)
	assert.Nil(t, stored.ReviewedAt)
}

func TestApplicationService_UpdateStatus_DirectContactJobForbidden(t *testing.T) {
	ctx := context.Background()
	f := newWorkflowFixture(t)
	appID := f.seedApplication(t, true)

	_, _, err := f.svc.UpdateStatus(ctx, adminActor, appID, application.UpdateStatusRequest{Status: "reviewed"})
	assert.ErrorIs(t, err, application.ErrNotAdminManaged)
	assert.Empty(t, f.apps.updates)
}

func TestApplicationService_UpdateStatusAsCompany_AdminManagedJobForbidden(t *testing.T) {
	ctx := context.Background()
	f := newWorkflowFixture(t)
	appID := f.seedApplication(t, false)

	actor := application.Actor{UserID: "comp-user-1", CompanyID: "comp-1"}
	_, _, err := f.svc.UpdateStatusAsCompany(ctx, actor, appID, application.UpdateStatusRequest{Status: "reviewed"})
	assert.ErrorIs(t, err, application.ErrNotCompanyManaged)
}

func TestApplicationService_UpdateStatusAsCompany_WrongOwner(t *testing.T) {
	ctx := context.Background()
	f := newWorkflowFixture(t)
	appID := f.seedApplication(t, true)

	actor := application.Actor{UserID: "other-user", CompanyID: "comp-2"}
	_, _, err := f.svc.UpdateStatusAsCompany(ctx, actor, appID, application.UpdateStatusRequest{Status: "reviewed"})
	assert.ErrorIs(t, err, job.ErrNotJobOwner)
	assert.Empty(t, f.apps.updates)
}

func TestApplicationService_UpdateStatus_Reviewed(t *testing.T) {
	ctx := context.Background()
	f := newWorkflowFixture(t)
	appID := f.seedApplication(t, false)

	start := time.Now()
	notes := "solid take-home"
	resp, message, err := f.svc.UpdateStatus(ctx, adminActor, appID, application.UpdateStatusRequest{
		Status: "reviewed",
		Notes:  &notes,
	})
	require.NoError(t, err)

	assert.Equal(t, "Application status updated successfully", message)
	assert.Equal(t, application.StatusReviewed, resp.Status)
	require.NotNil(t, resp.ReviewedAt)
	assert.False(t, resp.ReviewedAt.Before(start))
	require.NotNil(t, resp.Notes)
	assert.Equal(t, notes, *resp.Notes)

	// Graduate was told, in-app and by email.
	require.Len(t, f.notifier.queued, 1)
	assert.Equal(t, "grad-user-1", f.notifier.queued[0].UserID)
	assert.Equal(t, "Application Updated", f.notifier.queued[0].Title)
	assert.Equal(t, "Your application for Backend Engineer has been reviewed", f.notifier.queued[0].Message)
	require.NotNil(t, f.notifier.queued[0].Email)
}

func TestApplicationService_UpdateStatus_KeepsNotesWhenOmitted(t *testing.T) {
	ctx := context.Background()
	f := newWorkflowFixture(t)
	appID := f.seedApplication(t, false)

	notes := "strong candidate"
	_, _, err := f.svc.UpdateStatus(ctx, adminActor, appID, application.UpdateStatusRequest{
		Status: "reviewed",
		Notes:  &notes,
	})
	require.NoError(t, err)

	// A later transition without notes leaves the earlier ones in place.
	resp, _, err := f.svc.UpdateStatus(ctx, adminActor, appID, application.UpdateStatusRequest{Status: "shortlisted"})
	require.NoError(t, err)
	assert.Equal(t, application.StatusShortlisted, resp.Status)
	require.NotNil(t, resp.Notes)
	assert.Equal(t, notes, *resp.Notes)
}

func TestApplicationService_UpdateStatus_Rejected(t *testing.T) {
	ctx := context.Background()
	f := newWorkflowFixture(t)
	appID := f.seedApplication(t, false)

	_, message, err := f.svc.UpdateStatus(ctx, adminActor, appID, application.UpdateStatusRequest{Status: "rejected"})
	require.NoError(t, err)
	assert.Equal(t, "Application status updated successfully", message)

	require.Len(t, f.notifier.queued, 1)
	assert.Equal(t, "Application Rejected", f.notifier.queued[0].Title)
}

func TestApplicationService_UpdateStatus_AcceptedIssuesOffer(t *testing.T) {
	ctx := context.Background()
	f := newWorkflowFixture(t)
	appID := f.seedApplication(t, false)

	resp, message, err := f.svc.UpdateStatus(ctx, adminActor, appID, application.UpdateStatusRequest{Status: "accepted"})
	require.NoError(t, err)

	assert.Equal(t, "Application accepted and offer sent successfully", message)
	// Issuance supersedes the accepted write.
	assert.Equal(t, application.StatusOfferSent, resp.Status)
	assert.Equal(t, 1, f.issuer.calls)
}

func TestApplicationService_UpdateStatus_AcceptedKeepsStatusWhenIssuanceFails(t *testing.T) {
	ctx := context.Background()
	f := newWorkflowFixture(t)
	appID := f.seedApplication(t, false)
	f.issuer.err = offer.ErrOfferCreation

	_, _, err := f.svc.UpdateStatus(ctx, adminActor, appID, application.UpdateStatusRequest{Status: "accepted"})
	assert.ErrorIs(t, err, offer.ErrOfferCreation)

	// The status write is not rolled back; retrying accepted only retries
	// the offer.
	stored, getErr := f.apps.GetByID(ctx, appID)
	require.NoError(t, getErr)
	assert.Equal(t, application.StatusAccepted, stored.Status)
	assert.NotNil(t, stored.ReviewedAt)
}

func TestApplicationService_UpdateStatus_HiredWithOffer(t *testing.T) {
	ctx := context.Background()
	f := newWorkflowFixture(t)
	appID := f.seedApplication(t, false)
	f.offers.offers[appID] = offer.Offer{
		ID:            "offer-1",
		ApplicationID: appID,
		JobID:         "job-1",
		GraduateID:    "grad-1",
		Status:        offer.StatusSent,
	}

	_, message, err := f.svc.UpdateStatus(ctx, adminActor, appID, application.UpdateStatusRequest{Status: "hired"})
	require.NoError(t, err)
	assert.Equal(t, "Application status updated successfully", message)

	o, _ := f.offers.GetByApplicationID(ctx, appID)
	assert.Equal(t, offer.StatusAccepted, o.Status)
	require.NotNil(t, o.AcceptedAt)
	require.NotNil(t, o.UpdatedBy)
	assert.Equal(t, adminActor.UserID, *o.UpdatedBy)

	j, _ := f.jobs.GetByID(ctx, "job-1")
	assert.Equal(t, job.StatusClosed, j.Status)

	assert.Contains(t, f.companies.hired["comp-1"], "grad-1")
	assert.ElementsMatch(t, []string{"Hire Confirmed", "Candidate Hired"}, f.notifier.titles())
	for _, n := range f.notifier.queued {
		require.NotNil(t, n.Email)
	}
}

func TestApplicationService_UpdateStatus_HiredWithoutOffer(t *testing.T) {
	ctx := context.Background()
	f := newWorkflowFixture(t)
	appID := f.seedApplication(t, false)

	// No offer on record; the hire still completes.
	_, message, err := f.svc.UpdateStatus(ctx, adminActor, appID, application.UpdateStatusRequest{Status: "hired"})
	require.NoError(t, err)
	assert.Equal(t, "Application status updated successfully", message)

	j, _ := f.jobs.GetByID(ctx, "job-1")
	assert.Equal(t, job.StatusClosed, j.Status)
	assert.Contains(t, f.companies.hired["comp-1"], "grad-1")
}

func TestApplicationService_UpdateStatus_RehireIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newWorkflowFixture(t)
	appID := f.seedApplication(t, false)

	_, _, err := f.svc.UpdateStatus(ctx, adminActor, appID, application.UpdateStatusRequest{Status: "hired"})
	require.NoError(t, err)
	_, _, err = f.svc.UpdateStatus(ctx, adminActor, appID, application.UpdateStatusRequest{Status: "hired"})
	require.NoError(t, err)

	assert.Len(t, f.companies.hired["comp-1"], 1)
}

func TestApplicationService_UpdateStatusAsCompany_OwnerSucceeds(t *testing.T) {
	ctx := context.Background()
	f := newWorkflowFixture(t)
	appID := f.seedApplication(t, true)

	actor := application.Actor{UserID: "comp-user-1", CompanyID: "comp-1"}
	resp, message, err := f.svc.UpdateStatusAsCompany(ctx, actor, appID, application.UpdateStatusRequest{Status: "shortlisted"})
	require.NoError(t, err)
	assert.Equal(t, "Application status updated successfully", message)
	assert.Equal(t, application.StatusShortlisted, resp.Status)
}

func TestApplicationService_UpdateStatus_NotFound(t *testing.T) {
	ctx := context.Background()
	f := newWorkflowFixture(t)

	_, _, err := f.svc.UpdateStatus(ctx, adminActor, "missing", application.UpdateStatusRequest{Status: "reviewed"})
	assert.ErrorIs(t, err, application.ErrApplicationNotFound)
}

// ============= Submission =============

func TestApplicationService_Submit_Success(t *testing.T) {
	ctx := context.Background()
	f := newWorkflowFixture(t)
	f.seedApplication(t, false)
	delete(f.apps.apps, "app-1")

	resp, err := f.svc.Submit(ctx, "grad-user-1", application.SubmitRequest{JobID: "job-1"})
	require.NoError(t, err)
	assert.Equal(t, application.StatusPending, resp.Status)
	assert.Equal(t, "job-1", resp.JobID)

	require.Len(t, f.notifier.queued, 1)
	assert.Equal(t, "comp-user-1", f.notifier.queued[0].UserID)
	assert.Equal(t, "New Application", f.notifier.queued[0].Title)
}

func TestApplicationService_Submit_ClosedJob(t *testing.T) {
	ctx := context.Background()
	f := newWorkflowFixture(t)
	f.seedApplication(t, false)
	delete(f.apps.apps, "app-1")
	require.NoError(t, f.jobs.UpdateStatus(ctx, "job-1", job.StatusClosed))

	_, err := f.svc.Submit(ctx, "grad-user-1", application.SubmitRequest{JobID: "job-1"})
	assert.ErrorIs(t, err, job.ErrJobNotActive)
}

func TestApplicationService_Submit_Duplicate(t *testing.T) {
	ctx := context.Background()
	f := newWorkflowFixture(t)
	f.seedApplication(t, false)
	delete(f.apps.apps, "app-1")

	_, err := f.svc.Submit(ctx, "grad-user-1", application.SubmitRequest{JobID: "job-1"})
	require.NoError(t, err)
	_, err = f.svc.Submit(ctx, "grad-user-1", application.SubmitRequest{JobID: "job-1"})
	assert.ErrorIs(t, err, application.ErrAlreadyApplied)
}

// ============= Status parsing =============

func TestApplicationService_UpdateStatus_CoversEveryReviewStatus(t *testing.T) {
	ctx := context.Background()

	for _, status := range application.ReviewStatuses {
		t.Run(string(status), func(t *testing.T) {
			f := newWorkflowFixture(t)
			appID := f.seedApplication(t, false)

			resp, message, err := f.svc.UpdateStatus(ctx, adminActor, appID, application.UpdateStatusRequest{Status: string(status)})
			require.NoError(t, err)
			assert.NotEmpty(t, message)

			// Offer issuance moves accepted straight on to offer_sent.
			want := status
			if status == application.StatusAccepted {
				want = application.StatusOfferSent
			}
			assert.Equal(t, want, resp.Status)
		})
	}
}

func TestParseReviewStatus(t *testing.T) {
	for _, valid := range []string{"reviewed", "shortlisted", "interviewed", "accepted", "offer_sent", "hired", "rejected"} {
		st, ok := application.ParseReviewStatus(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, application.Status(valid), st)
	}
	for _, invalid := range []string{"pending", "", "Accepted", "withdrawn"} {
		_, ok := application.ParseReviewStatus(invalid)
		assert.False(t, ok, invalid)
	}
}
