package notification

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/DLT-Africa-Hub/Recruita/internal/domain/notification"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/user"
	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/sse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotificationRepo struct {
	mu       sync.Mutex
	inserted []*notification.Notification
}

func (f *fakeNotificationRepo) Create(ctx context.Context, n *notification.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inserted = append(f.inserted, n)
	return nil
}

func (f *fakeNotificationRepo) CreateBatch(ctx context.Context, ns []*notification.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inserted = append(f.inserted, ns...)
	return nil
}

func (f *fakeNotificationRepo) GetByID(ctx context.Context, id string) (*notification.Notification, error) {
	return nil, notification.ErrNotificationNotFound
}

func (f *fakeNotificationRepo) GetByUserID(ctx context.Context, userID string, page, pageSize int, unreadOnly bool) ([]*notification.Notification, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*notification.Notification
	for _, n := range f.inserted {
		if n.UserID == userID && (!unreadOnly || !n.IsRead) {
			out = append(out, n)
		}
	}
	return out, len(out), nil
}

func (f *fakeNotificationRepo) GetUnreadCount(ctx context.Context, userID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, n := range f.inserted {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationRepo) MarkAsRead(ctx context.Context, ids []string, userID string) error {
	return nil
}

func (f *fakeNotificationRepo) MarkAllAsRead(ctx context.Context, userID string) error { return nil }

func (f *fakeNotificationRepo) Delete(ctx context.Context, id string, userID string) error {
	return nil
}

func (f *fakeNotificationRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.inserted)
}

type fakeUserRepo struct{}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) { return u, nil }

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	return user.User{ID: id, Email: id + "@example.com"}, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) List(ctx context.Context, search string, role *user.Role, page, limit int) ([]user.User, int64, error) {
	return nil, 0, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeMailer struct {
	mu   sync.Mutex
	sent []string // recipient addresses
}

func (f *fakeMailer) SendNotification(to, subject, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, to)
	return nil
}

func (f *fakeMailer) SendOffer(to, graduateName, jobTitle, companyName, offersLink string) error {
	return nil
}

func (f *fakeMailer) recipients() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.sent...)
}

func newTestService(t *testing.T, cfg Config) (notification.Service, *fakeNotificationRepo, *fakeMailer, *sse.Hub) {
	t.Helper()
	repo := &fakeNotificationRepo{}
	mailer := &fakeMailer{}
	hub := sse.NewHub()
	svc := NewNotificationService(repo, &fakeUserRepo{}, hub, mailer, cfg)
	t.Cleanup(svc.Stop)
	return svc, repo, mailer, hub
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met within deadline")
}

func TestNotificationService_QueueFlushesOnInterval(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, _ := newTestService(t, Config{
		BatchSize:     100,
		FlushInterval: 20 * time.Millisecond,
		WorkerCount:   1,
	})

	require.NoError(t, svc.Queue(ctx, notification.CreateNotificationRequest{
		UserID:  "user-1",
		Type:    notification.TypeApplication,
		Title:   "New Application",
		Message: "Ada applied",
	}))

	waitFor(t, func() bool { return repo.count() == 1 })
	assert.Equal(t, "user-1", repo.inserted[0].UserID)
	assert.False(t, repo.inserted[0].IsRead)
	assert.NotEmpty(t, repo.inserted[0].ID)
}

func TestNotificationService_QueueBulkAndBatchSize(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, _ := newTestService(t, Config{
		BatchSize:     3,
		FlushInterval: time.Hour, // only the batch-size trigger can flush
		WorkerCount:   1,
	})

	reqs := make([]notification.CreateNotificationRequest, 3)
	for i := range reqs {
		reqs[i] = notification.CreateNotificationRequest{
			UserID:  "user-1",
			Type:    notification.TypeApplication,
			Title:   "Application Updated",
			Message: "status changed",
		}
	}
	require.NoError(t, svc.QueueBulk(ctx, reqs))

	waitFor(t, func() bool { return repo.count() == 3 })
}

func TestNotificationService_EmailMirror(t *testing.T) {
	ctx := context.Background()
	svc, repo, mailer, _ := newTestService(t, Config{
		BatchSize:     100,
		FlushInterval: 20 * time.Millisecond,
		WorkerCount:   1,
	})

	require.NoError(t, svc.Queue(ctx, notification.CreateNotificationRequest{
		UserID:  "user-1",
		Type:    notification.TypeApplication,
		Title:   "Hire Confirmed",
		Message: "you're hired",
		Email:   &notification.EmailPayload{Subject: "Hire Confirmed", Text: "Congratulations"},
	}))
	require.NoError(t, svc.Queue(ctx, notification.CreateNotificationRequest{
		UserID:  "user-2",
		Type:    notification.TypeApplication,
		Title:   "Candidate Hired",
		Message: "no email for this one",
	}))

	waitFor(t, func() bool { return repo.count() == 2 })
	waitFor(t, func() bool { return len(mailer.recipients()) == 1 })
	assert.Equal(t, []string{"user-1@example.com"}, mailer.recipients())
}

func TestNotificationService_SubscribeReceivesPublished(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc, _, _, _ := newTestService(t, Config{
		BatchSize:     100,
		FlushInterval: 20 * time.Millisecond,
		WorkerCount:   1,
	})

	events, cleanup := svc.Subscribe(ctx, "user-1")
	defer cleanup()

	require.NoError(t, svc.Queue(ctx, notification.CreateNotificationRequest{
		UserID:  "user-1",
		Type:    notification.TypeInterview,
		Title:   "Interview Invitation",
		Message: "pick a slot",
	}))

	select {
	case ev := <-events:
		assert.Equal(t, "notification", ev.Event)
		assert.Equal(t, "Interview Invitation", ev.Data.Title)
		assert.Equal(t, "pick a slot", ev.Data.Message)
	case <-time.After(2 * time.Second):
		t.Fatal("no SSE event received")
	}
}

func TestNotificationService_GetNotificationsPagination(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, _ := newTestService(t, Config{
		BatchSize:     100,
		FlushInterval: 20 * time.Millisecond,
		WorkerCount:   1,
	})

	require.NoError(t, svc.Queue(ctx, notification.CreateNotificationRequest{
		UserID:  "user-1",
		Type:    notification.TypeApplication,
		Title:   "Application Updated",
		Message: "reviewed",
	}))
	waitFor(t, func() bool { return repo.count() == 1 })

	resp, err := svc.GetNotifications(ctx, "user-1", 0, 0, false)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 20, resp.PageSize)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, 1, resp.UnreadCount)
	require.Len(t, resp.Notifications, 1)
	assert.Equal(t, "Application Updated", resp.Notifications[0].Title)
}
