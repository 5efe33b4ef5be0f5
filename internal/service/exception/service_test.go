package exception

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	jwxjwt "github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/employee"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/exception"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/notification"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/pkg/timezone"
)

type fakeExceptionRepo struct {
	requests   map[string]*exception.Request
	hasPending bool
	nextID     int
}

func newFakeExceptionRepo() *fakeExceptionRepo {
	return &fakeExceptionRepo{requests: map[string]*exception.Request{}}
}

func (f *fakeExceptionRepo) Create(ctx context.Context, req *exception.Request) error {
	f.nextID++
	req.ID = string(rune('a' + f.nextID))
	req.CreatedAt = time.Now().UTC()
	req.UpdatedAt = req.CreatedAt
	stored := *req
	f.requests[req.ID] = &stored
	return nil
}

func (f *fakeExceptionRepo) GetByID(ctx context.Context, id string) (*exception.Request, error) {
	req, ok := f.requests[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *req
	return &copied, nil
}

func (f *fakeExceptionRepo) Update(ctx context.Context, req *exception.Request) error {
	if _, ok := f.requests[req.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *req
	f.requests[req.ID] = &stored
	return nil
}

func (f *fakeExceptionRepo) ListByEmployee(ctx context.Context, employeeID string, status *exception.Status) ([]exception.Request, error) {
	var out []exception.Request
	for _, req := range f.requests {
		if req.EmployeeID != employeeID {
			continue
		}
		if status != nil && req.Status != *status {
			continue
		}
		out = append(out, *req)
	}
	return out, nil
}

func (f *fakeExceptionRepo) ListPending(ctx context.Context) ([]exception.Request, error) {
	var out []exception.Request
	for _, req := range f.requests {
		if req.Status == exception.StatusPending {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (f *fakeExceptionRepo) HasPendingForDate(ctx context.Context, employeeID string, date time.Time, typ exception.Type) (bool, error) {
	return f.hasPending, nil
}

func (f *fakeExceptionRepo) ListApprovedInRange(ctx context.Context, employeeID string, from, to time.Time) ([]exception.Request, error) {
	return nil, nil
}

type fakeEmployeeRepo struct {
	employees map[string]*employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e *employee.Employee) error { return nil }

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (*employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByUserID(ctx context.Context, userID string) (*employee.Employee, error) {
	return nil, pgx.ErrNoRows
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	return nil, pgx.ErrNoRows
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, e *employee.Employee) error { return nil }
func (f *fakeEmployeeRepo) SoftDelete(ctx context.Context, id string) error        { return nil }

func (f *fakeEmployeeRepo) List(ctx context.Context, search *string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	return false, nil
}

type fakeNotifier struct {
	queued []notification.CreateNotificationRequest
}

func (f *fakeNotifier) QueueNotification(ctx context.Context, req notification.CreateNotificationRequest) error {
	f.queued = append(f.queued, req)
	return nil
}

func (f *fakeNotifier) QueueBulkNotification(ctx context.Context, reqs []notification.CreateNotificationRequest) error {
	f.queued = append(f.queued, reqs...)
	return nil
}

func (f *fakeNotifier) GetNotifications(ctx context.Context, userID string, page, pageSize int, unreadOnly bool) (*notification.NotificationListResponse, error) {
	return nil, nil
}

func (f *fakeNotifier) GetUnreadCount(ctx context.Context, userID string) (int, error) {
	return 0, nil
}

func (f *fakeNotifier) MarkAsRead(ctx context.Context, userID string, req notification.MarkAsReadRequest) error {
	return nil
}

func (f *fakeNotifier) MarkAllAsRead(ctx context.Context, userID string) error { return nil }

func (f *fakeNotifier) Subscribe(ctx context.Context, userID string) (<-chan notification.SSEEvent, func()) {
	ch := make(chan notification.SSEEvent)
	return ch, func() { close(ch) }
}

func (f *fakeNotifier) Stop() {}

func claimsContext(t *testing.T, claims map[string]interface{}) context.Context {
	builder := jwxjwt.NewBuilder()
	for k, v := range claims {
		builder = builder.Claim(k, v)
	}
	token, err := builder.Build()
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService(t *testing.T, repo *fakeExceptionRepo, notifier *fakeNotifier) Service {
	region, err := timezone.NewRegion("+04:00")
	require.NoError(t, err)

	userID := "user-1"
	empRepo := &fakeEmployeeRepo{employees: map[string]*employee.Employee{
		"emp-1": {ID: "emp-1", UserID: &userID, FullName: "Test Employee"},
	}}

	var notifSvc notification.Service
	if notifier != nil {
		notifSvc = notifier
	}
	return NewExceptionService(repo, empRepo, notifSvc, region)
}

func TestSubmit_CreatesPendingRequest(t *testing.T) {
	repo := newFakeExceptionRepo()
	svc := newTestService(t, repo, nil)
	ctx := claimsContext(t, map[string]interface{}{"employee_id": "emp-1"})

	proposedOut := "2026-02-10T18:00:00+04:00"
	resp, err := svc.Submit(ctx, exception.CreateRequest{
		Date:             "2026-02-10",
		Type:             string(exception.TypeMissedClockOut),
		ProposedClockOut: &proposedOut,
		Reason:           "Forgot to clock out before leaving",
	})
	require.NoError(t, err)

	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, string(exception.StatusPending), resp.Status)
	assert.NotEmpty(t, resp.ID)

	stored, err := repo.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.ProposedClockOut)
	assert.Equal(t, time.UTC, stored.ProposedClockOut.Location())
}

func TestSubmit_RejectsDuplicatePending(t *testing.T) {
	repo := newFakeExceptionRepo()
	repo.hasPending = true
	svc := newTestService(t, repo, nil)
	ctx := claimsContext(t, map[string]interface{}{"employee_id": "emp-1"})

	proposedIn := "2026-02-10T09:00:00+04:00"
	_, err := svc.Submit(ctx, exception.CreateRequest{
		Date:            "2026-02-10",
		Type:            string(exception.TypeMissedClockIn),
		ProposedClockIn: &proposedIn,
		Reason:          "Badge reader was down",
	})
	assert.ErrorIs(t, err, exception.ErrDuplicatePending)
}

func TestSubmit_RequiresProposedTimeForType(t *testing.T) {
	repo := newFakeExceptionRepo()
	svc := newTestService(t, repo, nil)
	ctx := claimsContext(t, map[string]interface{}{"employee_id": "emp-1"})

	_, err := svc.Submit(ctx, exception.CreateRequest{
		Date:   "2026-02-10",
		Type:   string(exception.TypeMissedClockIn),
		Reason: "Badge reader was down",
	})
	assert.Error(t, err)
	assert.Empty(t, repo.requests)
}

func TestApprove_TransitionsPendingExactlyOnce(t *testing.T) {
	repo := newFakeExceptionRepo()
	notifier := &fakeNotifier{}
	svc := newTestService(t, repo, notifier)

	pending := &exception.Request{
		EmployeeID:  "emp-1",
		Date:        time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		Type:        exception.TypeMissedClockOut,
		Reason:      "Forgot to clock out",
		Status:      exception.StatusPending,
		SubmittedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Create(context.Background(), pending))

	adminCtx := claimsContext(t, map[string]interface{}{"user_id": "admin-1"})
	comment := "Confirmed with the team lead"

	resp, err := svc.Approve(adminCtx, exception.DecideRequest{ID: pending.ID, Comment: &comment})
	require.NoError(t, err)
	assert.Equal(t, string(exception.StatusApproved), resp.Status)

	stored, err := repo.GetByID(context.Background(), pending.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.DecidedBy)
	assert.Equal(t, "admin-1", *stored.DecidedBy)
	assert.NotNil(t, stored.DecidedAt)

	// The employee behind emp-1 gets exactly one notification.
	require.Len(t, notifier.queued, 1)
	assert.Equal(t, "user-1", notifier.queued[0].RecipientID)
	assert.Equal(t, notification.TypeExceptionApproved, notifier.queued[0].Type)

	_, err = svc.Approve(adminCtx, exception.DecideRequest{ID: pending.ID})
	assert.ErrorIs(t, err, exception.ErrAlreadyProcessed)
	assert.Len(t, notifier.queued, 1)
}

func TestReject_RequiresComment(t *testing.T) {
	repo := newFakeExceptionRepo()
	svc := newTestService(t, repo, nil)
	adminCtx := claimsContext(t, map[string]interface{}{"user_id": "admin-1"})

	_, err := svc.Reject(adminCtx, exception.RejectRequest{ID: "whatever", Comment: "  "})
	assert.Error(t, err)
}

func TestReject_SetsRejectedStatusAndComment(t *testing.T) {
	repo := newFakeExceptionRepo()
	notifier := &fakeNotifier{}
	svc := newTestService(t, repo, notifier)

	pending := &exception.Request{
		EmployeeID:  "emp-1",
		Date:        time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		Type:        exception.TypeLateArrival,
		Reason:      "Traffic",
		Status:      exception.StatusPending,
		SubmittedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Create(context.Background(), pending))

	adminCtx := claimsContext(t, map[string]interface{}{"user_id": "admin-1"})
	resp, err := svc.Reject(adminCtx, exception.RejectRequest{ID: pending.ID, Comment: "No supporting evidence"})
	require.NoError(t, err)
	assert.Equal(t, string(exception.StatusRejected), resp.Status)

	require.Len(t, notifier.queued, 1)
	assert.Equal(t, notification.TypeExceptionRejected, notifier.queued[0].Type)
}

func TestGet_NotFound(t *testing.T) {
	repo := newFakeExceptionRepo()
	svc := newTestService(t, repo, nil)

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, exception.ErrRequestNotFound)
}
