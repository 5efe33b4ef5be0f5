package exception

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"

	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/employee"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/exception"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/notification"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/pkg/timezone"
)

type Service interface {
	Submit(ctx context.Context, req exception.CreateRequest) (exception.Response, error)
	GetMyRequests(ctx context.Context, status *string) ([]exception.Response, error)
	ListPending(ctx context.Context) ([]exception.Response, error)
	Get(ctx context.Context, id string) (exception.Response, error)
	Approve(ctx context.Context, req exception.DecideRequest) (exception.Response, error)
	Reject(ctx context.Context, req exception.RejectRequest) (exception.Response, error)
}

type ServiceImpl struct {
	exceptionRepo   exception.Repository
	employeeRepo    employee.Repository
	notificationSvc notification.Service
	region          timezone.Region
}

func NewExceptionService(
	exceptionRepo exception.Repository,
	employeeRepo employee.Repository,
	notificationSvc notification.Service,
	region timezone.Region,
) Service {
	return &ServiceImpl{
		exceptionRepo:   exceptionRepo,
		employeeRepo:    employeeRepo,
		notificationSvc: notificationSvc,
		region:          region,
	}
}

// Submit records a pending correction request. The DTO already guarantees
// the proposed instants required by the request's type are present.
func (s *ServiceImpl) Submit(ctx context.Context, req exception.CreateRequest) (exception.Response, error) {
	if err := req.Validate(); err != nil {
		return exception.Response{}, err
	}

	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return exception.Response{}, err
	}

	date, err := s.region.ParseDate(req.Date)
	if err != nil {
		return exception.Response{}, err
	}
	typ := exception.Type(req.Type)

	duplicate, err := s.exceptionRepo.HasPendingForDate(ctx, employeeID, date, typ)
	if err != nil {
		return exception.Response{}, fmt.Errorf("failed to check pending requests: %w", err)
	}
	if duplicate {
		return exception.Response{}, exception.ErrDuplicatePending
	}

	now := time.Now().UTC()
	entity := exception.Request{
		EmployeeID:  employeeID,
		Date:        date,
		Type:        typ,
		Reason:      req.Reason,
		Status:      exception.StatusPending,
		SubmittedAt: now,
	}
	if req.ProposedClockIn != nil {
		t, _ := time.Parse(time.RFC3339, *req.ProposedClockIn)
		utc := t.UTC()
		entity.ProposedClockIn = &utc
	}
	if req.ProposedClockOut != nil {
		t, _ := time.Parse(time.RFC3339, *req.ProposedClockOut)
		utc := t.UTC()
		entity.ProposedClockOut = &utc
	}

	if err := s.exceptionRepo.Create(ctx, &entity); err != nil {
		return exception.Response{}, fmt.Errorf("failed to create exception request: %w", err)
	}

	return exception.MapToResponse(entity), nil
}

func (s *ServiceImpl) GetMyRequests(ctx context.Context, status *string) ([]exception.Response, error) {
	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	var st *exception.Status
	if status != nil {
		v := exception.Status(*status)
		st = &v
	}

	requests, err := s.exceptionRepo.ListByEmployee(ctx, employeeID, st)
	if err != nil {
		return nil, fmt.Errorf("failed to list exception requests: %w", err)
	}
	return mapAll(requests), nil
}

func (s *ServiceImpl) ListPending(ctx context.Context) ([]exception.Response, error) {
	requests, err := s.exceptionRepo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending exception requests: %w", err)
	}
	return mapAll(requests), nil
}

func (s *ServiceImpl) Get(ctx context.Context, id string) (exception.Response, error) {
	req, err := s.exceptionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return exception.Response{}, exception.ErrRequestNotFound
		}
		return exception.Response{}, fmt.Errorf("failed to get exception request: %w", err)
	}
	return exception.MapToResponse(*req), nil
}

// Approve transitions a pending request to approved exactly once.
func (s *ServiceImpl) Approve(ctx context.Context, req exception.DecideRequest) (exception.Response, error) {
	return s.decide(ctx, req.ID, exception.StatusApproved, req.Comment)
}

func (s *ServiceImpl) Reject(ctx context.Context, req exception.RejectRequest) (exception.Response, error) {
	if err := req.Validate(); err != nil {
		return exception.Response{}, err
	}
	return s.decide(ctx, req.ID, exception.StatusRejected, &req.Comment)
}

func (s *ServiceImpl) decide(ctx context.Context, id string, status exception.Status, comment *string) (exception.Response, error) {
	adminID, err := userIDFromClaims(ctx)
	if err != nil {
		return exception.Response{}, err
	}

	entity, err := s.exceptionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return exception.Response{}, exception.ErrRequestNotFound
		}
		return exception.Response{}, fmt.Errorf("failed to get exception request: %w", err)
	}

	if entity.Status != exception.StatusPending {
		return exception.Response{}, exception.ErrAlreadyProcessed
	}

	now := time.Now().UTC()
	entity.Status = status
	entity.AdminComment = comment
	entity.DecidedBy = &adminID
	entity.DecidedAt = &now

	if err := s.exceptionRepo.Update(ctx, entity); err != nil {
		return exception.Response{}, fmt.Errorf("failed to update exception request: %w", err)
	}

	s.notifyDecision(ctx, entity, adminID)

	return exception.MapToResponse(*entity), nil
}

func (s *ServiceImpl) notifyDecision(ctx context.Context, entity *exception.Request, adminID string) {
	if s.notificationSvc == nil {
		return
	}
	emp, err := s.employeeRepo.GetByID(ctx, entity.EmployeeID)
	if err != nil || emp.UserID == nil {
		return
	}

	notifType := notification.TypeExceptionApproved
	verb := "approved"
	if entity.Status == exception.StatusRejected {
		notifType = notification.TypeExceptionRejected
		verb = "rejected"
	}

	_ = s.notificationSvc.QueueNotification(ctx, notification.CreateNotificationRequest{
		RecipientID: *emp.UserID,
		SenderID:    &adminID,
		Type:        notifType,
		Title:       "Attendance exception " + verb,
		Message:     fmt.Sprintf("Your %s request for %s was %s", entity.Type, entity.Date.Format("2006-01-02"), verb),
		Data: map[string]interface{}{
			"request_id": entity.ID,
			"date":       entity.Date.Format("2006-01-02"),
		},
	})
}

func mapAll(requests []exception.Request) []exception.Response {
	out := make([]exception.Response, 0, len(requests))
	for _, req := range requests {
		out = append(out, exception.MapToResponse(req))
	}
	return out
}

func employeeIDFromClaims(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}
	return employeeID, nil
}

func userIDFromClaims(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return userID, nil
}
