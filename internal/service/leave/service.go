package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"

	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/employee"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/leave"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/notification"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/pkg/timezone"
)

type Service interface {
	Submit(ctx context.Context, req leave.CreateRequest) (leave.Response, error)
	GetMyRequests(ctx context.Context, status *string) ([]leave.Response, error)
	ListPending(ctx context.Context) ([]leave.Response, error)
	Get(ctx context.Context, id string) (leave.Response, error)
	Approve(ctx context.Context, req leave.DecideRequest) (leave.Response, error)
	Reject(ctx context.Context, req leave.RejectRequest) (leave.Response, error)
}

type ServiceImpl struct {
	leaveRepo       leave.Repository
	employeeRepo    employee.Repository
	notificationSvc notification.Service
	region          timezone.Region
}

func NewLeaveService(
	leaveRepo leave.Repository,
	employeeRepo employee.Repository,
	notificationSvc notification.Service,
	region timezone.Region,
) Service {
	return &ServiceImpl{
		leaveRepo:       leaveRepo,
		employeeRepo:    employeeRepo,
		notificationSvc: notificationSvc,
		region:          region,
	}
}

func (s *ServiceImpl) Submit(ctx context.Context, req leave.CreateRequest) (leave.Response, error) {
	if err := req.Validate(); err != nil {
		return leave.Response{}, err
	}

	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return leave.Response{}, err
	}

	start, err := s.region.ParseDate(req.StartDate)
	if err != nil {
		return leave.Response{}, err
	}
	end, err := s.region.ParseDate(req.EndDate)
	if err != nil {
		return leave.Response{}, err
	}

	overlap, err := s.leaveRepo.HasPendingOverlap(ctx, employeeID, start, end)
	if err != nil {
		return leave.Response{}, fmt.Errorf("failed to check overlapping requests: %w", err)
	}
	if overlap {
		return leave.Response{}, leave.ErrOverlapPending
	}

	entity := leave.Request{
		EmployeeID:  employeeID,
		Type:        leave.Type(req.Type),
		StartDate:   start,
		EndDate:     end,
		Reason:      req.Reason,
		Status:      leave.StatusPending,
		SubmittedAt: time.Now().UTC(),
	}

	if err := s.leaveRepo.Create(ctx, &entity); err != nil {
		return leave.Response{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return leave.MapToResponse(entity), nil
}

func (s *ServiceImpl) GetMyRequests(ctx context.Context, status *string) ([]leave.Response, error) {
	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	var st *leave.Status
	if status != nil {
		v := leave.Status(*status)
		st = &v
	}

	requests, err := s.leaveRepo.ListByEmployee(ctx, employeeID, st)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return mapAll(requests), nil
}

func (s *ServiceImpl) ListPending(ctx context.Context) ([]leave.Response, error) {
	requests, err := s.leaveRepo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending leave requests: %w", err)
	}
	return mapAll(requests), nil
}

func (s *ServiceImpl) Get(ctx context.Context, id string) (leave.Response, error) {
	req, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Response{}, leave.ErrRequestNotFound
		}
		return leave.Response{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return leave.MapToResponse(*req), nil
}

func (s *ServiceImpl) Approve(ctx context.Context, req leave.DecideRequest) (leave.Response, error) {
	return s.decide(ctx, req.ID, leave.StatusApproved, req.Comment)
}

func (s *ServiceImpl) Reject(ctx context.Context, req leave.RejectRequest) (leave.Response, error) {
	if err := req.Validate(); err != nil {
		return leave.Response{}, err
	}
	return s.decide(ctx, req.ID, leave.StatusRejected, &req.Comment)
}

func (s *ServiceImpl) decide(ctx context.Context, id string, status leave.Status, comment *string) (leave.Response, error) {
	adminID, err := userIDFromClaims(ctx)
	if err != nil {
		return leave.Response{}, err
	}

	entity, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Response{}, leave.ErrRequestNotFound
		}
		return leave.Response{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if entity.Status != leave.StatusPending {
		return leave.Response{}, leave.ErrAlreadyProcessed
	}

	now := time.Now().UTC()
	entity.Status = status
	entity.AdminComment = comment
	entity.DecidedBy = &adminID
	entity.DecidedAt = &now

	if err := s.leaveRepo.Update(ctx, entity); err != nil {
		return leave.Response{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	s.notifyDecision(ctx, entity, adminID)

	return leave.MapToResponse(*entity), nil
}

func (s *ServiceImpl) notifyDecision(ctx context.Context, entity *leave.Request, adminID string) {
	if s.notificationSvc == nil {
		return
	}
	emp, err := s.employeeRepo.GetByID(ctx, entity.EmployeeID)
	if err != nil || emp.UserID == nil {
		return
	}

	notifType := notification.TypeLeaveApproved
	verb := "approved"
	if entity.Status == leave.StatusRejected {
		notifType = notification.TypeLeaveRejected
		verb = "rejected"
	}

	_ = s.notificationSvc.QueueNotification(ctx, notification.CreateNotificationRequest{
		RecipientID: *emp.UserID,
		SenderID:    &adminID,
		Type:        notifType,
		Title:       "Leave request " + verb,
		Message: fmt.Sprintf("Your %s leave from %s to %s was %s",
			entity.Type, entity.StartDate.Format("2006-01-02"), entity.EndDate.Format("2006-01-02"), verb),
		Data: map[string]interface{}{
			"request_id": entity.ID,
			"start_date": entity.StartDate.Format("2006-01-02"),
			"end_date":   entity.EndDate.Format("2006-01-02"),
		},
	})
}

func mapAll(requests []leave.Request) []leave.Response {
	out := make([]leave.Response, 0, len(requests))
	for _, req := range requests {
		out = append(out, leave.MapToResponse(req))
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
