package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"

	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/employee"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/notification"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/schedule"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/pkg/timezone"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/pkg/validator"
)

type Service interface {
	Create(ctx context.Context, req schedule.CreateScheduleRequest) (schedule.ScheduleResponse, error)
	Get(ctx context.Context, id string) (schedule.ScheduleResponse, error)
	List(ctx context.Context) ([]schedule.ScheduleResponse, error)
	Update(ctx context.Context, req schedule.UpdateScheduleRequest) (schedule.ScheduleResponse, error)
	Delete(ctx context.Context, id string) error

	Assign(ctx context.Context, req schedule.AssignScheduleRequest) (schedule.AssignmentResponse, error)
	ListAssignments(ctx context.Context, employeeID string) ([]schedule.AssignmentResponse, error)
	DeleteAssignment(ctx context.Context, id string) error

	// ResolveMyDay reports today's expected attendance window for the caller.
	ResolveMyDay(ctx context.Context) (schedule.ResolvedDay, error)
}

type ServiceImpl struct {
	scheduleRepo    schedule.WorkScheduleRepository
	assignmentRepo  schedule.AssignmentRepository
	employeeRepo    employee.Repository
	notificationSvc notification.Service
	region          timezone.Region
}

func NewScheduleService(
	scheduleRepo schedule.WorkScheduleRepository,
	assignmentRepo schedule.AssignmentRepository,
	employeeRepo employee.Repository,
	notificationSvc notification.Service,
	region timezone.Region,
) Service {
	return &ServiceImpl{
		scheduleRepo:    scheduleRepo,
		assignmentRepo:  assignmentRepo,
		employeeRepo:    employeeRepo,
		notificationSvc: notificationSvc,
		region:          region,
	}
}

func (s *ServiceImpl) Create(ctx context.Context, req schedule.CreateScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	ws := schedule.WorkSchedule{
		Name:      req.Name,
		IsDefault: req.IsDefault,
	}
	for _, input := range req.Days {
		day := schedule.ScheduleDay{
			Weekday:   input.Weekday,
			IsWorking: input.IsWorking,
		}
		if input.IsWorking {
			in, _ := validator.IsValidClock(input.ClockInTime)
			out, _ := validator.IsValidClock(input.ClockOutTime)
			day.ClockInTime = in
			day.ClockOutTime = out
		}
		ws.Days = append(ws.Days, day)
	}

	created, err := s.scheduleRepo.Create(ctx, ws)
	if err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to create schedule: %w", err)
	}
	return schedule.MapToResponse(created), nil
}

func (s *ServiceImpl) Get(ctx context.Context, id string) (schedule.ScheduleResponse, error) {
	ws, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.ScheduleResponse{}, schedule.ErrScheduleNotFound
		}
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to get schedule: %w", err)
	}
	return schedule.MapToResponse(ws), nil
}

func (s *ServiceImpl) List(ctx context.Context) ([]schedule.ScheduleResponse, error) {
	schedules, err := s.scheduleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	out := make([]schedule.ScheduleResponse, 0, len(schedules))
	for _, ws := range schedules {
		out = append(out, schedule.MapToResponse(ws))
	}
	return out, nil
}

func (s *ServiceImpl) Update(ctx context.Context, req schedule.UpdateScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	updated, err := s.scheduleRepo.Update(ctx, req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.ScheduleResponse{}, schedule.ErrScheduleNotFound
		}
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to update schedule: %w", err)
	}
	return schedule.MapToResponse(updated), nil
}

// Delete soft-deletes a schedule. The default schedule is the system's
// fallback and cannot be removed.
func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	ws, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.ErrScheduleNotFound
		}
		return fmt.Errorf("failed to get schedule: %w", err)
	}
	if ws.IsDefault {
		return schedule.ErrDefaultUndeletable
	}

	if err := s.scheduleRepo.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	return nil
}

func (s *ServiceImpl) Assign(ctx context.Context, req schedule.AssignScheduleRequest) (schedule.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.AssignmentResponse{}, err
	}

	if _, err := s.scheduleRepo.GetByID(ctx, req.ScheduleID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.AssignmentResponse{}, schedule.ErrScheduleNotFound
		}
		return schedule.AssignmentResponse{}, fmt.Errorf("failed to get schedule: %w", err)
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.AssignmentResponse{}, employee.ErrEmployeeNotFound
		}
		return schedule.AssignmentResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	start, err := s.region.ParseDate(req.StartDate)
	if err != nil {
		return schedule.AssignmentResponse{}, err
	}
	assignment := schedule.EmployeeAssignment{
		EmployeeID: req.EmployeeID,
		ScheduleID: req.ScheduleID,
		StartDate:  start,
	}
	if req.EndDate != nil {
		end, err := s.region.ParseDate(*req.EndDate)
		if err != nil {
			return schedule.AssignmentResponse{}, err
		}
		assignment.EndDate = &end
	}

	created, err := s.assignmentRepo.Assign(ctx, assignment)
	if err != nil {
		return schedule.AssignmentResponse{}, fmt.Errorf("failed to assign schedule: %w", err)
	}

	if s.notificationSvc != nil && emp.UserID != nil {
		adminID, _ := userIDFromClaims(ctx)
		var sender *string
		if adminID != "" {
			sender = &adminID
		}
		_ = s.notificationSvc.QueueNotification(ctx, notification.CreateNotificationRequest{
			RecipientID: *emp.UserID,
			SenderID:    sender,
			Type:        notification.TypeScheduleAssigned,
			Title:       "Work schedule assigned",
			Message:     fmt.Sprintf("You were assigned a new work schedule starting %s", req.StartDate),
			Data: map[string]interface{}{
				"schedule_id": req.ScheduleID,
				"start_date":  req.StartDate,
			},
		})
	}

	return mapAssignment(created), nil
}

func (s *ServiceImpl) ListAssignments(ctx context.Context, employeeID string) ([]schedule.AssignmentResponse, error) {
	assignments, err := s.assignmentRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	out := make([]schedule.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, mapAssignment(a))
	}
	return out, nil
}

func (s *ServiceImpl) DeleteAssignment(ctx context.Context, id string) error {
	if err := s.assignmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	return nil
}

func (s *ServiceImpl) ResolveMyDay(ctx context.Context) (schedule.ResolvedDay, error) {
	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return schedule.ResolvedDay{}, err
	}

	today := s.region.Today()
	ws, err := s.scheduleRepo.GetForEmployee(ctx, employeeID, today)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.ResolvedDay{}, schedule.ErrNoDefaultSchedule
		}
		return schedule.ResolvedDay{}, fmt.Errorf("failed to resolve schedule: %w", err)
	}

	return schedule.ResolveDay(ws, today, s.region)
}

func mapAssignment(a schedule.EmployeeAssignment) schedule.AssignmentResponse {
	resp := schedule.AssignmentResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		ScheduleID: a.ScheduleID,
		StartDate:  a.StartDate.Format("2006-01-02"),
	}
	if a.EndDate != nil {
		end := a.EndDate.Format("2006-01-02")
		resp.EndDate = &end
	}
	return resp
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
