package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"

	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/attendance"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/schedule"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/pkg/timezone"
)

type Service interface {
	ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.DayResponse, error)
	ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.DayResponse, error)
	GetMyDays(ctx context.Context, filter attendance.Filter) (attendance.ListDaysResponse, error)
	ListDays(ctx context.Context, filter attendance.Filter) (attendance.ListDaysResponse, error)
	GetDay(ctx context.Context, id string) (attendance.DayResponse, error)
	CorrectDay(ctx context.Context, req attendance.CorrectDayRequest) (attendance.DayResponse, error)
}

type ServiceImpl struct {
	attendanceRepo attendance.Repository
	scheduleRepo   schedule.WorkScheduleRepository
	region         timezone.Region
}

func NewAttendanceService(
	attendanceRepo attendance.Repository,
	scheduleRepo schedule.WorkScheduleRepository,
	region timezone.Region,
) Service {
	return &ServiceImpl{
		attendanceRepo: attendanceRepo,
		scheduleRepo:   scheduleRepo,
		region:         region,
	}
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

// ClockIn opens today's attendance row for the caller. One row per employee
// per regional day; lateness is measured against the resolved schedule.
func (a *ServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.DayResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DayResponse{}, err
	}

	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return attendance.DayResponse{}, err
	}

	nowUTC := time.Now().UTC()
	today := a.region.DateOf(nowUTC)

	clockedIn, err := a.attendanceRepo.HasClockedIn(ctx, employeeID, today)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return attendance.DayResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}
	if clockedIn {
		return attendance.DayResponse{}, attendance.ErrAlreadyClockedIn
	}

	ws, err := a.scheduleRepo.GetForEmployee(ctx, employeeID, today)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, schedule.ErrScheduleNotFound) || errors.Is(err, schedule.ErrNoDefaultSchedule) {
			return attendance.DayResponse{}, attendance.ErrNoScheduleForDay
		}
		return attendance.DayResponse{}, fmt.Errorf("failed to resolve schedule: %w", err)
	}

	resolved, err := schedule.ResolveDay(ws, today, a.region)
	if err != nil {
		return attendance.DayResponse{}, err
	}
	if !resolved.IsWorkingDay {
		return attendance.DayResponse{}, attendance.ErrNoScheduleForDay
	}

	status := attendance.StatusPresent
	lateMinutes := 0
	if nowUTC.After(resolved.ExpectedClockIn) {
		lateMinutes = int(math.Floor(nowUTC.Sub(resolved.ExpectedClockIn).Minutes()))
		if lateMinutes > 0 {
			status = attendance.StatusLate
		}
	}

	day := attendance.Day{
		EmployeeID:  employeeID,
		Date:        today,
		ClockIn:     &nowUTC,
		Status:      status,
		IsRemote:    req.IsRemote,
		Note:        req.Note,
		LateMinutes: &lateMinutes,
	}

	created, err := a.attendanceRepo.Create(ctx, day)
	if err != nil {
		return attendance.DayResponse{}, fmt.Errorf("failed to create attendance day: %w", err)
	}

	return a.toResponse(created), nil
}

// ClockOut completes the caller's open session for today. The clock-out
// instant can never precede the stored clock-in.
func (a *ServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.DayResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DayResponse{}, err
	}

	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return attendance.DayResponse{}, err
	}

	day, err := a.attendanceRepo.GetOpenSession(ctx, employeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.DayResponse{}, attendance.ErrNotClockedIn
		}
		return attendance.DayResponse{}, fmt.Errorf("failed to get open session: %w", err)
	}
	if day.ClockOut != nil {
		return attendance.DayResponse{}, attendance.ErrAlreadyClockedOut
	}

	nowUTC := time.Now().UTC()
	if day.ClockIn != nil && nowUTC.Before(*day.ClockIn) {
		return attendance.DayResponse{}, attendance.ErrClockOutBeforeIn
	}

	workedMinutes := int(math.Floor(nowUTC.Sub(*day.ClockIn).Minutes()))
	day.ClockOut = &nowUTC
	day.WorkedMinutes = &workedMinutes
	if req.Note != nil {
		day.Note = req.Note
	}

	earlyBy := 0
	ws, wsErr := a.scheduleRepo.GetForEmployee(ctx, employeeID, day.Date)
	if wsErr == nil {
		if resolved, rErr := schedule.ResolveDay(ws, day.Date, a.region); rErr == nil && resolved.IsWorkingDay {
			if nowUTC.Before(resolved.ExpectedClockOut) {
				earlyBy = int(math.Floor(resolved.ExpectedClockOut.Sub(nowUTC).Minutes()))
			}
		}
	}
	day.EarlyByMinutes = &earlyBy

	if err := a.attendanceRepo.Update(ctx, day); err != nil {
		return attendance.DayResponse{}, fmt.Errorf("failed to update attendance day: %w", err)
	}

	return a.toResponse(day), nil
}

func (a *ServiceImpl) GetMyDays(ctx context.Context, filter attendance.Filter) (attendance.ListDaysResponse, error) {
	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return attendance.ListDaysResponse{}, err
	}
	filter.EmployeeID = &employeeID
	return a.ListDays(ctx, filter)
}

func (a *ServiceImpl) ListDays(ctx context.Context, filter attendance.Filter) (attendance.ListDaysResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListDaysResponse{}, err
	}

	days, total, err := a.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListDaysResponse{}, fmt.Errorf("failed to list attendance days: %w", err)
	}

	resp := attendance.ListDaysResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int((total + int64(filter.Limit) - 1) / int64(filter.Limit)),
		Days:       make([]attendance.DayResponse, 0, len(days)),
	}
	for _, day := range days {
		resp.Days = append(resp.Days, a.toResponse(day))
	}
	return resp, nil
}

func (a *ServiceImpl) GetDay(ctx context.Context, id string) (attendance.DayResponse, error) {
	day, err := a.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.DayResponse{}, attendance.ErrDayNotFound
		}
		return attendance.DayResponse{}, fmt.Errorf("failed to get attendance day: %w", err)
	}
	return a.toResponse(day), nil
}

// CorrectDay is the admin escape hatch for broken rows. It revalidates the
// clock-out after clock-in invariant against the final state of the row.
func (a *ServiceImpl) CorrectDay(ctx context.Context, req attendance.CorrectDayRequest) (attendance.DayResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DayResponse{}, err
	}

	day, err := a.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.DayResponse{}, attendance.ErrDayNotFound
		}
		return attendance.DayResponse{}, fmt.Errorf("failed to get attendance day: %w", err)
	}

	if req.ClockIn != nil {
		t, _ := time.Parse(time.RFC3339, *req.ClockIn)
		utc := t.UTC()
		day.ClockIn = &utc
	}
	if req.ClockOut != nil {
		t, _ := time.Parse(time.RFC3339, *req.ClockOut)
		utc := t.UTC()
		day.ClockOut = &utc
	}
	if req.Status != nil {
		day.Status = *req.Status
	}
	if req.Note != nil {
		day.Note = req.Note
	}

	if day.ClockIn != nil && day.ClockOut != nil {
		if day.ClockOut.Before(*day.ClockIn) {
			return attendance.DayResponse{}, attendance.ErrClockOutBeforeIn
		}
		worked := int(math.Floor(day.ClockOut.Sub(*day.ClockIn).Minutes()))
		day.WorkedMinutes = &worked
	}

	if err := a.attendanceRepo.Update(ctx, day); err != nil {
		return attendance.DayResponse{}, fmt.Errorf("failed to update attendance day: %w", err)
	}

	return a.toResponse(day), nil
}

func (a *ServiceImpl) toResponse(day attendance.Day) attendance.DayResponse {
	resp := attendance.DayResponse{
		ID:             day.ID,
		EmployeeID:     day.EmployeeID,
		EmployeeName:   day.EmployeeName,
		Date:           day.Date.Format("2006-01-02"),
		Status:         day.Status,
		IsRemote:       day.IsRemote,
		Note:           day.Note,
		LateMinutes:    day.LateMinutes,
		EarlyByMinutes: day.EarlyByMinutes,
	}
	if day.ClockIn != nil {
		s := a.region.ToRegional(*day.ClockIn).Format(time.RFC3339)
		resp.ClockIn = &s
	}
	if day.ClockOut != nil {
		s := a.region.ToRegional(*day.ClockOut).Format(time.RFC3339)
		resp.ClockOut = &s
	}
	if day.WorkedMinutes != nil {
		hours := float64(*day.WorkedMinutes) / 60.0
		resp.WorkedHours = &hours
	}
	return resp
}
