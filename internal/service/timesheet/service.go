package timesheet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/attendance"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/exception"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/leave"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/schedule"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/pkg/timezone"
)

type Service interface {
	MonthTimesheet(ctx context.Context, employeeID string, year int, month time.Month) (*MonthTimesheetResponse, error)
}

type service struct {
	attendanceRepo attendance.Repository
	scheduleRepo   schedule.WorkScheduleRepository
	exceptionRepo  exception.Repository
	leaveRepo      leave.Repository
	region         timezone.Region
	cfg            Config
}

func NewTimesheetService(
	attendanceRepo attendance.Repository,
	scheduleRepo schedule.WorkScheduleRepository,
	exceptionRepo exception.Repository,
	leaveRepo leave.Repository,
	region timezone.Region,
	cfg Config,
) Service {
	return &service{
		attendanceRepo: attendanceRepo,
		scheduleRepo:   scheduleRepo,
		exceptionRepo:  exceptionRepo,
		leaveRepo:      leaveRepo,
		region:         region,
		cfg:            cfg,
	}
}

// MonthTimesheet runs the sequential pipeline for one employee-month: fetch
// attendance rows, schedules, and approved overlays up front, then for each
// calendar day resolve the schedule, apply the overlay, classify, and finally
// aggregate. A failure on one day is carried in that day's result and never
// aborts the month.
func (s *service) MonthTimesheet(ctx context.Context, employeeID string, year int, month time.Month) (*MonthTimesheetResponse, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, s.region.Location())
	last := first.AddDate(0, 1, -1)

	rows, err := s.attendanceRepo.ListByEmployeeRange(ctx, employeeID, first, last)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance days: %w", err)
	}
	byDate := make(map[string]attendance.Day, len(rows))
	for _, row := range rows {
		byDate[row.Date.Format("2006-01-02")] = row
	}

	exceptions, err := s.exceptionRepo.ListApprovedInRange(ctx, employeeID, first, last)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved exceptions: %w", err)
	}
	leaves, err := s.leaveRepo.ListApprovedInRange(ctx, employeeID, first, last)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leaves: %w", err)
	}

	results := make([]DayResult, 0, last.Day())
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		results = append(results, s.classifyDay(ctx, employeeID, d, byDate, exceptions, leaves))
	}

	weeks := AggregateWeeks(results, year, month)
	summary := AggregateMonth(results, year, month)

	return buildMonthResponse(employeeID, year, month, results, weeks, summary), nil
}

func (s *service) classifyDay(
	ctx context.Context,
	employeeID string,
	date time.Time,
	byDate map[string]attendance.Day,
	exceptions []exception.Request,
	leaves []leave.Request,
) DayResult {
	day, ok := byDate[date.Format("2006-01-02")]
	if !ok {
		// No row yet: a working day with no clock-in classifies as absent
		// unless an overlay says otherwise.
		day = attendance.Day{EmployeeID: employeeID, Date: date}
	}

	ws, err := s.scheduleRepo.GetForEmployee(ctx, employeeID, date)
	if err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) || errors.Is(err, schedule.ErrNoDefaultSchedule) {
			return DayResult{Date: date, Err: schedule.ErrNoDefaultSchedule}
		}
		return DayResult{Date: date, Err: err}
	}

	resolved, err := schedule.ResolveDay(ws, date, s.region)
	if err != nil {
		return DayResult{Date: date, Err: err}
	}

	return DayResult{
		Date:           date,
		Classification: Classify(day, resolved, exceptions, leaves, s.cfg),
	}
}
