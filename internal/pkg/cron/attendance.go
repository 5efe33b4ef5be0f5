package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/attendance"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/employee"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/leave"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/notification"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/schedule"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/pkg/timezone"
)

// AttendanceJobs bundles the periodic attendance housekeeping jobs.
type AttendanceJobs struct {
	attendanceRepo  attendance.Repository
	employeeRepo    employee.Repository
	scheduleRepo    schedule.WorkScheduleRepository
	leaveRepo       leave.Repository
	notificationSvc notification.Service
	region          timezone.Region
}

func NewAttendanceJobs(
	attendanceRepo attendance.Repository,
	employeeRepo employee.Repository,
	scheduleRepo schedule.WorkScheduleRepository,
	leaveRepo leave.Repository,
	notificationSvc notification.Service,
	region timezone.Region,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo:  attendanceRepo,
		employeeRepo:    employeeRepo,
		scheduleRepo:    scheduleRepo,
		leaveRepo:       leaveRepo,
		notificationSvc: notificationSvc,
		region:          region,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_close_stale_attendances", 1*time.Hour, j.AutoCloseStaleAttendances)
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// AutoCloseStaleAttendances closes open sessions whose scheduled end passed
// more than two hours ago. Runs hourly but only acts during the regional
// midnight hour so a forgotten clock-out is settled once per day.
func (j *AttendanceJobs) AutoCloseStaleAttendances(ctx context.Context) error {
	if j.region.ToRegional(time.Now()).Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting auto-close stale attendances job")

	staleSessions, err := j.attendanceRepo.GetStaleOpenSessions(ctx, 2)
	if err != nil {
		return fmt.Errorf("failed to get stale sessions: %w", err)
	}

	if len(staleSessions) == 0 {
		slog.Info("Cron: No stale attendances found")
		return nil
	}

	closedCount := 0
	for _, session := range staleSessions {
		ws, err := j.scheduleRepo.GetForEmployee(ctx, session.EmployeeID, session.Date)
		if err != nil {
			slog.Error("Cron: Failed to resolve schedule for stale session",
				"attendance_id", session.ID,
				"employee_id", session.EmployeeID,
				"error", err)
			continue
		}

		resolved, err := schedule.ResolveDay(ws, session.Date, j.region)
		if err != nil || !resolved.IsWorkingDay {
			// No expected end to close against; fall back to the clock-in
			// instant so the session stops counting as open.
			resolved.ExpectedClockOut = *session.ClockIn
		}

		scheduledOut := resolved.ExpectedClockOut.UTC()
		if scheduledOut.Before(*session.ClockIn) {
			scheduledOut = *session.ClockIn
		}

		workedMinutes := int(scheduledOut.Sub(*session.ClockIn).Minutes())
		note := "Auto-closed: no clock-out recorded by the scheduled end of day"

		session.ClockOut = &scheduledOut
		session.WorkedMinutes = &workedMinutes
		session.Status = attendance.StatusAutoClosed
		session.Note = &note

		if err := j.attendanceRepo.Update(ctx, session); err != nil {
			slog.Error("Cron: Failed to auto-close attendance",
				"attendance_id", session.ID,
				"employee_id", session.EmployeeID,
				"error", err)
			continue
		}
		closedCount++

		j.notify(ctx, session.EmployeeID, notification.CreateNotificationRequest{
			Type:    notification.TypeAttendanceAbsent,
			Title:   "Attendance Auto-Closed",
			Message: fmt.Sprintf("Your attendance for %s was automatically closed", session.Date.Format("2006-01-02")),
			Data: map[string]interface{}{
				"attendance_id": session.ID,
				"date":          session.Date.Format("2006-01-02"),
			},
		})
	}

	slog.Info("Cron: Auto-close job completed",
		"total_stale", len(staleSessions),
		"closed", closedCount)
	return nil
}

// MarkAbsentEmployees records an absence for every active employee who was
// scheduled to work yesterday, never clocked in, and had no approved leave
// covering the date. Runs hourly but only acts during the regional midnight
// hour.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	if j.region.ToRegional(time.Now()).Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting mark-absent job")

	yesterday := j.region.Today().AddDate(0, 0, -1)

	employees, err := j.employeeRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active employees: %w", err)
	}

	var absences []attendance.Day
	for _, emp := range employees {
		ws, err := j.scheduleRepo.GetForEmployee(ctx, emp.ID, yesterday)
		if err != nil {
			slog.Error("Cron: Failed to resolve schedule",
				"employee_id", emp.ID, "error", err)
			continue
		}

		resolved, err := schedule.ResolveDay(ws, yesterday, j.region)
		if err != nil {
			slog.Error("Cron: Malformed schedule day",
				"employee_id", emp.ID, "schedule_id", ws.ID, "error", err)
			continue
		}
		if !resolved.IsWorkingDay {
			continue
		}

		clockedIn, err := j.attendanceRepo.HasClockedIn(ctx, emp.ID, yesterday)
		if err != nil {
			slog.Error("Cron: Failed to check clock-in",
				"employee_id", emp.ID, "error", err)
			continue
		}
		if clockedIn {
			continue
		}

		leaves, err := j.leaveRepo.ListApprovedInRange(ctx, emp.ID, yesterday, yesterday)
		if err != nil {
			slog.Error("Cron: Failed to check leave",
				"employee_id", emp.ID, "error", err)
			continue
		}
		onLeave := false
		for i := range leaves {
			if leaves[i].Covers(yesterday) {
				onLeave = true
				break
			}
		}
		if onLeave {
			continue
		}

		absences = append(absences, attendance.Day{
			EmployeeID: emp.ID,
			Date:       yesterday,
			Status:     attendance.StatusAbsent,
		})
	}

	if len(absences) == 0 {
		slog.Info("Cron: No absences to record")
		return nil
	}

	if err := j.attendanceRepo.BulkCreateAbsences(ctx, absences); err != nil {
		return fmt.Errorf("failed to bulk create absences: %w", err)
	}

	for _, day := range absences {
		j.notify(ctx, day.EmployeeID, notification.CreateNotificationRequest{
			Type:    notification.TypeAttendanceAbsent,
			Title:   "Marked Absent",
			Message: fmt.Sprintf("You were marked absent for %s. Submit an exception request if this is incorrect.", yesterday.Format("2006-01-02")),
			Data: map[string]interface{}{
				"date": yesterday.Format("2006-01-02"),
			},
		})
	}

	slog.Info("Cron: Mark-absent job completed", "marked", len(absences))
	return nil
}

// notify resolves the employee's user account and queues a notification.
// Failures are logged, never propagated.
func (j *AttendanceJobs) notify(ctx context.Context, employeeID string, req notification.CreateNotificationRequest) {
	if j.notificationSvc == nil {
		return
	}
	emp, err := j.employeeRepo.GetByID(ctx, employeeID)
	if err != nil || emp.UserID == nil {
		return
	}
	req.RecipientID = *emp.UserID
	if err := j.notificationSvc.QueueNotification(ctx, req); err != nil {
		slog.Error("Cron: Failed to queue notification",
			"employee_id", employeeID, "error", err)
	}
}
