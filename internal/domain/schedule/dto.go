package schedule

import (
	"time"

	"github.com/amanaz3/staff-hub-suite-sub001/internal/pkg/validator"
)

type ScheduleDayInput struct {
	Weekday      int    `json:"weekday"` // 1=Monday ... 7=Sunday
	IsWorking    bool   `json:"is_working"`
	ClockInTime  string `json:"clock_in_time,omitempty"`  // HH:MM
	ClockOutTime string `json:"clock_out_time,omitempty"` // HH:MM
}

type CreateScheduleRequest struct {
	Name      string             `json:"name"`
	IsDefault bool               `json:"is_default"`
	Days      []ScheduleDayInput `json:"days"`
}

func (r *CreateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(r.Days) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "days",
			Message: "at least one schedule day is required",
		})
	}

	seen := make(map[int]bool)
	for _, day := range r.Days {
		if day.Weekday < 1 || day.Weekday > 7 {
			errs = append(errs, validator.ValidationError{
				Field:   "days.weekday",
				Message: "weekday must be between 1 (Monday) and 7 (Sunday)",
			})
			continue
		}
		if seen[day.Weekday] {
			errs = append(errs, validator.ValidationError{
				Field:   "days.weekday",
				Message: "duplicate weekday in schedule",
			})
		}
		seen[day.Weekday] = true

		if !day.IsWorking {
			continue
		}

		in, inOK := validator.IsValidClock(day.ClockInTime)
		out, outOK := validator.IsValidClock(day.ClockOutTime)
		if !inOK {
			errs = append(errs, validator.ValidationError{
				Field:   "days.clock_in_time",
				Message: "clock_in_time must be in HH:MM format on working days",
			})
		}
		if !outOK {
			errs = append(errs, validator.ValidationError{
				Field:   "days.clock_out_time",
				Message: "clock_out_time must be in HH:MM format on working days",
			})
		}
		if inOK && outOK && !out.After(in) {
			errs = append(errs, validator.ValidationError{
				Field:   "days.clock_out_time",
				Message: "clock_out_time must be after clock_in_time",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateScheduleRequest struct {
	ID        string             `json:"-"`
	Name      *string            `json:"name,omitempty"`
	IsDefault *bool              `json:"is_default,omitempty"`
	Days      []ScheduleDayInput `json:"days,omitempty"`
}

func (r *UpdateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Days != nil {
		create := CreateScheduleRequest{Name: "placeholder", Days: r.Days}
		if err := create.Validate(); err != nil {
			if ve, ok := err.(validator.ValidationErrors); ok {
				errs = append(errs, ve...)
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignScheduleRequest struct {
	EmployeeID string  `json:"employee_id"`
	ScheduleID string  `json:"schedule_id"`
	StartDate  string  `json:"start_date"`         // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"` // YYYY-MM-DD, open-ended when absent
}

func (r *AssignScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.ScheduleID) {
		errs = append(errs, validator.ValidationError{
			Field:   "schedule_id",
			Message: "schedule_id is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	if r.EndDate != nil {
		end, endOK := validator.IsValidDate(*r.EndDate)
		if !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		} else if startOK && end.Before(start) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must not precede start_date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ScheduleDayResponse struct {
	Weekday      int     `json:"weekday"`
	IsWorking    bool    `json:"is_working"`
	ClockInTime  *string `json:"clock_in_time,omitempty"`
	ClockOutTime *string `json:"clock_out_time,omitempty"`
}

type ScheduleResponse struct {
	ID        string                `json:"id"`
	Name      string                `json:"name"`
	IsDefault bool                  `json:"is_default"`
	Days      []ScheduleDayResponse `json:"days"`
	CreatedAt string                `json:"created_at"`
	UpdatedAt string                `json:"updated_at"`
}

type AssignmentResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	ScheduleID string  `json:"schedule_id"`
	StartDate  string  `json:"start_date"`
	EndDate    *string `json:"end_date,omitempty"`
}

// MapToResponse converts a WorkSchedule entity to its response shape.
func MapToResponse(ws WorkSchedule) ScheduleResponse {
	days := make([]ScheduleDayResponse, 0, len(ws.Days))
	for _, d := range ws.Days {
		day := ScheduleDayResponse{Weekday: d.Weekday, IsWorking: d.IsWorking}
		if d.IsWorking {
			in := d.ClockInTime.Format("15:04")
			out := d.ClockOutTime.Format("15:04")
			day.ClockInTime = &in
			day.ClockOutTime = &out
		}
		days = append(days, day)
	}
	return ScheduleResponse{
		ID:        ws.ID,
		Name:      ws.Name,
		IsDefault: ws.IsDefault,
		Days:      days,
		CreatedAt: ws.CreatedAt.Format(time.RFC3339),
		UpdatedAt: ws.UpdatedAt.Format(time.RFC3339),
	}
}
