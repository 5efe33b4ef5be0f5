package timesheet

import "time"

type DayView struct {
	Date             string   `json:"date"`
	Status           string   `json:"status,omitempty"`
	LatenessMinutes  int      `json:"lateness_minutes"`
	EarlinessMinutes int      `json:"earliness_minutes"`
	TotalHours       *float64 `json:"total_hours,omitempty"`
	Error            *string  `json:"error,omitempty"`
}

type WeekView struct {
	Year            int     `json:"year"`
	Week            int     `json:"week"`
	Start           string  `json:"start"`
	End             string  `json:"end"`
	TotalHours      float64 `json:"total_hours"`
	DaysWorked      int     `json:"days_worked"`
	LatenessMinutes int     `json:"lateness_minutes"`
}

type MonthView struct {
	Year               int     `json:"year"`
	Month              int     `json:"month"`
	TotalHours         float64 `json:"total_hours"`
	DaysWorked         int     `json:"days_worked"`
	DaysLate           int     `json:"days_late"`
	DaysAbsent         int     `json:"days_absent"`
	DaysLeave          int     `json:"days_leave"`
	AverageHoursPerDay float64 `json:"average_hours_per_day"`
	LatenessMinutes    int     `json:"lateness_minutes"`
	EarlinessMinutes   int     `json:"earliness_minutes"`
}

type MonthTimesheetResponse struct {
	EmployeeID string     `json:"employee_id"`
	Days       []DayView  `json:"days"`
	Weeks      []WeekView `json:"weeks"`
	Summary    MonthView  `json:"summary"`
}

func buildMonthResponse(
	employeeID string,
	year int,
	month time.Month,
	results []DayResult,
	weeks []WeekSummary,
	summary MonthSummary,
) *MonthTimesheetResponse {
	resp := &MonthTimesheetResponse{
		EmployeeID: employeeID,
		Days:       make([]DayView, 0, len(results)),
		Weeks:      make([]WeekView, 0, len(weeks)),
		Summary: MonthView{
			Year:               year,
			Month:              int(month),
			TotalHours:         summary.TotalHours,
			DaysWorked:         summary.DaysWorked,
			DaysLate:           summary.DaysLate,
			DaysAbsent:         summary.DaysAbsent,
			DaysLeave:          summary.DaysLeave,
			AverageHoursPerDay: summary.AverageHoursPerDay,
			LatenessMinutes:    summary.LatenessMinutes,
			EarlinessMinutes:   summary.EarlinessMinutes,
		},
	}

	for _, res := range results {
		view := DayView{Date: res.Date.Format("2006-01-02")}
		if res.Err != nil {
			msg := res.Err.Error()
			view.Error = &msg
		} else {
			view.Status = string(res.Classification.Status)
			view.LatenessMinutes = res.Classification.LatenessMinutes
			view.EarlinessMinutes = res.Classification.EarlinessMinutes
			view.TotalHours = res.Classification.TotalHours
		}
		resp.Days = append(resp.Days, view)
	}

	for _, ws := range weeks {
		resp.Weeks = append(resp.Weeks, WeekView{
			Year:            ws.Year,
			Week:            ws.Week,
			Start:           ws.Start.Format("2006-01-02"),
			End:             ws.End.Format("2006-01-02"),
			TotalHours:      ws.TotalHours,
			DaysWorked:      ws.DaysWorked,
			LatenessMinutes: ws.LatenessMinutes,
		})
	}

	return resp
}
