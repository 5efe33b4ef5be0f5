package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/auth"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/handler/http/response"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/service/timesheet"
)

type TimesheetHandler interface {
	GetMyMonth(w http.ResponseWriter, r *http.Request)
	GetEmployeeMonth(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.Service
}

func NewTimesheetHandler(timesheetService timesheet.Service) TimesheetHandler {
	return &timesheetHandlerImpl{timesheetService: timesheetService}
}

func monthFromQuery(r *http.Request) (int, time.Month, bool) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 2000 || year > 2200 {
		return 0, 0, false
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, time.Month(month), true
}

func (h *timesheetHandlerImpl) GetMyMonth(w http.ResponseWriter, r *http.Request) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		response.BadRequest(w, "No employee record is linked to this account", nil)
		return
	}

	year, month, ok := monthFromQuery(r)
	if !ok {
		response.BadRequest(w, "Query parameters 'year' and 'month' are required", nil)
		return
	}

	sheet, err := h.timesheetService.MonthTimesheet(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, sheet)
}

func (h *timesheetHandlerImpl) GetEmployeeMonth(w http.ResponseWriter, r *http.Request) {
	year, month, ok := monthFromQuery(r)
	if !ok {
		response.BadRequest(w, "Query parameters 'year' and 'month' are required", nil)
		return
	}

	sheet, err := h.timesheetService.MonthTimesheet(r.Context(), chi.URLParam(r, "id"), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, sheet)
}
