package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/employee"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/handler/http/response"
	employeeservice "github.com/amanaz3/staff-hub-suite-sub001/internal/service/employee"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employeeservice.Service
}

func NewEmployeeHandler(employeeService employeeservice.Service) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Employee create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Employee created", created)
}

func (h *employeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Employee update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.employeeService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee updated", updated)
}

func (h *employeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.employeeService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee deleted", nil)
}

// Get returns the full record to admins and to the employee themself, and
// the directory view to everyone else.
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	entry, err := h.employeeService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if entry.Full != nil {
		response.Success(w, entry.Full)
		return
	}
	response.Success(w, entry.Directory)
}

func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var search *string
	if v := r.URL.Query().Get("search"); v != "" {
		search = &v
	}

	entries, err := h.employeeService.List(r.Context(), search)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]interface{}, 0, len(entries))
	for _, entry := range entries {
		if entry.Full != nil {
			out = append(out, entry.Full)
		} else {
			out = append(out, entry.Directory)
		}
	}
	response.Success(w, out)
}
