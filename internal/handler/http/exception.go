package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/exception"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/handler/http/response"
	exceptionservice "github.com/amanaz3/staff-hub-suite-sub001/internal/service/exception"
)

type ExceptionHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	GetMyRequests(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type exceptionHandlerImpl struct {
	exceptionService exceptionservice.Service
}

func NewExceptionHandler(exceptionService exceptionservice.Service) ExceptionHandler {
	return &exceptionHandlerImpl{exceptionService: exceptionService}
}

func (h *exceptionHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req exception.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Exception submit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.exceptionService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Exception request submitted", created)
}

func (h *exceptionHandlerImpl) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	var status *string
	if v := r.URL.Query().Get("status"); v != "" {
		status = &v
	}

	requests, err := h.exceptionService.GetMyRequests(r.Context(), status)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}

func (h *exceptionHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	requests, err := h.exceptionService.ListPending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}

func (h *exceptionHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	req, err := h.exceptionService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, req)
}

func (h *exceptionHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	var req exception.DecideRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}
	req.ID = chi.URLParam(r, "id")

	decided, err := h.exceptionService.Approve(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Exception request approved", decided)
}

func (h *exceptionHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	var req exception.RejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	decided, err := h.exceptionService.Reject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Exception request rejected", decided)
}
