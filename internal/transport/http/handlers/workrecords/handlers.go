package workrecordshandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"plannersystem/internal/domain/auth"
	"plannersystem/internal/domain/workrecords"
	"plannersystem/internal/transport/http/api"
	"plannersystem/internal/transport/http/middleware"
	"plannersystem/internal/transport/http/shared"
)

type Handler struct {
	Records *workrecords.Service
	Perms   middleware.PermissionStore
}

func NewHandler(service *workrecords.Service, perms middleware.PermissionStore) *Handler {
	return &Handler{Records: service, Perms: perms}
}

type recordPayload struct {
	EmployeeID    string  `json:"employeeId"`
	EventID       string  `json:"eventId"`
	WorkDate      string  `json:"workDate"`
	HoursWorked   float64 `json:"hoursWorked"`
	OvertimeHours float64 `json:"overtimeHours"`
	TotalPay      float64 `json:"totalPay"`
	Notes         string  `json:"notes"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/workrecords", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermWorkRecordsRead, h.Perms)).Get("/event/{eventID}", h.handleListByEvent)
		r.With(middleware.RequirePermission(auth.PermWorkRecordsRead, h.Perms)).Get("/employee/{employeeID}", h.handleListByEmployee)
		r.With(middleware.RequirePermission(auth.PermWorkRecordsLog, h.Perms)).Post("/", h.handleCreate)
		r.With(middleware.RequirePermission(auth.PermWorkRecordsLog, h.Perms)).Delete("/{recordID}", h.handleDelete)
	})
}

func (h *Handler) handleListByEvent(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	list, err := h.Records.ListByEvent(r.Context(), user.TenantID, chi.URLParam(r, "eventID"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "workrecords_list_failed", "failed to list work records", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, list, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListByEmployee(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	page := shared.ParsePagination(r, 100, 500)
	list, err := h.Records.ListByEmployee(r.Context(), user.TenantID, chi.URLParam(r, "employeeID"), page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "workrecords_list_failed", "failed to list work records", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, list, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload recordPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "employeeId is required")
	v.Required("eventId", payload.EventID, "eventId is required")
	v.Date("workDate", payload.WorkDate)
	v.NonNegative("hoursWorked", payload.HoursWorked)
	v.NonNegative("overtimeHours", payload.OvertimeHours)
	v.NonNegative("totalPay", payload.TotalPay)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	id, err := h.Records.Create(r.Context(), user.TenantID, workrecords.WorkRecord{
		EmployeeID:    payload.EmployeeID,
		EventID:       payload.EventID,
		WorkDate:      strings.TrimSpace(payload.WorkDate),
		HoursWorked:   payload.HoursWorked,
		OvertimeHours: payload.OvertimeHours,
		TotalPay:      payload.TotalPay,
		Notes:         strings.TrimSpace(payload.Notes),
	})
	if err != nil {
		if errors.Is(err, workrecords.ErrInvalidWorkDate) {
			api.Fail(w, http.StatusBadRequest, "invalid_work_date", "workDate must be a valid YYYY-MM-DD date", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "workrecord_create_failed", "failed to create work record", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	if err := h.Records.Delete(r.Context(), user.TenantID, chi.URLParam(r, "recordID")); err != nil {
		api.Fail(w, http.StatusInternalServerError, "workrecord_delete_failed", "failed to delete work record", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, middleware.GetRequestID(r.Context()))
}
