package payrollhandler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"plannersystem/internal/domain/auth"
	"plannersystem/internal/domain/payroll"
	"plannersystem/internal/platform/metrics"
	"plannersystem/internal/transport/http/api"
	"plannersystem/internal/transport/http/middleware"
	"plannersystem/internal/transport/http/shared"
)

type Handler struct {
	Payroll *payroll.Service
	Perms   middleware.PermissionStore
	Metrics *metrics.Collector
}

func NewHandler(service *payroll.Service, perms middleware.PermissionStore, collector *metrics.Collector) *Handler {
	return &Handler{Payroll: service, Perms: perms, Metrics: collector}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermPayrollRun, h.Perms)).Post("/events/{eventID}/run", h.handleRunEventPayroll)
		r.With(middleware.RequirePermission(auth.PermPayrollClose, h.Perms)).Post("/events/{eventID}/closings", h.handleCreateClosing)
		r.With(middleware.RequirePermission(auth.PermPayrollRead, h.Perms)).Get("/closings", h.handleListClosings)
		r.With(middleware.RequirePermission(auth.PermPayrollRead, h.Perms)).Get("/closings/{closingID}", h.handleGetClosing)
		r.With(middleware.RequirePermission(auth.PermPayrollClose, h.Perms)).Post("/closings/{closingID}/close", h.handleClose)
		r.With(middleware.RequirePermission(auth.PermPayrollClose, h.Perms)).Post("/closings/{closingID}/reopen", h.handleReopen)
	})
}

func (h *Handler) handleRunEventPayroll(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	summary, err := h.Payroll.RunEventPayroll(r.Context(), user.TenantID, chi.URLParam(r, "eventID"))
	if err != nil {
		if errors.Is(err, payroll.ErrEventNotFound) {
			api.Fail(w, http.StatusNotFound, "event_not_found", "event not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "payroll_run_failed", "failed to compute event payroll", middleware.GetRequestID(r.Context()))
		return
	}

	if h.Metrics != nil {
		h.Metrics.RecordPayrollRun()
	}
	api.Success(w, summary, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateClosing(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	id, err := h.Payroll.CreateClosing(r.Context(), user.TenantID, chi.URLParam(r, "eventID"))
	if err != nil {
		switch {
		case errors.Is(err, payroll.ErrEventNotFound):
			api.Fail(w, http.StatusNotFound, "event_not_found", "event not found", middleware.GetRequestID(r.Context()))
		case errors.Is(err, payroll.ErrClosingNoLineItems):
			api.Fail(w, http.StatusBadRequest, "closing_empty", "event has no payroll line items to close", middleware.GetRequestID(r.Context()))
		default:
			api.Fail(w, http.StatusInternalServerError, "closing_create_failed", "failed to create closing", middleware.GetRequestID(r.Context()))
		}
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListClosings(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	page := shared.ParsePagination(r, 50, 200)
	list, err := h.Payroll.ListClosings(r.Context(), user.TenantID, page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "closings_list_failed", "failed to list closings", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, list, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetClosing(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	closing, err := h.Payroll.GetClosing(r.Context(), user.TenantID, chi.URLParam(r, "closingID"))
	if err != nil {
		if errors.Is(err, payroll.ErrClosingNotFound) {
			api.Fail(w, http.StatusNotFound, "closing_not_found", "closing not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "closing_get_failed", "failed to load closing", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, closing, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleClose(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	if err := h.Payroll.Close(r.Context(), user.TenantID, chi.URLParam(r, "closingID")); err != nil {
		switch {
		case errors.Is(err, payroll.ErrClosingNotFound):
			api.Fail(w, http.StatusNotFound, "closing_not_found", "closing not found", middleware.GetRequestID(r.Context()))
		case errors.Is(err, payroll.ErrCloseInvalidState):
			api.Fail(w, http.StatusConflict, "closing_invalid_state", "closing is not in draft state", middleware.GetRequestID(r.Context()))
		default:
			api.Fail(w, http.StatusInternalServerError, "closing_close_failed", "failed to close payroll", middleware.GetRequestID(r.Context()))
		}
		return
	}
	api.Success(w, map[string]string{"status": payroll.ClosingStatusClosed}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleReopen(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	if err := h.Payroll.Reopen(r.Context(), user.TenantID, chi.URLParam(r, "closingID")); err != nil {
		switch {
		case errors.Is(err, payroll.ErrClosingNotFound):
			api.Fail(w, http.StatusNotFound, "closing_not_found", "closing not found", middleware.GetRequestID(r.Context()))
		case errors.Is(err, payroll.ErrReopenInvalidState):
			api.Fail(w, http.StatusConflict, "closing_invalid_state", "closing is not in closed state", middleware.GetRequestID(r.Context()))
		default:
			api.Fail(w, http.StatusInternalServerError, "closing_reopen_failed", "failed to reopen payroll", middleware.GetRequestID(r.Context()))
		}
		return
	}
	api.Success(w, map[string]string{"status": payroll.ClosingStatusDraft}, middleware.GetRequestID(r.Context()))
}
