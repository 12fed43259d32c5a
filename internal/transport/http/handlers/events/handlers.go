package eventshandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"plannersystem/internal/domain/auth"
	"plannersystem/internal/domain/events"
	"plannersystem/internal/transport/http/api"
	"plannersystem/internal/transport/http/middleware"
	"plannersystem/internal/transport/http/shared"
)

type Handler struct {
	Events *events.Service
	Perms  middleware.PermissionStore
}

func NewHandler(service *events.Service, perms middleware.PermissionStore) *Handler {
	return &Handler{Events: service, Perms: perms}
}

type eventPayload struct {
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Location  string `json:"location"`
	Status    string `json:"status"`
}

type allocationPayload struct {
	PersonnelID  string   `json:"personnelId"`
	FunctionName string   `json:"functionName"`
	DivisionID   string   `json:"divisionId"`
	WorkDays     []string `json:"workDays"`
}

type workDaysPayload struct {
	WorkDays []string `json:"workDays"`
}

type statusPayload struct {
	Status string `json:"status"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/events", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermEventsRead, h.Perms)).Get("/", h.handleList)
		r.With(middleware.RequirePermission(auth.PermEventsWrite, h.Perms)).Post("/", h.handleCreate)
		r.With(middleware.RequirePermission(auth.PermEventsRead, h.Perms)).Get("/{eventID}", h.handleGet)
		r.With(middleware.RequirePermission(auth.PermEventsWrite, h.Perms)).Patch("/{eventID}/status", h.handleUpdateStatus)
		r.With(middleware.RequirePermission(auth.PermEventsRead, h.Perms)).Get("/{eventID}/allocations", h.handleListAllocations)
		r.With(middleware.RequirePermission(auth.PermEventsWrite, h.Perms)).Post("/{eventID}/allocations", h.handleCreateAllocation)
		r.With(middleware.RequirePermission(auth.PermEventsWrite, h.Perms)).Put("/{eventID}/allocations/{allocationID}/workdays", h.handleUpdateWorkDays)
		r.With(middleware.RequirePermission(auth.PermEventsWrite, h.Perms)).Delete("/{eventID}/allocations/{allocationID}", h.handleDeleteAllocation)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	page := shared.ParsePagination(r, 50, 200)
	list, err := h.Events.ListEvents(r.Context(), user.TenantID, page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "events_list_failed", "failed to list events", middleware.GetRequestID(r.Context()))
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

	var payload eventPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	start, startOK := v.Date("startDate", payload.StartDate)
	end, endOK := v.Date("endDate", payload.EndDate)
	if startOK && endOK {
		v.DateOrder("startDate", start, "endDate", end)
	}
	v.Enum("status", payload.Status, []string{events.StatusPlanned, events.StatusActive, events.StatusFinished, events.StatusCancelled}, "must be one of planned, active, finished, cancelled")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	status := strings.ToLower(strings.TrimSpace(payload.Status))
	if status == "" {
		status = events.StatusPlanned
	}

	id, err := h.Events.CreateEvent(r.Context(), user.TenantID, events.Event{
		Name:      strings.TrimSpace(payload.Name),
		StartDate: payload.StartDate,
		EndDate:   payload.EndDate,
		Location:  strings.TrimSpace(payload.Location),
		Status:    status,
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "event_create_failed", "failed to create event", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	event, err := h.Events.GetEvent(r.Context(), user.TenantID, chi.URLParam(r, "eventID"))
	if err != nil {
		if errors.Is(err, events.ErrEventNotFound) {
			api.Fail(w, http.StatusNotFound, "event_not_found", "event not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "event_get_failed", "failed to load event", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, event, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload statusPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("status", payload.Status, "status is required")
	v.Enum("status", payload.Status, []string{events.StatusPlanned, events.StatusActive, events.StatusFinished, events.StatusCancelled}, "must be one of planned, active, finished, cancelled")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	if err := h.Events.UpdateEventStatus(r.Context(), user.TenantID, chi.URLParam(r, "eventID"), strings.ToLower(strings.TrimSpace(payload.Status))); err != nil {
		if errors.Is(err, events.ErrEventNotFound) {
			api.Fail(w, http.StatusNotFound, "event_not_found", "event not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "event_update_failed", "failed to update event", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "updated"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListAllocations(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	list, err := h.Events.ListAllocations(r.Context(), user.TenantID, chi.URLParam(r, "eventID"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "allocations_list_failed", "failed to list allocations", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, list, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateAllocation(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload allocationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("personnelId", payload.PersonnelID, "personnelId is required")
	v.Dates("workDays", payload.WorkDays)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	id, err := h.Events.CreateAllocation(r.Context(), user.TenantID, events.Allocation{
		EventID:      chi.URLParam(r, "eventID"),
		PersonnelID:  payload.PersonnelID,
		FunctionName: strings.TrimSpace(payload.FunctionName),
		DivisionID:   strings.TrimSpace(payload.DivisionID),
		WorkDays:     payload.WorkDays,
	})
	if err != nil {
		switch {
		case errors.Is(err, events.ErrEventNotFound):
			api.Fail(w, http.StatusNotFound, "event_not_found", "event not found", middleware.GetRequestID(r.Context()))
		case errors.Is(err, events.ErrWorkDayOutOfPeriod):
			api.Fail(w, http.StatusBadRequest, "workday_out_of_period", "work days must fall within the event period", middleware.GetRequestID(r.Context()))
		default:
			api.Fail(w, http.StatusInternalServerError, "allocation_create_failed", "failed to create allocation", middleware.GetRequestID(r.Context()))
		}
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateWorkDays(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload workDaysPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Dates("workDays", payload.WorkDays)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	err := h.Events.UpdateAllocationWorkDays(r.Context(), user.TenantID, chi.URLParam(r, "allocationID"), chi.URLParam(r, "eventID"), payload.WorkDays)
	if err != nil {
		switch {
		case errors.Is(err, events.ErrEventNotFound):
			api.Fail(w, http.StatusNotFound, "event_not_found", "event not found", middleware.GetRequestID(r.Context()))
		case errors.Is(err, events.ErrWorkDayOutOfPeriod):
			api.Fail(w, http.StatusBadRequest, "workday_out_of_period", "work days must fall within the event period", middleware.GetRequestID(r.Context()))
		default:
			api.Fail(w, http.StatusInternalServerError, "allocation_update_failed", "failed to update allocation", middleware.GetRequestID(r.Context()))
		}
		return
	}
	api.Success(w, map[string]string{"status": "updated"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteAllocation(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	if err := h.Events.DeleteAllocation(r.Context(), user.TenantID, chi.URLParam(r, "allocationID")); err != nil {
		api.Fail(w, http.StatusInternalServerError, "allocation_delete_failed", "failed to delete allocation", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, middleware.GetRequestID(r.Context()))
}
