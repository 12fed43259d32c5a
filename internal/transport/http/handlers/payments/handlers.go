package paymentshandler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"plannersystem/internal/domain/auth"
	"plannersystem/internal/domain/payments"
	"plannersystem/internal/transport/http/api"
	"plannersystem/internal/transport/http/middleware"
	"plannersystem/internal/transport/http/shared"
)

type Handler struct {
	Payments *payments.Store
	Perms    middleware.PermissionStore
}

func NewHandler(store *payments.Store, perms middleware.PermissionStore) *Handler {
	return &Handler{Payments: store, Perms: perms}
}

type paymentPayload struct {
	PersonnelID string  `json:"personnelId"`
	EventID     string  `json:"eventId"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	Notes       string  `json:"notes"`
}

type paymentStatusPayload struct {
	Status string `json:"status"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payments", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermPaymentsRead, h.Perms)).Get("/event/{eventID}", h.handleListByEvent)
		r.With(middleware.RequirePermission(auth.PermPaymentsWrite, h.Perms)).Post("/", h.handleCreate)
		r.With(middleware.RequirePermission(auth.PermPaymentsWrite, h.Perms)).Patch("/{paymentID}/status", h.handleUpdateStatus)
	})
}

func (h *Handler) handleListByEvent(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	list, err := h.Payments.ListByEvent(r.Context(), user.TenantID, chi.URLParam(r, "eventID"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payments_list_failed", "failed to list payments", middleware.GetRequestID(r.Context()))
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

	var payload paymentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("personnelId", payload.PersonnelID, "personnelId is required")
	v.Required("eventId", payload.EventID, "eventId is required")
	v.NonNegative("amount", payload.Amount)
	v.Enum("status", payload.Status, []string{payments.StatusPaid, payments.StatusPending, payments.StatusCancelled}, "must be one of paid, pending, cancelled")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	status := strings.ToLower(strings.TrimSpace(payload.Status))
	if status == "" {
		status = payments.StatusPending
	}
	var paidAt *time.Time
	if status == payments.StatusPaid {
		now := time.Now()
		paidAt = &now
	}

	id, err := h.Payments.Create(r.Context(), user.TenantID, payments.PersonnelPayment{
		PersonnelID: payload.PersonnelID,
		EventID:     payload.EventID,
		Amount:      payload.Amount,
		Status:      status,
		PaidAt:      paidAt,
		Notes:       strings.TrimSpace(payload.Notes),
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payment_create_failed", "failed to create payment", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload paymentStatusPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("status", payload.Status, "status is required")
	v.Enum("status", payload.Status, []string{payments.StatusPaid, payments.StatusPending, payments.StatusCancelled}, "must be one of paid, pending, cancelled")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	status := strings.ToLower(strings.TrimSpace(payload.Status))
	var paidAt any
	if status == payments.StatusPaid {
		paidAt = time.Now()
	}

	if err := h.Payments.UpdateStatus(r.Context(), user.TenantID, chi.URLParam(r, "paymentID"), status, paidAt); err != nil {
		api.Fail(w, http.StatusInternalServerError, "payment_update_failed", "failed to update payment", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "updated"}, middleware.GetRequestID(r.Context()))
}
