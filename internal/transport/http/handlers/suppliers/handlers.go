package suppliershandler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"plannersystem/internal/domain/auth"
	"plannersystem/internal/domain/suppliers"
	"plannersystem/internal/transport/http/api"
	"plannersystem/internal/transport/http/middleware"
	"plannersystem/internal/transport/http/shared"
)

type Handler struct {
	Suppliers *suppliers.Service
	Perms     middleware.PermissionStore
}

func NewHandler(service *suppliers.Service, perms middleware.PermissionStore) *Handler {
	return &Handler{Suppliers: service, Perms: perms}
}

type supplierPayload struct {
	Name     string `json:"name"`
	Document string `json:"document"`
	Contact  string `json:"contact"`
}

type costPayload struct {
	SupplierID  string  `json:"supplierId"`
	EventID     string  `json:"eventId"`
	Description string  `json:"description"`
	TotalAmount float64 `json:"totalAmount"`
}

type costPaymentPayload struct {
	PaidAmount  float64 `json:"paidAmount"`
	Status      string  `json:"status"`
	PaymentDate string  `json:"paymentDate"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/suppliers", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermSuppliersRead, h.Perms)).Get("/", h.handleListSuppliers)
		r.With(middleware.RequirePermission(auth.PermSuppliersWrite, h.Perms)).Post("/", h.handleCreateSupplier)
		r.With(middleware.RequirePermission(auth.PermSuppliersRead, h.Perms)).Get("/costs", h.handleListCosts)
		r.With(middleware.RequirePermission(auth.PermSuppliersWrite, h.Perms)).Post("/costs", h.handleCreateCost)
		r.With(middleware.RequirePermission(auth.PermSuppliersWrite, h.Perms)).Patch("/costs/{costID}/payment", h.handleUpdateCostPayment)
		r.With(middleware.RequirePermission(auth.PermSuppliersRead, h.Perms)).Get("/costs/by-event", h.handleCostsGroupedByEvent)
	})
}

func (h *Handler) handleListSuppliers(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	list, err := h.Suppliers.ListSuppliers(r.Context(), user.TenantID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "suppliers_list_failed", "failed to list suppliers", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, list, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateSupplier(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload supplierPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	id, err := h.Suppliers.CreateSupplier(r.Context(), user.TenantID, suppliers.Supplier{
		Name:     strings.TrimSpace(payload.Name),
		Document: strings.TrimSpace(payload.Document),
		Contact:  strings.TrimSpace(payload.Contact),
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "supplier_create_failed", "failed to create supplier", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListCosts(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	eventID := strings.TrimSpace(r.URL.Query().Get("eventId"))
	status := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("status")))
	list, err := h.Suppliers.ListCosts(r.Context(), user.TenantID, eventID, status)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "supplier_costs_failed", "failed to list supplier costs", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, list, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateCost(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload costPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("supplierId", payload.SupplierID, "supplierId is required")
	v.NonNegative("totalAmount", payload.TotalAmount)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	id, err := h.Suppliers.CreateCost(r.Context(), user.TenantID, suppliers.SupplierCost{
		SupplierID:  payload.SupplierID,
		EventID:     strings.TrimSpace(payload.EventID),
		Description: strings.TrimSpace(payload.Description),
		TotalAmount: payload.TotalAmount,
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "supplier_cost_create_failed", "failed to create supplier cost", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateCostPayment(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload costPaymentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.NonNegative("paidAmount", payload.PaidAmount)
	v.Required("status", payload.Status, "status is required")
	v.Enum("status", payload.Status, []string{suppliers.StatusPaid, suppliers.StatusPending}, "must be paid or pending")
	var paymentDate any
	if strings.TrimSpace(payload.PaymentDate) != "" {
		parsed, ok := v.Date("paymentDate", payload.PaymentDate)
		if ok {
			paymentDate = parsed
		}
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	status := strings.ToLower(strings.TrimSpace(payload.Status))
	if status == suppliers.StatusPaid && paymentDate == nil {
		paymentDate = time.Now()
	}

	if err := h.Suppliers.UpdateCostPayment(r.Context(), user.TenantID, chi.URLParam(r, "costID"), payload.PaidAmount, status, paymentDate); err != nil {
		api.Fail(w, http.StatusInternalServerError, "supplier_cost_update_failed", "failed to update supplier cost", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "updated"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCostsGroupedByEvent(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	status := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("status")))
	groups, err := h.Suppliers.CostsGroupedByEvent(r.Context(), user.TenantID, status)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "supplier_costs_failed", "failed to group supplier costs", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, groups, middleware.GetRequestID(r.Context()))
}
