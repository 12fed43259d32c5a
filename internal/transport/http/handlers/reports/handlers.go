package reportshandler

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"plannersystem/internal/domain/auth"
	"plannersystem/internal/domain/events"
	"plannersystem/internal/domain/payments"
	"plannersystem/internal/domain/suppliers"
	"plannersystem/internal/transport/http/api"
	"plannersystem/internal/transport/http/middleware"
)

type Handler struct {
	DB    *pgxpool.Pool
	Perms middleware.PermissionStore
}

func NewHandler(db *pgxpool.Pool, perms middleware.PermissionStore) *Handler {
	return &Handler{DB: db, Perms: perms}
}

type dashboard struct {
	ActiveEvents         int     `json:"activeEvents"`
	PlannedEvents        int     `json:"plannedEvents"`
	ActivePersonnel      int     `json:"activePersonnel"`
	PendingPayments      float64 `json:"pendingPayments"`
	PendingSupplierCosts float64 `json:"pendingSupplierCosts"`
	LoggedHoursThisMonth float64 `json:"loggedHoursThisMonth"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermReportsRead, h.Perms)).Get("/dashboard", h.handleDashboard)
	})
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var out dashboard

	if err := h.DB.QueryRow(r.Context(), "SELECT COUNT(1) FROM events WHERE tenant_id = $1 AND status = $2", user.TenantID, events.StatusActive).Scan(&out.ActiveEvents); err != nil {
		log.Printf("active events count failed: %v", err)
	}

	if err := h.DB.QueryRow(r.Context(), "SELECT COUNT(1) FROM events WHERE tenant_id = $1 AND status = $2", user.TenantID, events.StatusPlanned).Scan(&out.PlannedEvents); err != nil {
		log.Printf("planned events count failed: %v", err)
	}

	if err := h.DB.QueryRow(r.Context(), "SELECT COUNT(1) FROM personnel WHERE tenant_id = $1 AND active = true", user.TenantID).Scan(&out.ActivePersonnel); err != nil {
		log.Printf("active personnel count failed: %v", err)
	}

	if err := h.DB.QueryRow(r.Context(), "SELECT COALESCE(SUM(amount),0) FROM personnel_payments WHERE tenant_id = $1 AND status = $2", user.TenantID, payments.StatusPending).Scan(&out.PendingPayments); err != nil {
		log.Printf("pending payments aggregate failed: %v", err)
	}

	if err := h.DB.QueryRow(r.Context(), "SELECT COALESCE(SUM(total_amount - paid_amount),0) FROM supplier_costs WHERE tenant_id = $1 AND payment_status = $2", user.TenantID, suppliers.StatusPending).Scan(&out.PendingSupplierCosts); err != nil {
		log.Printf("pending supplier costs aggregate failed: %v", err)
	}

	if err := h.DB.QueryRow(r.Context(), `
    SELECT COALESCE(SUM(hours_worked + overtime_hours),0)
    FROM work_records
    WHERE tenant_id = $1 AND date_trunc('month', work_date) = date_trunc('month', CURRENT_DATE)
  `, user.TenantID).Scan(&out.LoggedHoursThisMonth); err != nil {
		log.Printf("logged hours aggregate failed: %v", err)
	}

	api.Success(w, out, middleware.GetRequestID(r.Context()))
}
