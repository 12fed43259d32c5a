package suppliers

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) ListSuppliers(ctx context.Context, tenantID string) ([]Supplier, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, COALESCE(document, ''), COALESCE(contact, ''), created_at
    FROM suppliers
    WHERE tenant_id = $1
    ORDER BY name
  `, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []Supplier
	for rows.Next() {
		var supplier Supplier
		if err := rows.Scan(&supplier.ID, &supplier.Name, &supplier.Document, &supplier.Contact, &supplier.CreatedAt); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, supplier)
	}
	return suppliers, nil
}

func (s *Store) CreateSupplier(ctx context.Context, tenantID string, supplier Supplier) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO suppliers (tenant_id, name, document, contact)
    VALUES ($1,$2,$3,$4)
    RETURNING id
  `, tenantID, supplier.Name, supplier.Document, supplier.Contact).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) ListCosts(ctx context.Context, tenantID, eventID, status string) ([]SupplierCost, error) {
	query := `
    SELECT c.id, c.supplier_id, COALESCE(sp.name, ''), COALESCE(c.event_id::text, ''),
           COALESCE(c.description, ''), c.total_amount, c.paid_amount,
           c.payment_status, c.payment_date, c.created_at
    FROM supplier_costs c
    LEFT JOIN suppliers sp ON c.supplier_id = sp.id
    WHERE c.tenant_id = $1
  `
	args := []any{tenantID}
	if eventID != "" {
		args = append(args, eventID)
		query += " AND c.event_id = $2"
	}
	query += " ORDER BY c.created_at DESC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var costs []SupplierCost
	for rows.Next() {
		var cost SupplierCost
		if err := rows.Scan(&cost.ID, &cost.SupplierID, &cost.SupplierName, &cost.EventID, &cost.Description, &cost.TotalAmount, &cost.PaidAmount, &cost.PaymentStatus, &cost.PaymentDate, &cost.CreatedAt); err != nil {
			return nil, err
		}
		costs = append(costs, cost)
	}
	return FilterCostsByStatus(costs, status), nil
}

func (s *Store) CreateCost(ctx context.Context, tenantID string, cost SupplierCost) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO supplier_costs (tenant_id, supplier_id, event_id, description, total_amount, paid_amount, payment_status, payment_date)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    RETURNING id
  `, tenantID, cost.SupplierID, nullIfEmpty(cost.EventID), cost.Description, cost.TotalAmount, cost.PaidAmount, cost.PaymentStatus, cost.PaymentDate).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) UpdateCostPayment(ctx context.Context, tenantID, costID string, paidAmount float64, status string, paymentDate any) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE supplier_costs
    SET paid_amount = $1, payment_status = $2, payment_date = $3
    WHERE tenant_id = $4 AND id = $5
  `, paidAmount, status, paymentDate, tenantID, costID)
	return err
}

func (s *Store) EventRefs(ctx context.Context, tenantID string) ([]EventRef, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD')
    FROM events
    WHERE tenant_id = $1
  `, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []EventRef
	for rows.Next() {
		var event EventRef
		if err := rows.Scan(&event.ID, &event.Name, &event.StartDate, &event.EndDate); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
