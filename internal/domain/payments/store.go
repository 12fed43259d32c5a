package payments

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

func (s *Store) ListByEvent(ctx context.Context, tenantID, eventID string) ([]PersonnelPayment, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, personnel_id, event_id, amount, status, paid_at, COALESCE(notes, ''), created_at
    FROM personnel_payments
    WHERE tenant_id = $1 AND event_id = $2
    ORDER BY created_at DESC
  `, tenantID, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PersonnelPayment
	for rows.Next() {
		var payment PersonnelPayment
		if err := rows.Scan(&payment.ID, &payment.PersonnelID, &payment.EventID, &payment.Amount,
			&payment.Status, &payment.PaidAt, &payment.Notes, &payment.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, payment)
	}
	return out, nil
}

func (s *Store) Create(ctx context.Context, tenantID string, payment PersonnelPayment) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO personnel_payments (tenant_id, personnel_id, event_id, amount, status, paid_at, notes)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    RETURNING id
  `, tenantID, payment.PersonnelID, payment.EventID, payment.Amount, payment.Status, payment.PaidAt, payment.Notes).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) UpdateStatus(ctx context.Context, tenantID, paymentID, status string, paidAt any) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE personnel_payments SET status = $1, paid_at = $2 WHERE tenant_id = $3 AND id = $4
  `, status, paidAt, tenantID, paymentID)
	return err
}
