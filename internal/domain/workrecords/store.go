package workrecords

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

func (s *Store) ListByEvent(ctx context.Context, tenantID, eventID string) ([]WorkRecord, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, event_id, to_char(work_date, 'YYYY-MM-DD'),
           hours_worked, overtime_hours, COALESCE(total_pay, 0), COALESCE(notes, ''), created_at
    FROM work_records
    WHERE tenant_id = $1 AND event_id = $2
    ORDER BY work_date
  `, tenantID, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collect(rows)
}

func (s *Store) ListByEmployee(ctx context.Context, tenantID, employeeID string, limit, offset int) ([]WorkRecord, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, event_id, to_char(work_date, 'YYYY-MM-DD'),
           hours_worked, overtime_hours, COALESCE(total_pay, 0), COALESCE(notes, ''), created_at
    FROM work_records
    WHERE tenant_id = $1 AND employee_id = $2
    ORDER BY work_date DESC
    LIMIT $3 OFFSET $4
  `, tenantID, employeeID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collect(rows)
}

func (s *Store) Create(ctx context.Context, tenantID string, record WorkRecord) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO work_records (tenant_id, employee_id, event_id, work_date, hours_worked, overtime_hours, total_pay, notes)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    RETURNING id
  `, tenantID, record.EmployeeID, record.EventID, record.WorkDate,
		record.HoursWorked, record.OvertimeHours, record.TotalPay, record.Notes).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Delete(ctx context.Context, tenantID, recordID string) error {
	_, err := s.DB.Exec(ctx, "DELETE FROM work_records WHERE tenant_id = $1 AND id = $2", tenantID, recordID)
	return err
}

type scannable interface {
	Next() bool
	Scan(...any) error
}

func collect(rows scannable) ([]WorkRecord, error) {
	var out []WorkRecord
	for rows.Next() {
		var record WorkRecord
		if err := rows.Scan(&record.ID, &record.EmployeeID, &record.EventID, &record.WorkDate,
			&record.HoursWorked, &record.OvertimeHours, &record.TotalPay, &record.Notes, &record.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, nil
}
