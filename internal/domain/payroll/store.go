package payroll

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) EventPeriod(ctx context.Context, tenantID, eventID string) (EventPeriod, error) {
	var period EventPeriod
	err := s.DB.QueryRow(ctx, `
    SELECT to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD')
    FROM events
    WHERE tenant_id = $1 AND id = $2
  `, tenantID, eventID).Scan(&period.StartDate, &period.EndDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return period, ErrEventNotFound
	}
	return period, err
}

func (s *Store) ListAllocations(ctx context.Context, tenantID, eventID string) ([]Allocation, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, personnel_id, event_id, work_days, COALESCE(function_name, ''), COALESCE(division_id::text, '')
    FROM event_allocations
    WHERE tenant_id = $1 AND event_id = $2
    ORDER BY created_at
  `, tenantID, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Allocation
	for rows.Next() {
		var alloc Allocation
		if err := rows.Scan(&alloc.ID, &alloc.PersonnelID, &alloc.EventID, &alloc.WorkDays, &alloc.FunctionName, &alloc.DivisionID); err != nil {
			return nil, err
		}
		out = append(out, alloc)
	}
	return out, nil
}

func (s *Store) ListWorkRecords(ctx context.Context, tenantID, eventID string) ([]WorkRecord, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, event_id, to_char(work_date, 'YYYY-MM-DD'),
           hours_worked, overtime_hours, COALESCE(total_pay, 0)
    FROM work_records
    WHERE tenant_id = $1 AND event_id = $2
  `, tenantID, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []WorkRecord
	for rows.Next() {
		var record WorkRecord
		if err := rows.Scan(&record.ID, &record.EmployeeID, &record.EventID, &record.WorkDate,
			&record.HoursWorked, &record.OvertimeHours, &record.TotalPay); err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, nil
}

// PaymentsByPersonnel loads the event's payment-ledger rows keyed by person.
// Cancelled payments are kept out of the reconciliation input entirely.
func (s *Store) PaymentsByPersonnel(ctx context.Context, tenantID, eventID string) (map[string][]PaymentRecord, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, personnel_id, status, amount
    FROM personnel_payments
    WHERE tenant_id = $1 AND event_id = $2 AND status <> $3
  `, tenantID, eventID, PaymentStatusCancelled)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string][]PaymentRecord{}
	for rows.Next() {
		var payment PaymentRecord
		var personnelID string
		if err := rows.Scan(&payment.ID, &personnelID, &payment.Status, &payment.Amount); err != nil {
			return nil, err
		}
		out[personnelID] = append(out[personnelID], payment)
	}
	return out, nil
}

func (s *Store) ProfilesByIDs(ctx context.Context, tenantID string, ids []string) (map[string]PersonProfile, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, COALESCE(team_id::text, ''), person_type,
           COALESCE(monthly_salary, 0), COALESCE(event_cache, 0), COALESCE(overtime_rate, 0),
           overtime_threshold_hours, convert_overtime_to_daily
    FROM personnel
    WHERE tenant_id = $1 AND id = ANY($2)
  `, tenantID, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]PersonProfile, len(ids))
	for rows.Next() {
		var profile PersonProfile
		if err := rows.Scan(&profile.PersonnelID, &profile.TeamID, &profile.Type,
			&profile.MonthlySalary, &profile.EventCache, &profile.OvertimeRate,
			&profile.ThresholdHours, &profile.ConvertToDaily); err != nil {
			return nil, err
		}
		out[profile.PersonnelID] = profile
	}
	return out, nil
}

func (s *Store) TeamPolicies(ctx context.Context, tenantID string, teamIDs []string) (map[string]PolicySource, error) {
	if len(teamIDs) == 0 {
		return map[string]PolicySource{}, nil
	}
	rows, err := s.DB.Query(ctx, `
    SELECT id, default_overtime_threshold_hours, default_convert_overtime_to_daily
    FROM teams
    WHERE tenant_id = $1 AND id = ANY($2)
  `, tenantID, teamIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]PolicySource, len(teamIDs))
	for rows.Next() {
		var teamID string
		var source PolicySource
		if err := rows.Scan(&teamID, &source.ThresholdHours, &source.ConvertToDaily); err != nil {
			return nil, err
		}
		out[teamID] = source
	}
	return out, nil
}

func (s *Store) GetClosing(ctx context.Context, tenantID, closingID string) (Closing, error) {
	var closing Closing
	err := s.DB.QueryRow(ctx, `
    SELECT id, event_id, status, total_amount, paid_amount, pending_amount, closed_at, created_at
    FROM payroll_closings
    WHERE tenant_id = $1 AND id = $2
  `, tenantID, closingID).Scan(&closing.ID, &closing.EventID, &closing.Status,
		&closing.Total, &closing.Paid, &closing.Pending, &closing.ClosedAt, &closing.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return closing, ErrClosingNotFound
	}
	return closing, err
}

func (s *Store) ListClosings(ctx context.Context, tenantID string, limit, offset int) ([]Closing, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, event_id, status, total_amount, paid_amount, pending_amount, closed_at, created_at
    FROM payroll_closings
    WHERE tenant_id = $1
    ORDER BY created_at DESC
    LIMIT $2 OFFSET $3
  `, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Closing
	for rows.Next() {
		var closing Closing
		if err := rows.Scan(&closing.ID, &closing.EventID, &closing.Status,
			&closing.Total, &closing.Paid, &closing.Pending, &closing.ClosedAt, &closing.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, closing)
	}
	return out, nil
}

func (s *Store) CreateClosing(ctx context.Context, tenantID string, closing Closing) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO payroll_closings (tenant_id, event_id, status, total_amount, paid_amount, pending_amount)
    VALUES ($1,$2,$3,$4,$5,$6)
    RETURNING id
  `, tenantID, closing.EventID, closing.Status, closing.Total, closing.Paid, closing.Pending).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) MarkClosed(ctx context.Context, tenantID, closingID string) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE payroll_closings SET status = $1, closed_at = now() WHERE tenant_id = $2 AND id = $3
  `, ClosingStatusClosed, tenantID, closingID)
	return err
}

func (s *Store) MarkReopened(ctx context.Context, tenantID, closingID string) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE payroll_closings SET status = $1, closed_at = NULL WHERE tenant_id = $2 AND id = $3
  `, ClosingStatusDraft, tenantID, closingID)
	return err
}
