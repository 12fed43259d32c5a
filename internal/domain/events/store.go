package events

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

func (s *Store) ListEvents(ctx context.Context, tenantID string, limit, offset int) ([]Event, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'),
           COALESCE(location, ''), status, created_at
    FROM events
    WHERE tenant_id = $1
    ORDER BY start_date DESC
    LIMIT $2 OFFSET $3
  `, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var event Event
		if err := rows.Scan(&event.ID, &event.Name, &event.StartDate, &event.EndDate, &event.Location, &event.Status, &event.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, event)
	}
	return out, nil
}

func (s *Store) GetEvent(ctx context.Context, tenantID, eventID string) (Event, error) {
	var event Event
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'),
           COALESCE(location, ''), status, created_at
    FROM events
    WHERE tenant_id = $1 AND id = $2
  `, tenantID, eventID).Scan(&event.ID, &event.Name, &event.StartDate, &event.EndDate, &event.Location, &event.Status, &event.CreatedAt)
	return event, err
}

func (s *Store) CreateEvent(ctx context.Context, tenantID string, event Event) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO events (tenant_id, name, start_date, end_date, location, status)
    VALUES ($1,$2,$3,$4,$5,$6)
    RETURNING id
  `, tenantID, event.Name, event.StartDate, event.EndDate, event.Location, event.Status).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) UpdateEventStatus(ctx context.Context, tenantID, eventID, status string) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE events SET status = $1 WHERE tenant_id = $2 AND id = $3
  `, status, tenantID, eventID)
	return err
}

func (s *Store) ListAllocations(ctx context.Context, tenantID, eventID string) ([]Allocation, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, event_id, personnel_id, COALESCE(function_name, ''), COALESCE(division_id::text, ''), work_days, created_at
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
		if err := rows.Scan(&alloc.ID, &alloc.EventID, &alloc.PersonnelID, &alloc.FunctionName, &alloc.DivisionID, &alloc.WorkDays, &alloc.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, alloc)
	}
	return out, nil
}

func (s *Store) CreateAllocation(ctx context.Context, tenantID string, alloc Allocation) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO event_allocations (tenant_id, event_id, personnel_id, function_name, division_id, work_days)
    VALUES ($1,$2,$3,$4,$5,$6)
    RETURNING id
  `, tenantID, alloc.EventID, alloc.PersonnelID, alloc.FunctionName, nullIfEmpty(alloc.DivisionID), alloc.WorkDays).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) UpdateAllocationWorkDays(ctx context.Context, tenantID, allocationID string, workDays []string) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE event_allocations SET work_days = $1 WHERE tenant_id = $2 AND id = $3
  `, workDays, tenantID, allocationID)
	return err
}

func (s *Store) DeleteAllocation(ctx context.Context, tenantID, allocationID string) error {
	_, err := s.DB.Exec(ctx, "DELETE FROM event_allocations WHERE tenant_id = $1 AND id = $2", tenantID, allocationID)
	return err
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
