package events

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"plannersystem/internal/domain/payroll"
)

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrWorkDayOutOfPeriod = errors.New("allocation work day outside event period")
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) ListEvents(ctx context.Context, tenantID string, limit, offset int) ([]Event, error) {
	return s.store.ListEvents(ctx, tenantID, limit, offset)
}

func (s *Service) GetEvent(ctx context.Context, tenantID, eventID string) (Event, error) {
	event, err := s.store.GetEvent(ctx, tenantID, eventID)
	if errors.Is(err, pgx.ErrNoRows) {
		return Event{}, ErrEventNotFound
	}
	return event, err
}

func (s *Service) CreateEvent(ctx context.Context, tenantID string, event Event) (string, error) {
	if event.Status == "" {
		event.Status = StatusPlanned
	}
	return s.store.CreateEvent(ctx, tenantID, event)
}

func (s *Service) UpdateEventStatus(ctx context.Context, tenantID, eventID, status string) error {
	return s.store.UpdateEventStatus(ctx, tenantID, eventID, status)
}

func (s *Service) ListAllocations(ctx context.Context, tenantID, eventID string) ([]Allocation, error) {
	return s.store.ListAllocations(ctx, tenantID, eventID)
}

// CreateAllocation rejects work days that fall outside the event period.
// This is the write-time guard; the payroll aggregation trusts stored
// workDays as already valid.
func (s *Service) CreateAllocation(ctx context.Context, tenantID string, alloc Allocation) (string, error) {
	event, err := s.store.GetEvent(ctx, tenantID, alloc.EventID)
	if err != nil {
		return "", ErrEventNotFound
	}
	if err := validateWorkDays(alloc.WorkDays, event); err != nil {
		return "", err
	}
	return s.store.CreateAllocation(ctx, tenantID, alloc)
}

func (s *Service) UpdateAllocationWorkDays(ctx context.Context, tenantID, allocationID, eventID string, workDays []string) error {
	event, err := s.store.GetEvent(ctx, tenantID, eventID)
	if err != nil {
		return ErrEventNotFound
	}
	if err := validateWorkDays(workDays, event); err != nil {
		return err
	}
	return s.store.UpdateAllocationWorkDays(ctx, tenantID, allocationID, workDays)
}

func (s *Service) DeleteAllocation(ctx context.Context, tenantID, allocationID string) error {
	return s.store.DeleteAllocation(ctx, tenantID, allocationID)
}

func validateWorkDays(workDays []string, event Event) error {
	period := payroll.EventPeriod{StartDate: event.StartDate, EndDate: event.EndDate}
	valid := payroll.ValidWorkDatesForAllocation(workDays, period)
	if len(valid) != len(workDays) {
		return ErrWorkDayOutOfPeriod
	}
	return nil
}
