package workrecords

import (
	"context"
	"errors"
	"math"

	"plannersystem/internal/domain/payroll"
)

var ErrInvalidWorkDate = errors.New("work date must be a valid YYYY-MM-DD date")

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) ListByEvent(ctx context.Context, tenantID, eventID string) ([]WorkRecord, error) {
	return s.store.ListByEvent(ctx, tenantID, eventID)
}

func (s *Service) ListByEmployee(ctx context.Context, tenantID, employeeID string, limit, offset int) ([]WorkRecord, error) {
	return s.store.ListByEmployee(ctx, tenantID, employeeID, limit, offset)
}

// Create clamps hour fields at the write boundary so negative or NaN input
// never reaches storage or the aggregation downstream.
func (s *Service) Create(ctx context.Context, tenantID string, record WorkRecord) (string, error) {
	if _, ok := payroll.ParseWorkDate(record.WorkDate); !ok {
		return "", ErrInvalidWorkDate
	}
	record.HoursWorked = clampHours(record.HoursWorked)
	record.OvertimeHours = clampHours(record.OvertimeHours)
	if record.TotalPay < 0 || math.IsNaN(record.TotalPay) {
		record.TotalPay = 0
	}
	return s.store.Create(ctx, tenantID, record)
}

func (s *Service) Delete(ctx context.Context, tenantID, recordID string) error {
	return s.store.Delete(ctx, tenantID, recordID)
}

func clampHours(hours float64) float64 {
	if math.IsNaN(hours) || hours < 0 {
		return 0
	}
	return hours
}
