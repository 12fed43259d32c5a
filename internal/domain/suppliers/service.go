package suppliers

import "context"

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) ListSuppliers(ctx context.Context, tenantID string) ([]Supplier, error) {
	return s.store.ListSuppliers(ctx, tenantID)
}

func (s *Service) CreateSupplier(ctx context.Context, tenantID string, supplier Supplier) (string, error) {
	return s.store.CreateSupplier(ctx, tenantID, supplier)
}

func (s *Service) ListCosts(ctx context.Context, tenantID, eventID, status string) ([]SupplierCost, error) {
	costs, err := s.store.ListCosts(ctx, tenantID, eventID, status)
	if err != nil {
		return nil, err
	}
	return SortCostsByLatest(costs), nil
}

func (s *Service) CreateCost(ctx context.Context, tenantID string, cost SupplierCost) (string, error) {
	if cost.PaymentStatus == "" {
		cost.PaymentStatus = StatusPending
	}
	return s.store.CreateCost(ctx, tenantID, cost)
}

func (s *Service) UpdateCostPayment(ctx context.Context, tenantID, costID string, paidAmount float64, status string, paymentDate any) error {
	return s.store.UpdateCostPayment(ctx, tenantID, costID, paidAmount, status, paymentDate)
}

// CostsGroupedByEvent returns the per-event breakdown used by the cost
// dashboard.
func (s *Service) CostsGroupedByEvent(ctx context.Context, tenantID, status string) ([]EventGroup, error) {
	costs, err := s.store.ListCosts(ctx, tenantID, "", status)
	if err != nil {
		return nil, err
	}
	events, err := s.store.EventRefs(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return GroupCostsByEvent(SortCostsByLatest(costs), events), nil
}
