package payroll

import "context"

type Service struct {
	store *Store
	opts  CalcOptions
}

func NewService(store *Store, opts CalcOptions) *Service {
	return &Service{store: store, opts: opts}
}

// RunEventPayroll computes the payment breakdown for every allocation of an
// event: matching work records are filtered per allocation, policy is
// resolved per person against team defaults, and the payment ledger is
// reconciled into paid and pending amounts. The run is read-only; nothing
// is persisted.
func (s *Service) RunEventPayroll(ctx context.Context, tenantID, eventID string) (EventPayrollSummary, error) {
	summary := EventPayrollSummary{EventID: eventID}

	period, err := s.store.EventPeriod(ctx, tenantID, eventID)
	if err != nil {
		return summary, err
	}
	allocations, err := s.store.ListAllocations(ctx, tenantID, eventID)
	if err != nil {
		return summary, err
	}
	if len(allocations) == 0 {
		return summary, nil
	}
	records, err := s.store.ListWorkRecords(ctx, tenantID, eventID)
	if err != nil {
		return summary, err
	}
	ledger, err := s.store.PaymentsByPersonnel(ctx, tenantID, eventID)
	if err != nil {
		return summary, err
	}

	personIDs := make([]string, 0, len(allocations))
	for _, alloc := range allocations {
		personIDs = append(personIDs, alloc.PersonnelID)
	}
	profiles, err := s.store.ProfilesByIDs(ctx, tenantID, personIDs)
	if err != nil {
		return summary, err
	}

	teamIDs := make([]string, 0, len(profiles))
	seenTeams := map[string]bool{}
	for _, profile := range profiles {
		if profile.TeamID != "" && !seenTeams[profile.TeamID] {
			seenTeams[profile.TeamID] = true
			teamIDs = append(teamIDs, profile.TeamID)
		}
	}
	teamPolicies, err := s.store.TeamPolicies(ctx, tenantID, teamIDs)
	if err != nil {
		return summary, err
	}

	summary.LineItems = make([]PayrollLineItem, 0, len(allocations))
	for _, alloc := range allocations {
		profile := profiles[alloc.PersonnelID]
		policy := ResolvePolicy(profile.PolicySource(), teamPolicies[profile.TeamID])
		if s.opts.RemainderPolicy != "" {
			policy.RemainderPolicy = s.opts.RemainderPolicy
		}

		item := ComputeLineItem(alloc, records, period, profile.Rates(), policy, s.opts)
		item = ReconcilePayments(item, ledger[alloc.PersonnelID])

		summary.LineItems = append(summary.LineItems, item)
		summary.TotalPayment = RoundCurrency(summary.TotalPayment + item.TotalPayment)
		summary.PaidAmount = RoundCurrency(summary.PaidAmount + item.PaidAmount)
		summary.PendingAmount = RoundCurrency(summary.PendingAmount + item.PendingAmount)
	}
	return summary, nil
}

// CreateClosing snapshots the current payroll run for an event as a draft
// closing.
func (s *Service) CreateClosing(ctx context.Context, tenantID, eventID string) (string, error) {
	summary, err := s.RunEventPayroll(ctx, tenantID, eventID)
	if err != nil {
		return "", err
	}
	if len(summary.LineItems) == 0 {
		return "", ErrClosingNoLineItems
	}
	return s.store.CreateClosing(ctx, tenantID, Closing{
		EventID: eventID,
		Status:  ClosingStatusDraft,
		Total:   summary.TotalPayment,
		Paid:    summary.PaidAmount,
		Pending: summary.PendingAmount,
	})
}

func (s *Service) ListClosings(ctx context.Context, tenantID string, limit, offset int) ([]Closing, error) {
	return s.store.ListClosings(ctx, tenantID, limit, offset)
}

func (s *Service) GetClosing(ctx context.Context, tenantID, closingID string) (Closing, error) {
	return s.store.GetClosing(ctx, tenantID, closingID)
}

func (s *Service) Close(ctx context.Context, tenantID, closingID string) error {
	closing, err := s.store.GetClosing(ctx, tenantID, closingID)
	if err != nil {
		return err
	}
	if closing.Status == ClosingStatusClosed {
		return ErrCloseInvalidState
	}
	return s.store.MarkClosed(ctx, tenantID, closingID)
}

func (s *Service) Reopen(ctx context.Context, tenantID, closingID string) error {
	closing, err := s.store.GetClosing(ctx, tenantID, closingID)
	if err != nil {
		return err
	}
	if closing.Status != ClosingStatusClosed {
		return ErrReopenInvalidState
	}
	return s.store.MarkReopened(ctx, tenantID, closingID)
}
