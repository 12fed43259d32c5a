package suppliers

import (
	"math"
	"sort"
	"time"
)

const (
	StatusPaid    = "paid"
	StatusPending = "pending"

	placeholderEventName = "Evento sem nome"
)

// EventSupplierTotals folds a cost list into paid and pending totals. Paid
// items contribute their paid amount; everything else contributes what is
// still owed, never negative.
func EventSupplierTotals(costs []SupplierCost) EventTotals {
	var totals EventTotals
	for _, cost := range costs {
		if cost.PaymentStatus == StatusPaid {
			totals.PaidAmount += cost.PaidAmount
			totals.PaidCount++
			continue
		}
		totals.PendingAmount += math.Max(cost.TotalAmount-cost.PaidAmount, 0)
		totals.PendingCount++
	}
	return totals
}

// GroupCostsByEvent partitions a flat cost list by event, attaching the
// event's display data. A missing event lookup gets a placeholder name so
// orphaned costs still render.
func GroupCostsByEvent(costs []SupplierCost, events []EventRef) []EventGroup {
	byID := make(map[string]EventRef, len(events))
	for _, event := range events {
		byID[event.ID] = event
	}

	groups := map[string]*EventGroup{}
	var order []string
	for _, cost := range costs {
		group, ok := groups[cost.EventID]
		if !ok {
			group = &EventGroup{EventID: cost.EventID, EventName: placeholderEventName}
			if event, found := byID[cost.EventID]; found {
				group.EventName = event.Name
				group.StartDate = event.StartDate
				group.EndDate = event.EndDate
			}
			groups[cost.EventID] = group
			order = append(order, cost.EventID)
		}
		group.Costs = append(group.Costs, cost)
	}

	out := make([]EventGroup, 0, len(order))
	for _, id := range order {
		group := groups[id]
		group.Totals = EventSupplierTotals(group.Costs)
		out = append(out, *group)
	}
	return out
}

// FilterCostsByStatus returns the costs whose payment status matches.
// An empty status returns the input unchanged.
func FilterCostsByStatus(costs []SupplierCost, status string) []SupplierCost {
	if status == "" {
		return costs
	}
	filtered := make([]SupplierCost, 0, len(costs))
	for _, cost := range costs {
		if cost.PaymentStatus == status {
			filtered = append(filtered, cost)
		}
	}
	return filtered
}

// SortCostsByLatest orders costs newest first. Paid costs sort by payment
// date, everything else by creation date.
func SortCostsByLatest(costs []SupplierCost) []SupplierCost {
	sorted := make([]SupplierCost, len(costs))
	copy(sorted, costs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sortKey(sorted[i]).After(sortKey(sorted[j]))
	})
	return sorted
}

func sortKey(cost SupplierCost) time.Time {
	if cost.PaymentStatus == StatusPaid && cost.PaymentDate != nil {
		return *cost.PaymentDate
	}
	return cost.CreatedAt
}
