package suppliers

import (
	"testing"
	"time"
)

func TestEventSupplierTotals(t *testing.T) {
	costs := []SupplierCost{
		{PaymentStatus: StatusPaid, PaidAmount: 80, TotalAmount: 100},
		{PaymentStatus: StatusPending, PaidAmount: 20, TotalAmount: 100},
	}

	totals := EventSupplierTotals(costs)
	if totals.PaidAmount != 80 {
		t.Fatalf("expected paid 80, got %v", totals.PaidAmount)
	}
	if totals.PendingAmount != 80 {
		t.Fatalf("expected pending 80, got %v", totals.PendingAmount)
	}
	if totals.PaidCount != 1 || totals.PendingCount != 1 {
		t.Fatalf("unexpected counts: %+v", totals)
	}
}

func TestEventSupplierTotalsNeverNegative(t *testing.T) {
	costs := []SupplierCost{
		{PaymentStatus: StatusPending, PaidAmount: 150, TotalAmount: 100},
	}
	totals := EventSupplierTotals(costs)
	if totals.PendingAmount != 0 {
		t.Fatalf("expected pending clamped to 0, got %v", totals.PendingAmount)
	}
}

func TestGroupCostsByEvent(t *testing.T) {
	costs := []SupplierCost{
		{ID: "c1", EventID: "e1"},
		{ID: "c2", EventID: "e1"},
		{ID: "c3", EventID: "e2"},
	}
	events := []EventRef{
		{ID: "e1", Name: "Evento 1"},
		{ID: "e2", Name: "Evento 2"},
	}

	groups := GroupCostsByEvent(costs, events)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].EventName != "Evento 1" || len(groups[0].Costs) != 2 {
		t.Fatalf("unexpected first group: %+v", groups[0])
	}
	if groups[1].EventName != "Evento 2" || len(groups[1].Costs) != 1 {
		t.Fatalf("unexpected second group: %+v", groups[1])
	}
}

func TestGroupCostsByEventMissingLookup(t *testing.T) {
	groups := GroupCostsByEvent([]SupplierCost{{ID: "c1", EventID: "ghost"}}, nil)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if groups[0].EventName != placeholderEventName {
		t.Fatalf("expected placeholder name, got %q", groups[0].EventName)
	}
}

func TestFilterCostsByStatus(t *testing.T) {
	costs := []SupplierCost{
		{ID: "c1", PaymentStatus: StatusPaid},
		{ID: "c2", PaymentStatus: StatusPending},
	}
	paid := FilterCostsByStatus(costs, StatusPaid)
	if len(paid) != 1 || paid[0].ID != "c1" {
		t.Fatalf("unexpected filter result: %+v", paid)
	}
	if got := FilterCostsByStatus(costs, ""); len(got) != 2 {
		t.Fatalf("expected empty status to pass everything, got %d", len(got))
	}
}

func TestSortCostsByLatest(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, 10, d, 0, 0, 0, 0, time.UTC)
	}
	paidAt := day(20)
	costs := []SupplierCost{
		{ID: "old", PaymentStatus: StatusPending, CreatedAt: day(1)},
		{ID: "paid", PaymentStatus: StatusPaid, CreatedAt: day(2), PaymentDate: &paidAt},
		{ID: "recent", PaymentStatus: StatusPending, CreatedAt: day(10)},
	}

	sorted := SortCostsByLatest(costs)
	if sorted[0].ID != "paid" || sorted[1].ID != "recent" || sorted[2].ID != "old" {
		t.Fatalf("unexpected order: %s %s %s", sorted[0].ID, sorted[1].ID, sorted[2].ID)
	}
	if costs[0].ID != "old" {
		t.Fatal("expected input slice untouched")
	}
}
