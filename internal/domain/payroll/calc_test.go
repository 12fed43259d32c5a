package payroll

import (
	"math"
	"reflect"
	"testing"
)

var testPeriod = EventPeriod{StartDate: "2025-10-01", EndDate: "2025-10-05"}

func testAllocation() Allocation {
	return Allocation{
		PersonnelID: "p1",
		EventID:     "e1",
		WorkDays:    []string{"2025-10-01", "2025-10-02", "2025-10-03"},
	}
}

func TestComputeLineItemHourlyMode(t *testing.T) {
	records := []WorkRecord{
		{EmployeeID: "p1", EventID: "e1", WorkDate: "2025-10-01", HoursWorked: 8, OvertimeHours: 2},
		{EmployeeID: "p1", EventID: "e1", WorkDate: "2025-10-02", HoursWorked: 8, OvertimeHours: 1},
	}
	rates := PersonnelRates{DailyRate: 300, OvertimeRate: 50}
	policy := OvertimePolicy{ThresholdHours: 8, RemainderPolicy: RemainderHourly}

	item := ComputeLineItem(testAllocation(), records, testPeriod, rates, policy, CalcOptions{})
	if item.WorkDaysCount != 2 {
		t.Fatalf("expected 2 work days, got %d", item.WorkDaysCount)
	}
	if item.TotalOvertimeHours != 3 {
		t.Fatalf("expected 3 overtime hours, got %v", item.TotalOvertimeHours)
	}
	if item.BasePayment != 600 {
		t.Fatalf("expected base 600, got %v", item.BasePayment)
	}
	if item.OvertimePayment != 150 {
		t.Fatalf("expected overtime 150, got %v", item.OvertimePayment)
	}
	if item.TotalPayment != 750 {
		t.Fatalf("expected total 750, got %v", item.TotalPayment)
	}
}

func TestComputeLineItemConversionMode(t *testing.T) {
	// 17h of overtime against an 8h threshold: two caches, 1h remainder.
	records := []WorkRecord{
		{EmployeeID: "p1", EventID: "e1", WorkDate: "2025-10-01", OvertimeHours: 9},
		{EmployeeID: "p1", EventID: "e1", WorkDate: "2025-10-02", OvertimeHours: 8},
	}
	rates := PersonnelRates{DailyRate: 300, OvertimeRate: 40}
	policy := OvertimePolicy{ThresholdHours: 8, ConvertToDaily: true, RemainderPolicy: RemainderHourly}

	item := ComputeLineItem(testAllocation(), records, testPeriod, rates, policy, CalcOptions{})
	if item.OvertimeCachesUsed != 2 {
		t.Fatalf("expected 2 caches, got %d", item.OvertimeCachesUsed)
	}
	if item.OvertimeRemainingHours != 1 {
		t.Fatalf("expected 1h remainder, got %v", item.OvertimeRemainingHours)
	}
	if item.OvertimePayment != 640 {
		t.Fatalf("expected overtime 640 (2*300 + 1*40), got %v", item.OvertimePayment)
	}

	policy.RemainderPolicy = RemainderForfeit
	item = ComputeLineItem(testAllocation(), records, testPeriod, rates, policy, CalcOptions{})
	if item.OvertimePayment != 600 {
		t.Fatalf("expected forfeited remainder to pay 600, got %v", item.OvertimePayment)
	}
	if item.OvertimeRemainingHours != 1 {
		t.Fatalf("expected remainder still reported, got %v", item.OvertimeRemainingHours)
	}
}

func TestComputeLineItemZeroOvertime(t *testing.T) {
	records := []WorkRecord{
		{EmployeeID: "p1", EventID: "e1", WorkDate: "2025-10-01", HoursWorked: 8},
	}
	rates := PersonnelRates{DailyRate: 250, OvertimeRate: 50}

	for _, convert := range []bool{false, true} {
		policy := OvertimePolicy{ThresholdHours: 8, ConvertToDaily: convert}
		item := ComputeLineItem(testAllocation(), records, testPeriod, rates, policy, CalcOptions{})
		if item.OvertimePayment != 0 {
			t.Fatalf("convert=%v: expected zero overtime payment, got %v", convert, item.OvertimePayment)
		}
		if item.TotalPayment != 250 {
			t.Fatalf("convert=%v: expected total 250, got %v", convert, item.TotalPayment)
		}
	}
}

func TestComputeLineItemEmptyInput(t *testing.T) {
	rates := PersonnelRates{DailyRate: 300, OvertimeRate: 50}
	policy := OvertimePolicy{ThresholdHours: 8}

	item := ComputeLineItem(testAllocation(), nil, testPeriod, rates, policy, CalcOptions{})
	if item.WorkDaysCount != 0 || item.TotalPayment != 0 || item.TotalOvertimeHours != 0 {
		t.Fatalf("expected zero-value line item, got %+v", item)
	}
}

func TestComputeLineItemIdempotent(t *testing.T) {
	records := []WorkRecord{
		{EmployeeID: "p1", EventID: "e1", WorkDate: "2025-10-01", OvertimeHours: 2.5},
		{EmployeeID: "p1", EventID: "e1", WorkDate: "2025-10-02", OvertimeHours: 1.25},
	}
	rates := PersonnelRates{DailyRate: 310.4, OvertimeRate: 42.3}
	policy := OvertimePolicy{ThresholdHours: 8, ConvertToDaily: true, RemainderPolicy: RemainderHourly}

	first := ComputeLineItem(testAllocation(), records, testPeriod, rates, policy, CalcOptions{})
	second := ComputeLineItem(testAllocation(), records, testPeriod, rates, policy, CalcOptions{})
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %+v vs %+v", first, second)
	}
}

func TestComputeLineItemClampsNegativeHours(t *testing.T) {
	records := []WorkRecord{
		{EmployeeID: "p1", EventID: "e1", WorkDate: "2025-10-01", OvertimeHours: -4},
		{EmployeeID: "p1", EventID: "e1", WorkDate: "2025-10-02", OvertimeHours: math.NaN()},
		{EmployeeID: "p1", EventID: "e1", WorkDate: "2025-10-03", OvertimeHours: 2},
	}
	rates := PersonnelRates{DailyRate: 100, OvertimeRate: 10}
	policy := OvertimePolicy{ThresholdHours: 8}

	item := ComputeLineItem(testAllocation(), records, testPeriod, rates, policy, CalcOptions{})
	if item.TotalOvertimeHours != 2 {
		t.Fatalf("expected negative and NaN hours clamped, got %v", item.TotalOvertimeHours)
	}
	if item.WorkDaysCount != 3 {
		t.Fatalf("expected 3 work days, got %d", item.WorkDaysCount)
	}
}

func TestComputeLineItemDistinctDates(t *testing.T) {
	// Two records on the same date count as one work day.
	records := []WorkRecord{
		{EmployeeID: "p1", EventID: "e1", WorkDate: "2025-10-01", OvertimeHours: 1},
		{EmployeeID: "p1", EventID: "e1", WorkDate: "2025-10-01", OvertimeHours: 1},
	}
	rates := PersonnelRates{DailyRate: 200}

	item := ComputeLineItem(testAllocation(), records, testPeriod, rates, OvertimePolicy{ThresholdHours: 8}, CalcOptions{})
	if item.WorkDaysCount != 1 {
		t.Fatalf("expected 1 work day for duplicate dates, got %d", item.WorkDaysCount)
	}
	if item.TotalOvertimeHours != 2 {
		t.Fatalf("expected summed overtime 2, got %v", item.TotalOvertimeHours)
	}
}

func TestComputeOvertimeZeroThresholdFallsBackToHourly(t *testing.T) {
	rates := PersonnelRates{DailyRate: 300, OvertimeRate: 20}
	policy := OvertimePolicy{ThresholdHours: 0, ConvertToDaily: true}

	payment, caches, _ := computeOvertimePayment(5, rates, policy)
	if caches != 0 {
		t.Fatalf("expected no caches with zero threshold, got %d", caches)
	}
	if payment != 100 {
		t.Fatalf("expected hourly payment 100, got %v", payment)
	}
}

func TestRoundCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{2.345, 2.35},
		{2.344, 2.34},
		{2.005, 2.01},
		{0, 0},
		{math.NaN(), 0},
	}
	for _, tc := range cases {
		if got := RoundCurrency(tc.in); got != tc.want {
			t.Fatalf("RoundCurrency(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestRoundingAppliedToTotals(t *testing.T) {
	// 1.5h * 1.563 produces a fractional cent that must round half-up.
	records := []WorkRecord{
		{EmployeeID: "p1", EventID: "e1", WorkDate: "2025-10-01", OvertimeHours: 1.5},
	}
	rates := PersonnelRates{DailyRate: 0, OvertimeRate: 1.563}

	item := ComputeLineItem(testAllocation(), records, testPeriod, rates, OvertimePolicy{ThresholdHours: 8}, CalcOptions{})
	if item.OvertimePayment != 2.34 {
		t.Fatalf("expected overtime 2.34, got %v", item.OvertimePayment)
	}
}

func TestReconcilePayments(t *testing.T) {
	item := PayrollLineItem{TotalPayment: 500}
	payments := []PaymentRecord{
		{Status: PaymentStatusPaid, Amount: 200},
		{Status: PaymentStatusPending, Amount: 100},
		{Status: PaymentStatusCancelled, Amount: 50},
		{Status: PaymentStatusPaid, Amount: 100},
	}

	item = ReconcilePayments(item, payments)
	if item.PaidAmount != 300 {
		t.Fatalf("expected paid 300, got %v", item.PaidAmount)
	}
	if item.PendingAmount != 200 {
		t.Fatalf("expected pending 200, got %v", item.PendingAmount)
	}
	if item.Paid {
		t.Fatal("expected item not fully paid")
	}
}

func TestReconcilePaymentsOverpaid(t *testing.T) {
	item := PayrollLineItem{TotalPayment: 100}
	item = ReconcilePayments(item, []PaymentRecord{{Status: PaymentStatusPaid, Amount: 150}})
	if item.PendingAmount != 0 {
		t.Fatalf("expected pending clamped to 0, got %v", item.PendingAmount)
	}
	if !item.Paid {
		t.Fatal("expected overpaid item marked paid")
	}
}
