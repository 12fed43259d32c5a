package payroll

import "testing"

func TestDateWithinEventPeriod(t *testing.T) {
	period := EventPeriod{StartDate: "2025-10-01", EndDate: "2025-10-05"}

	cases := []struct {
		date string
		want bool
	}{
		{"2025-10-01", true},
		{"2025-10-03", true},
		{"2025-10-05", true},
		{"2025-09-30", false},
		{"2025-10-06", false},
		{"not-a-date", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := DateWithinEventPeriod(tc.date, period); got != tc.want {
			t.Fatalf("DateWithinEventPeriod(%q) = %v, want %v", tc.date, got, tc.want)
		}
	}
}

func TestDateWithinEventPeriodMalformedPeriod(t *testing.T) {
	if DateWithinEventPeriod("2025-10-01", EventPeriod{StartDate: "bad", EndDate: "2025-10-05"}) {
		t.Fatal("expected malformed period start to exclude the date")
	}
	if DateWithinEventPeriod("2025-10-01", EventPeriod{StartDate: "2025-10-01", EndDate: ""}) {
		t.Fatal("expected malformed period end to exclude the date")
	}
}

func TestValidWorkDatesForAllocation(t *testing.T) {
	period := EventPeriod{StartDate: "2025-10-01", EndDate: "2025-10-03"}
	workDays := []string{"2025-09-30", "2025-10-01", "2025-10-03", "2025-10-04", "garbage"}

	valid := ValidWorkDatesForAllocation(workDays, period)
	if len(valid) != 2 {
		t.Fatalf("expected 2 valid dates, got %v", valid)
	}
	if valid[0] != "2025-10-01" || valid[1] != "2025-10-03" {
		t.Fatalf("unexpected valid dates: %v", valid)
	}
}

func TestRecordsForAllocation(t *testing.T) {
	alloc := Allocation{
		PersonnelID: "p1",
		EventID:     "e1",
		WorkDays:    []string{"2025-10-01", "2025-10-02"},
	}
	period := EventPeriod{StartDate: "2025-10-01", EndDate: "2025-10-02"}
	records := []WorkRecord{
		{EmployeeID: "p1", EventID: "e1", WorkDate: "2025-10-01", OvertimeHours: 2},
		{EmployeeID: "p1", EventID: "e1", WorkDate: "2025-10-02", OvertimeHours: 1},
		{EmployeeID: "p1", EventID: "e1", WorkDate: "2025-10-03", OvertimeHours: 4},
		{EmployeeID: "p2", EventID: "e1", WorkDate: "2025-10-01", OvertimeHours: 8},
		{EmployeeID: "p1", EventID: "e2", WorkDate: "2025-10-01", OvertimeHours: 8},
		{EmployeeID: "p1", EventID: "e1", WorkDate: "bogus", OvertimeHours: 8},
	}

	matched := RecordsForAllocation(alloc, records, period, CalcOptions{})
	if len(matched) != 2 {
		t.Fatalf("expected 2 matched records, got %d", len(matched))
	}
	var total float64
	for _, record := range matched {
		total += record.OvertimeHours
	}
	if total != 3 {
		t.Fatalf("expected 3 overtime hours, got %v", total)
	}
}

func TestRecordsForAllocationNoClampByDefault(t *testing.T) {
	// The stored workDays include a date outside the event period. Without
	// clamping the record on that date still counts.
	alloc := Allocation{
		PersonnelID: "p1",
		EventID:     "e1",
		WorkDays:    []string{"2025-10-01", "2025-10-09"},
	}
	period := EventPeriod{StartDate: "2025-10-01", EndDate: "2025-10-02"}
	records := []WorkRecord{
		{EmployeeID: "p1", EventID: "e1", WorkDate: "2025-10-09", OvertimeHours: 2},
	}

	if got := len(RecordsForAllocation(alloc, records, period, CalcOptions{})); got != 1 {
		t.Fatalf("expected stray date to count without clamping, got %d records", got)
	}
	clamped := RecordsForAllocation(alloc, records, period, CalcOptions{ClampToEventPeriod: true})
	if len(clamped) != 0 {
		t.Fatalf("expected stray date to be dropped with clamping, got %d records", len(clamped))
	}
}
