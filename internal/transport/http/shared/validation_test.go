package shared

import (
	"testing"
	"time"
)

func TestValidatorRequiredAndEnum(t *testing.T) {
	v := NewValidator()
	v.Required("name", "  ", "name is required")
	v.Enum("status", "bogus", []string{"planned", "active"}, "invalid status")
	v.Enum("type", "Fixed", []string{"fixed", "freelancer"}, "invalid type")

	issues := v.Issues()
	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %d: %+v", len(issues), issues)
	}
	if issues[0].Field != "name" || issues[1].Field != "status" {
		t.Fatalf("unexpected issue ordering: %+v", issues)
	}
}

func TestValidatorDateAndOrder(t *testing.T) {
	v := NewValidator()
	start, ok := v.Date("startDate", "2026-06-01")
	if !ok {
		t.Fatal("expected startDate to parse")
	}
	end, ok := v.Date("endDate", "2026-05-01")
	if !ok {
		t.Fatal("expected endDate to parse")
	}
	v.DateOrder("startDate", start, "endDate", end)
	if !v.HasIssues() {
		t.Fatal("expected date order issue")
	}

	v2 := NewValidator()
	if _, ok := v2.Date("workDate", "not-a-date"); ok {
		t.Fatal("expected invalid date to fail")
	}
	if !v2.HasIssues() {
		t.Fatal("expected issue for invalid date")
	}
}

func TestValidatorDates(t *testing.T) {
	v := NewValidator()
	if !v.Dates("workDays", []string{"2026-06-01", "2026-06-02"}) {
		t.Fatal("expected valid work days to pass")
	}
	if v.Dates("workDays", []string{"2026-06-01", "06/02/2026"}) {
		t.Fatal("expected malformed work day to fail")
	}
}

func TestValidatorNonNegative(t *testing.T) {
	v := NewValidator()
	v.NonNegative("amount", 10)
	v.NonNegative("hours", -1)
	issues := v.Issues()
	if len(issues) != 1 || issues[0].Field != "hours" {
		t.Fatalf("unexpected issues: %+v", issues)
	}
}

func TestParseDateAcceptsRFC3339(t *testing.T) {
	parsed, err := ParseDate("2026-06-01T10:00:00Z")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if parsed.UTC().Format(time.RFC3339) != "2026-06-01T10:00:00Z" {
		t.Fatalf("unexpected parsed value: %v", parsed)
	}
}
