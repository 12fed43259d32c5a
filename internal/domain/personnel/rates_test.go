package personnel

import "testing"

func TestDailyRateFreelancer(t *testing.T) {
	person := Person{Type: TypeFreelancer, EventCache: 350, MonthlySalary: 9000}
	if got := DailyRate(person); got != 350 {
		t.Fatalf("expected event cache 350, got %v", got)
	}
}

func TestDailyRateFixedStaff(t *testing.T) {
	person := Person{Type: TypeFixed, MonthlySalary: 4500}
	if got := DailyRate(person); got != 150 {
		t.Fatalf("expected 4500/30 = 150, got %v", got)
	}
}

func TestDailyRateMissingSalary(t *testing.T) {
	if got := DailyRate(Person{Type: TypeFixed}); got != 0 {
		t.Fatalf("expected 0 for missing salary, got %v", got)
	}
}

func TestProfilePolicySource(t *testing.T) {
	threshold := 6.0
	convert := true
	person := Person{OvertimeThreshold: &threshold, ConvertOvertimeDaily: &convert}

	source := Profile(person).PolicySource()
	if source.ThresholdHours == nil || *source.ThresholdHours != 6 {
		t.Fatalf("unexpected threshold source: %+v", source)
	}
	if source.ConvertToDaily == nil || !*source.ConvertToDaily {
		t.Fatalf("unexpected conversion source: %+v", source)
	}

	empty := Profile(Person{})
	if empty.ThresholdHours != nil || empty.ConvertToDaily != nil {
		t.Fatalf("expected nil sources for unconfigured person, got %+v", empty)
	}
}
