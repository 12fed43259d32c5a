package payroll

import "testing"

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func TestResolvePolicyDefaults(t *testing.T) {
	policy := ResolvePolicy(PolicySource{}, PolicySource{})
	if policy.ThresholdHours != 8 {
		t.Fatalf("expected default threshold 8, got %v", policy.ThresholdHours)
	}
	if policy.ConvertToDaily {
		t.Fatal("expected conversion disabled by default")
	}
	if policy.RemainderPolicy != RemainderHourly {
		t.Fatalf("expected hourly remainder default, got %v", policy.RemainderPolicy)
	}
}

func TestResolvePolicyTeamDefaults(t *testing.T) {
	team := PolicySource{ThresholdHours: floatPtr(10), ConvertToDaily: boolPtr(true)}
	policy := ResolvePolicy(PolicySource{}, team)
	if policy.ThresholdHours != 10 {
		t.Fatalf("expected team threshold 10, got %v", policy.ThresholdHours)
	}
	if !policy.ConvertToDaily {
		t.Fatal("expected team conversion setting to apply")
	}
}

func TestResolvePolicyPersonOverridesTeam(t *testing.T) {
	team := PolicySource{ThresholdHours: floatPtr(10), ConvertToDaily: boolPtr(true)}
	person := PolicySource{ThresholdHours: floatPtr(6)}

	policy := ResolvePolicy(person, team)
	if policy.ThresholdHours != 6 {
		t.Fatalf("expected person threshold 6, got %v", policy.ThresholdHours)
	}
	if !policy.ConvertToDaily {
		t.Fatal("expected inherited team conversion when person leaves it unset")
	}

	person.ConvertToDaily = boolPtr(false)
	policy = ResolvePolicy(person, team)
	if policy.ConvertToDaily {
		t.Fatal("expected person conversion override to win")
	}
}

func TestResolvePolicyZeroThresholdDisablesConversion(t *testing.T) {
	person := PolicySource{ThresholdHours: floatPtr(0), ConvertToDaily: boolPtr(true)}
	policy := ResolvePolicy(person, PolicySource{})
	if policy.ConvertToDaily {
		t.Fatal("expected zero threshold to disable conversion")
	}
}
