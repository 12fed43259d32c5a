package payroll

// PolicySource holds the nullable overtime settings attached to a person
// or a team. A nil field means "not configured at this level".
type PolicySource struct {
	ThresholdHours *float64
	ConvertToDaily *bool
}

// ResolvePolicy collapses the person override / team default / hardcoded
// fallback chain into a fully populated policy. Resolution is per field:
// a person may override only the threshold and still inherit the team's
// conversion setting.
func ResolvePolicy(person, team PolicySource) OvertimePolicy {
	policy := OvertimePolicy{
		ThresholdHours:  DefaultThresholdHours,
		ConvertToDaily:  false,
		RemainderPolicy: RemainderHourly,
	}

	if team.ThresholdHours != nil {
		policy.ThresholdHours = *team.ThresholdHours
	}
	if team.ConvertToDaily != nil {
		policy.ConvertToDaily = *team.ConvertToDaily
	}
	if person.ThresholdHours != nil {
		policy.ThresholdHours = *person.ThresholdHours
	}
	if person.ConvertToDaily != nil {
		policy.ConvertToDaily = *person.ConvertToDaily
	}

	if policy.ThresholdHours <= 0 {
		// A zero or negative threshold cannot drive conversion math.
		policy.ThresholdHours = 0
		policy.ConvertToDaily = false
	}
	return policy
}
