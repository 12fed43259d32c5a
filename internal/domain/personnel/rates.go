package personnel

import "plannersystem/internal/domain/payroll"

// Profile projects a personnel record into the payment-relevant view the
// payroll aggregation consumes.
func Profile(person Person) payroll.PersonProfile {
	return payroll.PersonProfile{
		PersonnelID:    person.ID,
		TeamID:         person.TeamID,
		Type:           person.Type,
		MonthlySalary:  person.MonthlySalary,
		EventCache:     person.EventCache,
		OvertimeRate:   person.OvertimeRate,
		ThresholdHours: person.OvertimeThreshold,
		ConvertToDaily: person.ConvertOvertimeDaily,
	}
}

// DailyRate resolves the per-day rate used for base payment.
func DailyRate(person Person) float64 {
	return Profile(person).DailyRate()
}

// TeamPolicySource exposes the team-level overtime defaults for policy
// resolution.
func TeamPolicySource(team Team) payroll.PolicySource {
	return payroll.PolicySource{
		ThresholdHours: team.DefaultOvertimeThreshold,
		ConvertToDaily: team.DefaultConvertToDaily,
	}
}
