package payroll

const (
	PersonTypeFixed      = "fixed"
	PersonTypeFreelancer = "freelancer"

	// Fixed-staff day rate divides the monthly salary over a commercial
	// 30-day month.
	SalaryDivisorDays = 30
)

// PersonProfile is the payment-relevant slice of a personnel record, as the
// aggregation consumes it.
type PersonProfile struct {
	PersonnelID    string
	TeamID         string
	Type           string
	MonthlySalary  float64
	EventCache     float64
	OvertimeRate   float64
	ThresholdHours *float64
	ConvertToDaily *bool
}

// DailyRate resolves the per-day rate: freelancers are paid their per-event
// cache, fixed staff a salary-derived day rate.
func (p PersonProfile) DailyRate() float64 {
	if p.Type == PersonTypeFreelancer {
		return p.EventCache
	}
	if p.MonthlySalary <= 0 {
		return 0
	}
	return p.MonthlySalary / SalaryDivisorDays
}

func (p PersonProfile) Rates() PersonnelRates {
	return PersonnelRates{DailyRate: p.DailyRate(), OvertimeRate: p.OvertimeRate}
}

func (p PersonProfile) PolicySource() PolicySource {
	return PolicySource{ThresholdHours: p.ThresholdHours, ConvertToDaily: p.ConvertToDaily}
}
