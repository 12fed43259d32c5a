package personnel

import "time"

const (
	TypeFixed      = "fixed"
	TypeFreelancer = "freelancer"
)

type Person struct {
	ID                   string    `json:"id"`
	TeamID               string    `json:"teamId"`
	Name                 string    `json:"name"`
	Email                string    `json:"email"`
	Type                 string    `json:"type"`
	MonthlySalary        float64   `json:"monthlySalary"`
	EventCache           float64   `json:"eventCache"`
	OvertimeRate         float64   `json:"overtimeRate"`
	OvertimeThreshold    *float64  `json:"overtimeThresholdHours,omitempty"`
	ConvertOvertimeDaily *bool     `json:"convertOvertimeToDaily,omitempty"`
	Active               bool      `json:"active"`
	CreatedAt            time.Time `json:"createdAt"`
}

type Team struct {
	ID                       string    `json:"id"`
	Name                     string    `json:"name"`
	DefaultOvertimeThreshold *float64  `json:"defaultOvertimeThresholdHours,omitempty"`
	DefaultConvertToDaily    *bool     `json:"defaultConvertOvertimeToDaily,omitempty"`
	CreatedAt                time.Time `json:"createdAt"`
}
