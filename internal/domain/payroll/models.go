package payroll

import "time"

type EventPeriod struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type Allocation struct {
	ID           string   `json:"id"`
	PersonnelID  string   `json:"personnelId"`
	EventID      string   `json:"eventId"`
	WorkDays     []string `json:"workDays"`
	FunctionName string   `json:"functionName"`
	DivisionID   string   `json:"divisionId"`
}

type WorkRecord struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employeeId"`
	EventID       string  `json:"eventId"`
	WorkDate      string  `json:"workDate"`
	HoursWorked   float64 `json:"hoursWorked"`
	OvertimeHours float64 `json:"overtimeHours"`
	TotalPay      float64 `json:"totalPay,omitempty"`
}

// RemainderPolicy controls what happens to overtime hours left below the
// next full threshold multiple in conversion mode.
type RemainderPolicy string

const (
	RemainderHourly  RemainderPolicy = "hourly"
	RemainderForfeit RemainderPolicy = "forfeit"
)

type OvertimePolicy struct {
	ThresholdHours  float64         `json:"thresholdHours"`
	ConvertToDaily  bool            `json:"convertToDaily"`
	RemainderPolicy RemainderPolicy `json:"remainderPolicy"`
}

// PersonnelRates carries the caller-resolved monetary rates for one person.
// DailyRate is the freelancer cache or the fixed-staff salary-derived day
// rate; OvertimeRate applies in hourly mode and to conversion-mode
// remainders.
type PersonnelRates struct {
	DailyRate    float64 `json:"dailyRate"`
	OvertimeRate float64 `json:"overtimeRate"`
}

type PaymentRecord struct {
	ID     string  `json:"id"`
	Status string  `json:"status"`
	Amount float64 `json:"amount"`
}

type PayrollLineItem struct {
	PersonnelID            string  `json:"personnelId"`
	EventID                string  `json:"eventId"`
	WorkDaysCount          int     `json:"workDaysCount"`
	TotalOvertimeHours     float64 `json:"totalOvertimeHours"`
	OvertimeCachesUsed     int     `json:"overtimeCachesUsed"`
	OvertimeRemainingHours float64 `json:"overtimeRemainingHours"`
	BasePayment            float64 `json:"basePayment"`
	OvertimePayment        float64 `json:"overtimePayment"`
	TotalPayment           float64 `json:"totalPayment"`
	Paid                   bool    `json:"paid"`
	PaidAmount             float64 `json:"paidAmount"`
	PendingAmount          float64 `json:"pendingAmount"`
}

// CalcOptions collects the aggregation behaviors that are deliberately
// configurable rather than fixed.
type CalcOptions struct {
	// ClampToEventPeriod drops allocation work days outside the event's
	// date range before aggregating. Off by default: the payroll filter
	// trusts workDays as stored and event clamping stays a write-time
	// validation concern.
	ClampToEventPeriod bool

	// RemainderPolicy, when set, overrides the remainder handling of every
	// resolved policy. Empty leaves the per-policy default (hourly) alone.
	RemainderPolicy RemainderPolicy
}

type EventPayrollSummary struct {
	EventID       string            `json:"eventId"`
	LineItems     []PayrollLineItem `json:"lineItems"`
	TotalPayment  float64           `json:"totalPayment"`
	PaidAmount    float64           `json:"paidAmount"`
	PendingAmount float64           `json:"pendingAmount"`
}

type Closing struct {
	ID        string     `json:"id"`
	EventID   string     `json:"eventId"`
	Status    string     `json:"status"`
	Total     float64    `json:"total"`
	Paid      float64    `json:"paid"`
	Pending   float64    `json:"pending"`
	ClosedAt  *time.Time `json:"closedAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}
