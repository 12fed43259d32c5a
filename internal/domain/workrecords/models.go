package workrecords

import "time"

type WorkRecord struct {
	ID            string    `json:"id"`
	EmployeeID    string    `json:"employeeId"`
	EventID       string    `json:"eventId"`
	WorkDate      string    `json:"workDate"`
	HoursWorked   float64   `json:"hoursWorked"`
	OvertimeHours float64   `json:"overtimeHours"`
	TotalPay      float64   `json:"totalPay"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
