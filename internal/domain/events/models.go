package events

import "time"

type Event struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	Location  string    `json:"location"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type Allocation struct {
	ID           string    `json:"id"`
	EventID      string    `json:"eventId"`
	PersonnelID  string    `json:"personnelId"`
	FunctionName string    `json:"functionName"`
	DivisionID   string    `json:"divisionId"`
	WorkDays     []string  `json:"workDays"`
	CreatedAt    time.Time `json:"createdAt"`
}

const (
	StatusPlanned   = "planned"
	StatusActive    = "active"
	StatusFinished  = "finished"
	StatusCancelled = "cancelled"
)
