package payments

import "time"

const (
	StatusPaid      = "paid"
	StatusPending   = "pending"
	StatusCancelled = "cancelled"
)

type PersonnelPayment struct {
	ID          string     `json:"id"`
	PersonnelID string     `json:"personnelId"`
	EventID     string     `json:"eventId"`
	Amount      float64    `json:"amount"`
	Status      string     `json:"status"`
	PaidAt      *time.Time `json:"paidAt,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}
