package suppliers

import "time"

type Supplier struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	Contact   string    `json:"contact"`
	CreatedAt time.Time `json:"createdAt"`
}

type SupplierCost struct {
	ID            string     `json:"id"`
	SupplierID    string     `json:"supplierId"`
	SupplierName  string     `json:"supplierName"`
	EventID       string     `json:"eventId"`
	Description   string     `json:"description"`
	TotalAmount   float64    `json:"totalAmount"`
	PaidAmount    float64    `json:"paidAmount"`
	PaymentStatus string     `json:"paymentStatus"`
	PaymentDate   *time.Time `json:"paymentDate,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

type EventTotals struct {
	PaidAmount    float64 `json:"paidAmount"`
	PendingAmount float64 `json:"pendingAmount"`
	PaidCount     int     `json:"paidCount"`
	PendingCount  int     `json:"pendingCount"`
}

type EventRef struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type EventGroup struct {
	EventID   string         `json:"eventId"`
	EventName string         `json:"eventName"`
	StartDate string         `json:"startDate"`
	EndDate   string         `json:"endDate"`
	Costs     []SupplierCost `json:"costs"`
	Totals    EventTotals    `json:"totals"`
}
