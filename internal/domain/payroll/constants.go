package payroll

const (
	ClosingStatusDraft  = "draft"
	ClosingStatusClosed = "closed"

	PaymentStatusPaid      = "paid"
	PaymentStatusPending   = "pending"
	PaymentStatusCancelled = "cancelled"

	DefaultThresholdHours = 8.0
)
