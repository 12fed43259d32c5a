package payroll

import "errors"

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrClosingNotFound    = errors.New("payroll closing not found")
	ErrCloseInvalidState  = errors.New("payroll closing is already closed")
	ErrReopenInvalidState = errors.New("payroll closing is not closed")
	ErrClosingNoLineItems = errors.New("event has no payroll line items")
)
