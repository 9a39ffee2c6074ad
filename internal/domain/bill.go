package domain

import "time"

// PaymentStatus represents the payment state of a bill
type PaymentStatus int

const (
	PaymentPending  PaymentStatus = 1
	PaymentPaid     PaymentStatus = 2
	PaymentRefunded PaymentStatus = 3
)

// Bill represents an invoice attached to a reservation
type Bill struct {
	ID            int64
	ReservationID int64
	TotalAmount   float64
	PaymentStatus PaymentStatus
	PaidAt        *time.Time
}

// IsRealized returns true if the bill counts toward collected revenue
func (b *Bill) IsRealized() bool {
	return b.PaymentStatus == PaymentPaid && b.PaidAt != nil
}
