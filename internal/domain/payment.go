package domain

import "time"

// PaymentStatus represents the status of a payment.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

// Payment represents the payment record created when a booking is confirmed.
// Settlement happens out of band (e.g. cash with the driver), so records
// start in PENDING.
type Payment struct {
	ID        string
	BookingID string
	UserID    string
	Method    PaymentMethod
	Amount    int
	Status    PaymentStatus
	CreatedAt time.Time
}
