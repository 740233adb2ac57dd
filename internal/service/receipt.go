package service

import (
	"fmt"

	"safepath/internal/domain"
)

// ReceiptService renders a booking receipt for email/print.
type ReceiptService struct{}

// NewReceiptService creates a new ReceiptService.
func NewReceiptService() *ReceiptService {
	return &ReceiptService{}
}

// FormatReceipt formats a booking and its payment as a plain-text receipt.
// The fare breakdown is the flat distance rate; there are no surcharges.
func (s *ReceiptService) FormatReceipt(booking *domain.Booking, payment *domain.Payment) string {
	paymentStatus := domain.PaymentStatusPending
	paymentMethod := booking.PaymentMethod
	if payment != nil {
		paymentStatus = payment.Status
		paymentMethod = payment.Method
	}

	return `
=====================================
       SAFEPATH RECEIPT
=====================================
Booking ID: ` + booking.ID + `
Date: ` + booking.CreatedAt.Format("Jan 02, 2006 3:04 PM") + `

TRIP DETAILS
-------------------------------------
Pickup:      ` + booking.FromAddress + `
Drop-off:    ` + booking.ToAddress + `
Scheduled:   ` + booking.ScheduledAt.Format("Jan 02, 2006 15:04") + `
Distance:    ` + fmt.Sprintf("%.1f", booking.DistanceKm) + ` km

FARE
-------------------------------------
Rate:        50 /km
TOTAL:       ` + fmt.Sprintf("%d", booking.Fare) + `

PAYMENT
-------------------------------------
Method: ` + string(paymentMethod) + `
Status: ` + string(paymentStatus) + `

=====================================
   Thank you for riding with us!
=====================================
`
}
