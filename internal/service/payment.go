package service

import (
	"context"

	"safepath/internal/domain"
	"safepath/internal/repository"
)

// PaymentService handles payment record operations. Charging is out of
// scope: cash and PromptPay settle with the driver, so records only move
// from PENDING to PAID when settlement is reported.
type PaymentService struct {
	paymentRepo repository.PaymentRepository
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(paymentRepo repository.PaymentRepository) *PaymentService {
	return &PaymentService{paymentRepo: paymentRepo}
}

// GetPayment retrieves a payment by ID.
func (s *PaymentService) GetPayment(ctx context.Context, paymentID string) (*domain.Payment, error) {
	if paymentID == "" {
		return nil, ErrInvalidBookingID
	}
	return s.paymentRepo.GetByID(ctx, paymentID)
}

// GetByBooking retrieves the payment for a booking, or (nil, nil) when none
// exists.
func (s *PaymentService) GetByBooking(ctx context.Context, bookingID string) (*domain.Payment, error) {
	if bookingID == "" {
		return nil, ErrInvalidBookingID
	}
	return s.paymentRepo.GetByBookingID(ctx, bookingID)
}

// MarkPaid records out-of-band settlement of a payment.
func (s *PaymentService) MarkPaid(ctx context.Context, paymentID string) error {
	if paymentID == "" {
		return ErrInvalidBookingID
	}
	return s.paymentRepo.UpdateStatus(ctx, paymentID, domain.PaymentStatusPaid)
}
