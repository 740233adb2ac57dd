package service

import (
	"context"
	"time"

	"safepath/internal/domain"
	"safepath/internal/repository"
)

// BookingService handles the lifecycle of persisted bookings. It never
// touches the wizard draft; once a booking exists it is owned by storage and
// mutated only through these status transitions.
type BookingService struct {
	bookingRepo         repository.BookingRepository
	notificationService *NotificationService
}

// NewBookingService creates a new BookingService.
func NewBookingService(bookingRepo repository.BookingRepository, notificationService *NotificationService) *BookingService {
	return &BookingService{
		bookingRepo:         bookingRepo,
		notificationService: notificationService,
	}
}

// List retrieves a user's bookings, optionally filtered by status.
func (s *BookingService) List(ctx context.Context, userID string, status domain.BookingStatus) ([]*domain.Booking, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return s.bookingRepo.ListByUser(ctx, userID, status)
}

// Get retrieves one of the user's bookings.
func (s *BookingService) Get(ctx context.Context, userID, bookingID string) (*domain.Booking, error) {
	if bookingID == "" {
		return nil, ErrInvalidBookingID
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, ErrBookingNotOwned
	}
	return booking, nil
}

// CancelRequest contains the parameters for cancelling a booking.
type CancelRequest struct {
	UserID    string
	BookingID string
	Reason    string
}

// Cancel cancels a pending or upcoming booking.
func (s *BookingService) Cancel(ctx context.Context, req CancelRequest) (*domain.Booking, error) {
	booking, err := s.Get(ctx, req.UserID, req.BookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status == domain.BookingStatusCancelled {
		return nil, ErrBookingAlreadyCancelled
	}
	if booking.Status != domain.BookingStatusPending && booking.Status != domain.BookingStatusUpcoming {
		return nil, ErrBookingNotCancellable
	}

	booking.Status = domain.BookingStatusCancelled
	booking.CancelledAt = time.Now()
	booking.CancelReason = req.Reason

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	if s.notificationService != nil {
		_ = s.notificationService.NotifyBookingCancelled(ctx, booking, req.Reason)
	}

	return booking, nil
}

// Complete marks an upcoming booking as completed.
func (s *BookingService) Complete(ctx context.Context, userID, bookingID string) (*domain.Booking, error) {
	booking, err := s.Get(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status != domain.BookingStatusPending && booking.Status != domain.BookingStatusUpcoming {
		return nil, ErrBookingNotCompletable
	}

	booking.Status = domain.BookingStatusCompleted

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	if s.notificationService != nil {
		_ = s.notificationService.NotifyBookingCompleted(ctx, booking)
	}

	return booking, nil
}
