package repository

import (
	"context"

	"safepath/internal/domain"
)

// BookingRepository defines the persistence operations for bookings.
type BookingRepository interface {
	// Create persists a new booking.
	Create(ctx context.Context, booking *domain.Booking) error

	// GetByID retrieves a booking by ID.
	GetByID(ctx context.Context, id string) (*domain.Booking, error)

	// ListByUser retrieves a user's bookings, optionally filtered by status.
	// An empty status means no filter.
	ListByUser(ctx context.Context, userID string, status domain.BookingStatus) ([]*domain.Booking, error)

	// Update updates an existing booking.
	Update(ctx context.Context, booking *domain.Booking) error
}
