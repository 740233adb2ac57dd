package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"safepath/internal/domain"
	"safepath/internal/repository"
)

// BookingRepository is a PostgreSQL implementation of repository.BookingRepository.
type BookingRepository struct {
	q Querier
}

// NewBookingRepository creates a new PostgreSQL booking repository.
func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{q: db}
}

// NewBookingRepositoryWithTx creates a booking repository using a transaction.
func NewBookingRepositoryWithTx(tx *sql.Tx) *BookingRepository {
	return &BookingRepository{q: tx}
}

const bookingColumns = `id, user_id, from_address, to_address, from_lat, from_lng, to_lat, to_lng, scheduled_at, passenger_type, equipment, distance_km, fare, payment_method, status, cancelled_at, cancel_reason, created_at`

// Create persists a new booking.
func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	var cancelledAt sql.NullTime
	if !booking.CancelledAt.IsZero() {
		cancelledAt = sql.NullTime{Time: booking.CancelledAt, Valid: true}
	}

	var cancelReason sql.NullString
	if booking.CancelReason != "" {
		cancelReason = sql.NullString{String: booking.CancelReason, Valid: true}
	}

	_, err := r.q.ExecContext(ctx, query,
		booking.ID,
		booking.UserID,
		booking.FromAddress,
		booking.ToAddress,
		booking.FromLat,
		booking.FromLng,
		booking.ToLat,
		booking.ToLng,
		booking.ScheduledAt,
		booking.PassengerType,
		pq.Array(booking.Equipment),
		booking.DistanceKm,
		booking.Fare,
		booking.PaymentMethod,
		booking.Status,
		cancelledAt,
		cancelReason,
		booking.CreatedAt,
	)

	return err
}

// GetByID retrieves a booking by ID.
func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return booking, nil
}

// ListByUser retrieves a user's bookings, newest first.
func (r *BookingRepository) ListByUser(ctx context.Context, userID string, status domain.BookingStatus) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1`
	args := []any{userID}

	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC LIMIT 100`

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*domain.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}

// Update updates an existing booking.
func (r *BookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	query := `
		UPDATE bookings
		SET from_address = $1, to_address = $2, from_lat = $3, from_lng = $4, to_lat = $5, to_lng = $6, scheduled_at = $7, passenger_type = $8, equipment = $9, distance_km = $10, fare = $11, payment_method = $12, status = $13, cancelled_at = $14, cancel_reason = $15
		WHERE id = $16
	`

	var cancelledAt sql.NullTime
	if !booking.CancelledAt.IsZero() {
		cancelledAt = sql.NullTime{Time: booking.CancelledAt, Valid: true}
	}

	var cancelReason sql.NullString
	if booking.CancelReason != "" {
		cancelReason = sql.NullString{String: booking.CancelReason, Valid: true}
	}

	result, err := r.q.ExecContext(ctx, query,
		booking.FromAddress,
		booking.ToAddress,
		booking.FromLat,
		booking.FromLng,
		booking.ToLat,
		booking.ToLng,
		booking.ScheduledAt,
		booking.PassengerType,
		pq.Array(booking.Equipment),
		booking.DistanceKm,
		booking.Fare,
		booking.PaymentMethod,
		booking.Status,
		cancelledAt,
		cancelReason,
		booking.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var equipment pq.StringArray
	var cancelledAt sql.NullTime
	var cancelReason sql.NullString

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.FromAddress,
		&booking.ToAddress,
		&booking.FromLat,
		&booking.FromLng,
		&booking.ToLat,
		&booking.ToLng,
		&booking.ScheduledAt,
		&booking.PassengerType,
		&equipment,
		&booking.DistanceKm,
		&booking.Fare,
		&booking.PaymentMethod,
		&booking.Status,
		&cancelledAt,
		&cancelReason,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.Equipment = []string(equipment)
	if cancelledAt.Valid {
		booking.CancelledAt = cancelledAt.Time
	}
	if cancelReason.Valid {
		booking.CancelReason = cancelReason.String
	}

	return &booking, nil
}
