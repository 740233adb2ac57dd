package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"safepath/internal/domain"
	"safepath/internal/repository"
	"safepath/internal/service"
)

func seedBooking(repo *MockBookingRepository, id, userID string, status domain.BookingStatus) *domain.Booking {
	b := &domain.Booking{
		ID:            id,
		UserID:        userID,
		FromAddress:   "Siriraj Hospital",
		ToAddress:     "Home",
		ScheduledAt:   time.Date(2026, 9, 15, 9, 30, 0, 0, time.UTC),
		PassengerType: domain.PassengerTypeElderly,
		DistanceKm:    1.0,
		Fare:          50,
		PaymentMethod: domain.PaymentMethodCash,
		Status:        status,
		CreatedAt:     time.Now(),
	}
	repo.AddBooking(b)
	return b
}

// ──────────────────────────────────────────────
// 1. LISTING AND OWNERSHIP
// ──────────────────────────────────────────────

func TestBooking_List_FiltersByStatus(t *testing.T) {
	t.Parallel()

	repo := NewMockBookingRepository()
	seedBooking(repo, "b-1", "user-1", domain.BookingStatusUpcoming)
	seedBooking(repo, "b-2", "user-1", domain.BookingStatusCompleted)
	seedBooking(repo, "b-3", "user-2", domain.BookingStatusUpcoming)

	svc := service.NewBookingService(repo, nil)

	bookings, err := svc.List(context.Background(), "user-1", domain.BookingStatusUpcoming)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(bookings) != 1 || bookings[0].ID != "b-1" {
		t.Errorf("expected only user-1's upcoming booking, got %d bookings", len(bookings))
	}

	all, err := svc.List(context.Background(), "user-1", "")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 bookings without a status filter, got %d", len(all))
	}
}

func TestBooking_Get_RejectsOtherUsersBooking(t *testing.T) {
	t.Parallel()

	repo := NewMockBookingRepository()
	seedBooking(repo, "b-1", "user-1", domain.BookingStatusUpcoming)

	svc := service.NewBookingService(repo, nil)

	_, err := svc.Get(context.Background(), "user-2", "b-1")
	if !errors.Is(err, service.ErrBookingNotOwned) {
		t.Errorf("expected ErrBookingNotOwned, got: %v", err)
	}
}

func TestBooking_Get_UnknownID_NotFound(t *testing.T) {
	t.Parallel()

	svc := service.NewBookingService(NewMockBookingRepository(), nil)

	_, err := svc.Get(context.Background(), "user-1", "missing")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
}

// ──────────────────────────────────────────────
// 2. CANCELLATION
// ──────────────────────────────────────────────

func TestBooking_Cancel_UpcomingBooking_Succeeds(t *testing.T) {
	t.Parallel()

	repo := NewMockBookingRepository()
	seedBooking(repo, "b-1", "user-1", domain.BookingStatusUpcoming)

	svc := service.NewBookingService(repo, nil)

	booking, err := svc.Cancel(context.Background(), service.CancelRequest{
		UserID:    "user-1",
		BookingID: "b-1",
		Reason:    "patient discharged early",
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if booking.Status != domain.BookingStatusCancelled {
		t.Errorf("expected CANCELLED, got %s", booking.Status)
	}
	if booking.CancelledAt.IsZero() {
		t.Error("expected cancellation timestamp to be set")
	}
	if booking.CancelReason != "patient discharged early" {
		t.Errorf("expected reason recorded, got %q", booking.CancelReason)
	}

	stored := repo.GetBooking("b-1")
	if stored.Status != domain.BookingStatusCancelled {
		t.Errorf("expected cancellation persisted, stored status %s", stored.Status)
	}
}

func TestBooking_Cancel_AlreadyCancelled_Fails(t *testing.T) {
	t.Parallel()

	repo := NewMockBookingRepository()
	seedBooking(repo, "b-1", "user-1", domain.BookingStatusCancelled)

	svc := service.NewBookingService(repo, nil)

	_, err := svc.Cancel(context.Background(), service.CancelRequest{UserID: "user-1", BookingID: "b-1"})
	if !errors.Is(err, service.ErrBookingAlreadyCancelled) {
		t.Errorf("expected ErrBookingAlreadyCancelled, got: %v", err)
	}
}

func TestBooking_Cancel_CompletedBooking_Fails(t *testing.T) {
	t.Parallel()

	repo := NewMockBookingRepository()
	seedBooking(repo, "b-1", "user-1", domain.BookingStatusCompleted)

	svc := service.NewBookingService(repo, nil)

	_, err := svc.Cancel(context.Background(), service.CancelRequest{UserID: "user-1", BookingID: "b-1"})
	if !errors.Is(err, service.ErrBookingNotCancellable) {
		t.Errorf("expected ErrBookingNotCancellable, got: %v", err)
	}
}

// ──────────────────────────────────────────────
// 3. COMPLETION
// ──────────────────────────────────────────────

func TestBooking_Complete_UpcomingBooking_Succeeds(t *testing.T) {
	t.Parallel()

	repo := NewMockBookingRepository()
	seedBooking(repo, "b-1", "user-1", domain.BookingStatusUpcoming)

	svc := service.NewBookingService(repo, nil)

	booking, err := svc.Complete(context.Background(), "user-1", "b-1")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if booking.Status != domain.BookingStatusCompleted {
		t.Errorf("expected COMPLETED, got %s", booking.Status)
	}
}

func TestBooking_Complete_CancelledBooking_Fails(t *testing.T) {
	t.Parallel()

	repo := NewMockBookingRepository()
	seedBooking(repo, "b-1", "user-1", domain.BookingStatusCancelled)

	svc := service.NewBookingService(repo, nil)

	_, err := svc.Complete(context.Background(), "user-1", "b-1")
	if !errors.Is(err, service.ErrBookingNotCompletable) {
		t.Errorf("expected ErrBookingNotCompletable, got: %v", err)
	}
}
