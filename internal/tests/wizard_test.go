package tests

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"safepath/internal/domain"
	"safepath/internal/draft"
	"safepath/internal/service"
)

// ──────────────────────────────────────────────
// 1. WIZARD STEP ACCUMULATION
// ──────────────────────────────────────────────

func newWizardService(drafts draft.Store, bookingRepo *MockBookingRepository, paymentRepo *MockPaymentRepository, locks *MockLockStore) *service.WizardService {
	return service.NewWizardService(drafts, bookingRepo, paymentRepo, locks, nil)
}

func validAddressesRequest() service.SetAddressesRequest {
	return service.SetAddressesRequest{
		FromAddress: "Siriraj Hospital",
		ToAddress:   "42 Sukhumvit Rd",
		FromCoord:   &domain.Coordinate{Lat: 13.7563, Lng: 100.5018},
		ToCoord:     &domain.Coordinate{Lat: 13.7653, Lng: 100.5018},
	}
}

func TestWizard_StepsAccumulateIntoOneDraft(t *testing.T) {
	t.Parallel()

	drafts := draft.NewMemoryStore()
	wizard := newWizardService(drafts, NewMockBookingRepository(), NewMockPaymentRepository(), NewMockLockStore())
	ctx := context.Background()

	if _, err := wizard.Start(ctx, "user-1"); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if _, err := wizard.SetAddresses(ctx, "user-1", validAddressesRequest()); err != nil {
		t.Fatalf("address step failed: %v", err)
	}

	pickup := time.Date(2026, 9, 15, 9, 30, 0, 0, time.UTC)
	if _, err := wizard.SetSchedule(ctx, "user-1", pickup); err != nil {
		t.Fatalf("schedule step failed: %v", err)
	}

	if _, err := wizard.SetPassengerInfo(ctx, "user-1", service.SetPassengerInfoRequest{
		PassengerType: domain.PassengerTypeElderly,
		Equipment:     []string{"wheelchair"},
	}); err != nil {
		t.Fatalf("passenger step failed: %v", err)
	}

	d, err := wizard.Summary(ctx, "user-1")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if d.FromAddress != "Siriraj Hospital" || d.ToAddress != "42 Sukhumvit Rd" {
		t.Errorf("addresses lost: %+v", d)
	}
	if d.ScheduledAt == nil || !d.ScheduledAt.Equal(pickup) {
		t.Errorf("schedule lost: %+v", d.ScheduledAt)
	}
	if d.PassengerType != domain.PassengerTypeElderly {
		t.Errorf("passenger type lost: %q", d.PassengerType)
	}
	if d.DistanceKm == nil || d.Fare == nil {
		t.Fatal("expected derived distance and fare on the draft")
	}
	if *d.DistanceKm != 1.0 || *d.Fare != 50 {
		t.Errorf("expected 1.0 km / fare 50, got %v km / %d", *d.DistanceKm, *d.Fare)
	}
}

func TestWizard_StepsCanRunWithoutExplicitStart(t *testing.T) {
	t.Parallel()

	drafts := draft.NewMemoryStore()
	wizard := newWizardService(drafts, NewMockBookingRepository(), NewMockPaymentRepository(), NewMockLockStore())

	d, err := wizard.SetAddresses(context.Background(), "user-1", validAddressesRequest())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if d.FromAddress == "" {
		t.Error("expected a fresh draft to be created on first step")
	}
}

func TestWizard_StartDiscardsPreviousDraft(t *testing.T) {
	t.Parallel()

	drafts := draft.NewMemoryStore()
	wizard := newWizardService(drafts, NewMockBookingRepository(), NewMockPaymentRepository(), NewMockLockStore())
	ctx := context.Background()

	if _, err := wizard.SetAddresses(ctx, "user-1", validAddressesRequest()); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if _, err := wizard.Start(ctx, "user-1"); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	d, err := wizard.Summary(ctx, "user-1")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if d.FromAddress != "" || d.DistanceKm != nil {
		t.Errorf("expected a fresh draft after Start, got %+v", d)
	}
}

// ──────────────────────────────────────────────
// 2. ADDRESS STEP VALIDATION
// ──────────────────────────────────────────────

func TestWizard_AddressStep_RequiresBothAddresses(t *testing.T) {
	t.Parallel()

	drafts := draft.NewMemoryStore()
	wizard := newWizardService(drafts, NewMockBookingRepository(), NewMockPaymentRepository(), NewMockLockStore())

	req := validAddressesRequest()
	req.ToAddress = ""

	_, err := wizard.SetAddresses(context.Background(), "user-1", req)
	if !errors.Is(err, service.ErrMissingAddress) {
		t.Errorf("expected ErrMissingAddress, got: %v", err)
	}
}

func TestWizard_AddressStep_RequiresBothCoordinates(t *testing.T) {
	t.Parallel()

	drafts := draft.NewMemoryStore()
	wizard := newWizardService(drafts, NewMockBookingRepository(), NewMockPaymentRepository(), NewMockLockStore())

	req := validAddressesRequest()
	req.ToCoord = nil

	_, err := wizard.SetAddresses(context.Background(), "user-1", req)
	if !errors.Is(err, service.ErrMissingCoordinates) {
		t.Errorf("expected ErrMissingCoordinates, got: %v", err)
	}
}

func TestWizard_AddressStep_RejectsOutOfRangeCoordinates(t *testing.T) {
	t.Parallel()

	drafts := draft.NewMemoryStore()
	wizard := newWizardService(drafts, NewMockBookingRepository(), NewMockPaymentRepository(), NewMockLockStore())

	req := validAddressesRequest()
	req.FromCoord = &domain.Coordinate{Lat: 91, Lng: 100.5018}

	_, err := wizard.SetAddresses(context.Background(), "user-1", req)
	if !errors.Is(err, service.ErrInvalidCoordinates) {
		t.Errorf("expected ErrInvalidCoordinates, got: %v", err)
	}
}

func TestWizard_EditingAddresses_RecomputesFare(t *testing.T) {
	t.Parallel()

	drafts := draft.NewMemoryStore()
	wizard := newWizardService(drafts, NewMockBookingRepository(), NewMockPaymentRepository(), NewMockLockStore())
	ctx := context.Background()

	first, err := wizard.SetAddresses(ctx, "user-1", validAddressesRequest())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	// Move the drop-off further away and re-submit the step.
	req := validAddressesRequest()
	req.ToCoord = &domain.Coordinate{Lat: 13.77739, Lng: 100.5018}

	second, err := wizard.SetAddresses(ctx, "user-1", req)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if *second.Fare == *first.Fare {
		t.Error("expected fare to change when the route changes")
	}
	if *second.DistanceKm != 2.3 || *second.Fare != 115 {
		t.Errorf("expected 2.3 km / fare 115, got %v km / %d", *second.DistanceKm, *second.Fare)
	}
}

// ──────────────────────────────────────────────
// 3. PASSENGER AND SCHEDULE STEPS
// ──────────────────────────────────────────────

func TestWizard_ScheduleStep_RejectsZeroTime(t *testing.T) {
	t.Parallel()

	drafts := draft.NewMemoryStore()
	wizard := newWizardService(drafts, NewMockBookingRepository(), NewMockPaymentRepository(), NewMockLockStore())

	_, err := wizard.SetSchedule(context.Background(), "user-1", time.Time{})
	if !errors.Is(err, service.ErrInvalidSchedule) {
		t.Errorf("expected ErrInvalidSchedule, got: %v", err)
	}
}

func TestWizard_PassengerStep_RejectsUnknownType(t *testing.T) {
	t.Parallel()

	drafts := draft.NewMemoryStore()
	wizard := newWizardService(drafts, NewMockBookingRepository(), NewMockPaymentRepository(), NewMockLockStore())

	_, err := wizard.SetPassengerInfo(context.Background(), "user-1", service.SetPassengerInfoRequest{
		PassengerType: "ROBOT",
	})
	if !errors.Is(err, service.ErrInvalidPassengerType) {
		t.Errorf("expected ErrInvalidPassengerType, got: %v", err)
	}
}

func TestWizard_PassengerStep_AppendsOtherEquipment(t *testing.T) {
	t.Parallel()

	drafts := draft.NewMemoryStore()
	wizard := newWizardService(drafts, NewMockBookingRepository(), NewMockPaymentRepository(), NewMockLockStore())

	d, err := wizard.SetPassengerInfo(context.Background(), "user-1", service.SetPassengerInfoRequest{
		PassengerType:  domain.PassengerTypePatient,
		Equipment:      []string{"wheelchair", "oxygen tank"},
		OtherEquipment: "IV stand",
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if len(d.Equipment) != 3 || d.Equipment[2] != "IV stand" {
		t.Errorf("expected free-text equipment appended, got %v", d.Equipment)
	}
}

// ──────────────────────────────────────────────
// 4. CONFIRMATION
// ──────────────────────────────────────────────

func completeDraft(t *testing.T, wizard *service.WizardService, userID string) {
	t.Helper()
	ctx := context.Background()

	if _, err := wizard.SetAddresses(ctx, userID, validAddressesRequest()); err != nil {
		t.Fatalf("address step failed: %v", err)
	}
	if _, err := wizard.SetSchedule(ctx, userID, time.Date(2026, 9, 15, 9, 30, 0, 0, time.UTC)); err != nil {
		t.Fatalf("schedule step failed: %v", err)
	}
	if _, err := wizard.SetPassengerInfo(ctx, userID, service.SetPassengerInfoRequest{
		PassengerType: domain.PassengerTypeElderly,
	}); err != nil {
		t.Fatalf("passenger step failed: %v", err)
	}
}

func TestWizard_Confirm_CreatesBookingAndClearsDraft(t *testing.T) {
	t.Parallel()

	drafts := draft.NewMemoryStore()
	bookingRepo := NewMockBookingRepository()
	paymentRepo := NewMockPaymentRepository()
	wizard := newWizardService(drafts, bookingRepo, paymentRepo, NewMockLockStore())
	ctx := context.Background()

	completeDraft(t, wizard, "user-1")

	result, err := wizard.Confirm(ctx, "user-1", domain.PaymentMethodPromptPay)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if result.Booking == nil || result.Booking.ID == "" {
		t.Fatal("expected a booking to be created")
	}
	if result.Booking.Status != domain.BookingStatusPending {
		t.Errorf("expected status PENDING, got %s", result.Booking.Status)
	}
	if result.Booking.Fare != 50 || result.Booking.DistanceKm != 1.0 {
		t.Errorf("expected fare 50 over 1.0 km, got %d over %v", result.Booking.Fare, result.Booking.DistanceKm)
	}

	if result.Payment == nil {
		t.Fatal("expected a payment record")
	}
	if result.Payment.Method != domain.PaymentMethodPromptPay || result.Payment.Amount != 50 {
		t.Errorf("unexpected payment: %+v", result.Payment)
	}
	if result.Payment.Status != domain.PaymentStatusPending {
		t.Errorf("expected payment PENDING, got %s", result.Payment.Status)
	}

	d, _ := drafts.Get(ctx, "user-1")
	if d != nil {
		t.Error("expected draft cleared after confirmation")
	}
}

func TestWizard_Confirm_DefaultsToCash(t *testing.T) {
	t.Parallel()

	drafts := draft.NewMemoryStore()
	wizard := newWizardService(drafts, NewMockBookingRepository(), NewMockPaymentRepository(), NewMockLockStore())

	completeDraft(t, wizard, "user-1")

	result, err := wizard.Confirm(context.Background(), "user-1", "")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if result.Booking.PaymentMethod != domain.PaymentMethodCash {
		t.Errorf("expected CASH default, got %s", result.Booking.PaymentMethod)
	}
}

func TestWizard_Confirm_RejectsUnknownPaymentMethod(t *testing.T) {
	t.Parallel()

	drafts := draft.NewMemoryStore()
	wizard := newWizardService(drafts, NewMockBookingRepository(), NewMockPaymentRepository(), NewMockLockStore())

	completeDraft(t, wizard, "user-1")

	_, err := wizard.Confirm(context.Background(), "user-1", "BARTER")
	if !errors.Is(err, service.ErrInvalidPaymentMethod) {
		t.Errorf("expected ErrInvalidPaymentMethod, got: %v", err)
	}
}

func TestWizard_Confirm_RequiresAuthentication(t *testing.T) {
	t.Parallel()

	drafts := draft.NewMemoryStore()
	wizard := newWizardService(drafts, NewMockBookingRepository(), NewMockPaymentRepository(), NewMockLockStore())

	_, err := wizard.Confirm(context.Background(), "", domain.PaymentMethodCash)
	if !errors.Is(err, service.ErrNotAuthenticated) {
		t.Errorf("expected ErrNotAuthenticated, got: %v", err)
	}
}

func TestWizard_Confirm_WithoutDraft_Fails(t *testing.T) {
	t.Parallel()

	drafts := draft.NewMemoryStore()
	wizard := newWizardService(drafts, NewMockBookingRepository(), NewMockPaymentRepository(), NewMockLockStore())

	_, err := wizard.Confirm(context.Background(), "user-1", domain.PaymentMethodCash)
	if !errors.Is(err, service.ErrNoDraft) {
		t.Errorf("expected ErrNoDraft, got: %v", err)
	}
}

func TestWizard_Confirm_IncompleteDraft_Fails(t *testing.T) {
	t.Parallel()

	drafts := draft.NewMemoryStore()
	wizard := newWizardService(drafts, NewMockBookingRepository(), NewMockPaymentRepository(), NewMockLockStore())
	ctx := context.Background()

	// Addresses only; schedule never set.
	if _, err := wizard.SetAddresses(ctx, "user-1", validAddressesRequest()); err != nil {
		t.Fatalf("address step failed: %v", err)
	}

	_, err := wizard.Confirm(ctx, "user-1", domain.PaymentMethodCash)
	if !errors.Is(err, service.ErrDraftIncomplete) {
		t.Errorf("expected ErrDraftIncomplete, got: %v", err)
	}
}

func TestWizard_Confirm_StorageFailure_PreservesDraft(t *testing.T) {
	t.Parallel()

	drafts := draft.NewMemoryStore()
	bookingRepo := NewMockBookingRepository()
	bookingRepo.CreateError = errors.New("connection refused")
	wizard := newWizardService(drafts, bookingRepo, NewMockPaymentRepository(), NewMockLockStore())
	ctx := context.Background()

	completeDraft(t, wizard, "user-1")

	_, err := wizard.Confirm(ctx, "user-1", domain.PaymentMethodCash)
	if err == nil {
		t.Fatal("expected error from booking storage")
	}

	d, _ := drafts.Get(ctx, "user-1")
	if d == nil {
		t.Fatal("expected draft preserved after failed confirmation")
	}
	if d.FromAddress != "Siriraj Hospital" {
		t.Errorf("expected draft contents intact, got %+v", d)
	}

	// A retry after the outage succeeds with the same draft.
	bookingRepo.CreateError = nil
	result, err := wizard.Confirm(ctx, "user-1", domain.PaymentMethodCash)
	if err != nil {
		t.Fatalf("expected retry to succeed, got: %v", err)
	}
	if result.Booking.FromAddress != "Siriraj Hospital" {
		t.Errorf("unexpected booking: %+v", result.Booking)
	}
}

func TestWizard_Confirm_DoubleTap_CreatesOneBooking(t *testing.T) {
	t.Parallel()

	drafts := draft.NewMemoryStore()
	bookingRepo := NewMockBookingRepository()
	wizard := newWizardService(drafts, bookingRepo, NewMockPaymentRepository(), NewMockLockStore())
	ctx := context.Background()

	completeDraft(t, wizard, "user-1")

	if _, err := wizard.Confirm(ctx, "user-1", domain.PaymentMethodCash); err != nil {
		t.Fatalf("first confirm failed: %v", err)
	}

	// The second tap lands after the first completed; the draft is gone.
	_, err := wizard.Confirm(ctx, "user-1", domain.PaymentMethodCash)
	if !errors.Is(err, service.ErrNoDraft) {
		t.Errorf("expected ErrNoDraft on the second tap, got: %v", err)
	}

	if got := atomic.LoadInt32(&bookingRepo.CreateCallCount); got != 1 {
		t.Errorf("expected exactly 1 booking created, got %d", got)
	}
}

func TestWizard_Confirm_WhileSubmissionInFlight_Fails(t *testing.T) {
	t.Parallel()

	drafts := draft.NewMemoryStore()
	bookingRepo := NewMockBookingRepository()
	locks := NewMockLockStore()
	locks.ForceAcquireFailure = true
	wizard := newWizardService(drafts, bookingRepo, NewMockPaymentRepository(), locks)
	ctx := context.Background()

	completeDraft(t, wizard, "user-1")

	_, err := wizard.Confirm(ctx, "user-1", domain.PaymentMethodCash)
	if !errors.Is(err, service.ErrSubmissionInProgress) {
		t.Errorf("expected ErrSubmissionInProgress, got: %v", err)
	}
	if got := atomic.LoadInt32(&bookingRepo.CreateCallCount); got != 0 {
		t.Errorf("expected no booking created, got %d", got)
	}

	d, _ := drafts.Get(ctx, "user-1")
	if d == nil {
		t.Error("expected draft preserved while submission is in flight")
	}
}

func TestWizard_Confirm_PaymentFailure_BookingStands(t *testing.T) {
	t.Parallel()

	drafts := draft.NewMemoryStore()
	bookingRepo := NewMockBookingRepository()
	paymentRepo := NewMockPaymentRepository()
	paymentRepo.CreateError = errors.New("connection refused")
	wizard := newWizardService(drafts, bookingRepo, paymentRepo, NewMockLockStore())
	ctx := context.Background()

	completeDraft(t, wizard, "user-1")

	result, err := wizard.Confirm(ctx, "user-1", domain.PaymentMethodCash)
	if err != nil {
		t.Fatalf("expected confirmation to succeed, got: %v", err)
	}
	if result.Booking == nil {
		t.Fatal("expected booking despite payment record failure")
	}
	if result.Payment != nil {
		t.Errorf("expected no payment record, got %+v", result.Payment)
	}

	d, _ := drafts.Get(ctx, "user-1")
	if d != nil {
		t.Error("expected draft cleared; the booking was persisted")
	}
}

// ──────────────────────────────────────────────
// 5. DERIVED FIELD CONSISTENCY
// ──────────────────────────────────────────────

func TestDraft_RemovingCoordinate_ClearsDerivedFields(t *testing.T) {
	t.Parallel()

	d := &domain.Draft{}
	d.SetRoute("A", "B",
		&domain.Coordinate{Lat: 13.7563, Lng: 100.5018},
		&domain.Coordinate{Lat: 13.7653, Lng: 100.5018})

	if d.DistanceKm == nil || d.Fare == nil {
		t.Fatal("expected derived fields after setting both coordinates")
	}

	// The drop-off is edited and its coordinate is no longer resolved.
	d.SetRoute("A", "somewhere new", d.FromCoord, nil)

	if d.DistanceKm != nil || d.Fare != nil {
		t.Error("expected stale distance and fare to be cleared")
	}
}
