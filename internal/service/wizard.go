package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"safepath/internal/domain"
	"safepath/internal/draft"
	"safepath/internal/redis"
	"safepath/internal/repository"
)

// submitLockTTL covers the window of one confirmation round trip. A second
// confirm attempt inside this window is treated as a duplicate.
const submitLockTTL = 30 * time.Second

// WizardService drives the booking wizard: it accumulates a draft across the
// address, schedule and passenger steps and turns it into a persisted
// booking on payment confirmation. The draft is the unit of progress; no
// booking exists until Confirm succeeds, and abandoning the wizard leaves no
// persisted side effect.
type WizardService struct {
	drafts              draft.Store
	bookingRepo         repository.BookingRepository
	paymentRepo         repository.PaymentRepository
	locks               redis.LockStoreInterface
	notificationService *NotificationService
}

// NewWizardService creates a new WizardService.
func NewWizardService(
	drafts draft.Store,
	bookingRepo repository.BookingRepository,
	paymentRepo repository.PaymentRepository,
	locks redis.LockStoreInterface,
	notificationService *NotificationService,
) *WizardService {
	return &WizardService{
		drafts:              drafts,
		bookingRepo:         bookingRepo,
		paymentRepo:         paymentRepo,
		locks:               locks,
		notificationService: notificationService,
	}
}

// Start begins a fresh wizard pass. Any prior draft is discarded
// unconditionally; drafts never merge across booking attempts.
func (s *WizardService) Start(ctx context.Context, userID string) (*domain.Draft, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	d := &domain.Draft{}
	if err := s.drafts.Save(ctx, userID, d); err != nil {
		return nil, err
	}
	return d, nil
}

// SetAddressesRequest contains the parameters for the address step.
type SetAddressesRequest struct {
	FromAddress string
	ToAddress   string
	FromCoord   *domain.Coordinate
	ToCoord     *domain.Coordinate
}

// SetAddresses records the pickup and drop-off locations and recomputes the
// draft's distance and fare. Both addresses and both resolved coordinates
// are required to advance.
func (s *WizardService) SetAddresses(ctx context.Context, userID string, req SetAddressesRequest) (*domain.Draft, error) {
	if req.FromAddress == "" || req.ToAddress == "" {
		return nil, ErrMissingAddress
	}
	if req.FromCoord == nil || req.ToCoord == nil {
		return nil, ErrMissingCoordinates
	}
	if !req.FromCoord.Valid() || !req.ToCoord.Valid() {
		return nil, ErrInvalidCoordinates
	}

	return s.updateDraft(ctx, userID, func(d *domain.Draft) {
		d.SetRoute(req.FromAddress, req.ToAddress, req.FromCoord, req.ToCoord)
	})
}

// SetSchedule records the structured pickup time.
func (s *WizardService) SetSchedule(ctx context.Context, userID string, at time.Time) (*domain.Draft, error) {
	if at.IsZero() {
		return nil, ErrInvalidSchedule
	}

	return s.updateDraft(ctx, userID, func(d *domain.Draft) {
		d.SetSchedule(at)
	})
}

// SetPassengerInfoRequest contains the parameters for the passenger step.
type SetPassengerInfoRequest struct {
	PassengerType  domain.PassengerType
	Equipment      []string
	OtherEquipment string
}

// SetPassengerInfo records the passenger category and equipment needs.
func (s *WizardService) SetPassengerInfo(ctx context.Context, userID string, req SetPassengerInfoRequest) (*domain.Draft, error) {
	if _, err := ValidatePassengerType(string(req.PassengerType)); err != nil {
		return nil, err
	}

	return s.updateDraft(ctx, userID, func(d *domain.Draft) {
		d.SetPassenger(req.PassengerType, req.Equipment, req.OtherEquipment)
	})
}

// Summary returns the current draft for the read-only summary step.
func (s *WizardService) Summary(ctx context.Context, userID string) (*domain.Draft, error) {
	d, err := s.drafts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrNoDraft
	}
	return d, nil
}

// ConfirmResult contains the outcome of a successful confirmation.
type ConfirmResult struct {
	Booking *domain.Booking
	Payment *domain.Payment
}

// Confirm finalizes the draft into a persisted booking.
//
// The submit lock makes a double-tap harmless: the second attempt fails to
// acquire the lock and no second booking is created. The draft is cleared
// only after the booking create succeeded, so a storage failure preserves
// the user's progress for a retry.
func (s *WizardService) Confirm(ctx context.Context, userID string, method domain.PaymentMethod) (*ConfirmResult, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	method, err := ValidatePaymentMethod(string(method))
	if err != nil {
		return nil, err
	}

	d, err := s.drafts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrNoDraft
	}
	if d.FromAddress == "" || d.ToAddress == "" || !d.HasRoute() || d.ScheduledAt == nil {
		return nil, ErrDraftIncomplete
	}

	acquired, err := s.locks.AcquireSubmitLock(ctx, userID, submitLockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, ErrSubmissionInProgress
	}
	defer func() {
		_ = s.locks.ReleaseSubmitLock(ctx, userID)
	}()

	now := time.Now()
	booking := &domain.Booking{
		ID:            uuid.New().String(),
		UserID:        userID,
		FromAddress:   d.FromAddress,
		ToAddress:     d.ToAddress,
		FromLat:       d.FromCoord.Lat,
		FromLng:       d.FromCoord.Lng,
		ToLat:         d.ToCoord.Lat,
		ToLng:         d.ToCoord.Lng,
		ScheduledAt:   *d.ScheduledAt,
		PassengerType: d.PassengerType,
		Equipment:     d.Equipment,
		PaymentMethod: method,
		Status:        domain.BookingStatusPending,
		CreatedAt:     now,
	}
	if d.DistanceKm != nil {
		booking.DistanceKm = *d.DistanceKm
	}
	if d.Fare != nil {
		booking.Fare = *d.Fare
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		// Draft intentionally preserved: the user retries from the summary.
		return nil, err
	}

	payment := &domain.Payment{
		ID:        uuid.New().String(),
		BookingID: booking.ID,
		UserID:    userID,
		Method:    method,
		Amount:    booking.Fare,
		Status:    domain.PaymentStatusPending,
		CreatedAt: now,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		// The booking exists; surface it and let settlement reconcile later.
		payment = nil
	}

	// The booking is persisted. Clearing must happen before the user can
	// navigate back, so duplicate resubmission finds no draft.
	if err := s.drafts.Clear(ctx, userID); err != nil {
		return nil, err
	}

	if s.notificationService != nil {
		_ = s.notificationService.NotifyBookingConfirmed(ctx, booking)
	}

	return &ConfirmResult{Booking: booking, Payment: payment}, nil
}

// updateDraft loads the draft, applies the step mutation and saves the
// result. Loading an absent draft starts a fresh one, so steps can be
// revisited without losing fields written by other steps.
func (s *WizardService) updateDraft(ctx context.Context, userID string, apply func(*domain.Draft)) (*domain.Draft, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	d, err := s.drafts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		d = &domain.Draft{}
	}

	apply(d)

	if err := s.drafts.Save(ctx, userID, d); err != nil {
		return nil, err
	}
	return d, nil
}

// ValidatePaymentMethod validates a payment method string.
func ValidatePaymentMethod(method string) (domain.PaymentMethod, error) {
	switch domain.PaymentMethod(method) {
	case domain.PaymentMethodCash, domain.PaymentMethodCard, domain.PaymentMethodPromptPay:
		return domain.PaymentMethod(method), nil
	case "":
		return domain.PaymentMethodCash, nil // Default to cash
	default:
		return "", ErrInvalidPaymentMethod
	}
}

// ValidatePassengerType validates a passenger type string.
func ValidatePassengerType(passengerType string) (domain.PassengerType, error) {
	switch domain.PassengerType(passengerType) {
	case domain.PassengerTypeElderly, domain.PassengerTypePatient, domain.PassengerTypeDisabled:
		return domain.PassengerType(passengerType), nil
	default:
		return "", ErrInvalidPassengerType
	}
}
