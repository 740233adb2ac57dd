package tests

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"safepath/internal/domain"
	"safepath/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK BOOKING REPOSITORY
// ──────────────────────────────────────────────

// MockBookingRepository is a mock implementation of BookingRepository.
type MockBookingRepository struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking

	// Counters for verification
	CreateCallCount int32
	UpdateCallCount int32

	// Error injection
	CreateError error
	UpdateError error
}

// NewMockBookingRepository creates a new mock booking repository.
func NewMockBookingRepository() *MockBookingRepository {
	return &MockBookingRepository{
		bookings: make(map[string]*domain.Booking),
	}
}

// AddBooking adds a booking to the mock repository.
func (m *MockBookingRepository) AddBooking(booking *domain.Booking) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings[booking.ID] = booking
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings[booking.ID] = booking
	return nil
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	booking, ok := m.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	// Return a copy to avoid mutation issues.
	copy := *booking
	return &copy, nil
}

func (m *MockBookingRepository) ListByUser(ctx context.Context, userID string, status domain.BookingStatus) ([]*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Booking, 0, len(m.bookings))
	for _, b := range m.bookings {
		if b.UserID != userID {
			continue
		}
		if status != "" && b.Status != status {
			continue
		}
		copy := *b
		result = append(result, &copy)
	}
	return result, nil
}

func (m *MockBookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	atomic.AddInt32(&m.UpdateCallCount, 1)
	if m.UpdateError != nil {
		return m.UpdateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.bookings[booking.ID]; !ok {
		return repository.ErrNotFound
	}
	m.bookings[booking.ID] = booking
	return nil
}

// GetBooking returns the booking by ID (for test assertions).
func (m *MockBookingRepository) GetBooking(id string) *domain.Booking {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.bookings[id]
}

// ──────────────────────────────────────────────
// MOCK PAYMENT REPOSITORY
// ──────────────────────────────────────────────

// MockPaymentRepository is a mock implementation of PaymentRepository.
type MockPaymentRepository struct {
	mu       sync.RWMutex
	payments map[string]*domain.Payment

	// Counters for verification
	CreateCallCount int32

	// Error injection
	CreateError error
}

// NewMockPaymentRepository creates a new mock payment repository.
func NewMockPaymentRepository() *MockPaymentRepository {
	return &MockPaymentRepository{
		payments: make(map[string]*domain.Payment),
	}
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payments[payment.ID] = payment
	return nil
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	payment, ok := m.payments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *payment
	return &copy, nil
}

func (m *MockPaymentRepository) GetByBookingID(ctx context.Context, bookingID string) (*domain.Payment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.payments {
		if p.BookingID == bookingID {
			copy := *p
			return &copy, nil
		}
	}
	return nil, nil
}

func (m *MockPaymentRepository) UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	payment, ok := m.payments[id]
	if !ok {
		return repository.ErrNotFound
	}
	payment.Status = status
	return nil
}

// ──────────────────────────────────────────────
// MOCK LOCK STORE
// ──────────────────────────────────────────────

// MockLockStore is a mock implementation of LockStoreInterface.
type MockLockStore struct {
	mu    sync.Mutex
	locks map[string]bool

	// ForceAcquireFailure makes every acquire attempt report a held lock.
	ForceAcquireFailure bool

	AcquireCallCount int32
	ReleaseCallCount int32
}

// NewMockLockStore creates a new mock lock store.
func NewMockLockStore() *MockLockStore {
	return &MockLockStore{
		locks: make(map[string]bool),
	}
}

func (m *MockLockStore) AcquireSubmitLock(ctx context.Context, userID string, ttl time.Duration) (bool, error) {
	atomic.AddInt32(&m.AcquireCallCount, 1)
	if m.ForceAcquireFailure {
		return false, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.locks[userID] {
		return false, nil
	}
	m.locks[userID] = true
	return true, nil
}

func (m *MockLockStore) ReleaseSubmitLock(ctx context.Context, userID string) error {
	atomic.AddInt32(&m.ReleaseCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locks, userID)
	return nil
}

// ──────────────────────────────────────────────
// MOCK HOSPITAL REPOSITORY
// ──────────────────────────────────────────────

// MockHospitalRepository is a mock implementation of HospitalRepository.
type MockHospitalRepository struct {
	mu        sync.RWMutex
	hospitals []*domain.Hospital

	SearchError error
}

// NewMockHospitalRepository creates a new mock hospital repository.
func NewMockHospitalRepository() *MockHospitalRepository {
	return &MockHospitalRepository{}
}

// AddHospital adds a hospital to the mock repository.
func (m *MockHospitalRepository) AddHospital(h *domain.Hospital) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hospitals = append(m.hospitals, h)
}

func (m *MockHospitalRepository) Search(ctx context.Context, query string, limit int) ([]*domain.Hospital, error) {
	if m.SearchError != nil {
		return nil, m.SearchError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	q := strings.ToLower(query)
	result := make([]*domain.Hospital, 0)
	for _, h := range m.hospitals {
		if len(result) >= limit {
			break
		}
		if strings.Contains(strings.ToLower(h.Name), q) ||
			strings.Contains(strings.ToLower(h.FullName), q) ||
			strings.Contains(strings.ToLower(h.Address), q) {
			copy := *h
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (m *MockHospitalRepository) GetAll(ctx context.Context) ([]*domain.Hospital, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Hospital, 0, len(m.hospitals))
	for _, h := range m.hospitals {
		copy := *h
		result = append(result, &copy)
	}
	return result, nil
}

// ──────────────────────────────────────────────
// MOCK GEOCODER
// ──────────────────────────────────────────────

// MockGeocoder is a mock implementation of service.Geocoder.
type MockGeocoder struct {
	Places         []domain.Place
	ReverseAddress string

	GeocodeError error
	ReverseError error

	GeocodeCallCount int32
}

// NewMockGeocoder creates a new mock geocoder.
func NewMockGeocoder() *MockGeocoder {
	return &MockGeocoder{}
}

func (m *MockGeocoder) Geocode(ctx context.Context, query string) ([]domain.Place, error) {
	atomic.AddInt32(&m.GeocodeCallCount, 1)
	if m.GeocodeError != nil {
		return nil, m.GeocodeError
	}
	return m.Places, nil
}

func (m *MockGeocoder) ReverseGeocode(ctx context.Context, coord domain.Coordinate) (string, error) {
	if m.ReverseError != nil {
		return "", m.ReverseError
	}
	return m.ReverseAddress, nil
}
