package domain

import "time"

// BookingStatus represents the current status of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusUpcoming  BookingStatus = "UPCOMING"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// PaymentMethod represents the payment method for a booking.
type PaymentMethod string

const (
	PaymentMethodCash      PaymentMethod = "CASH"
	PaymentMethodCard      PaymentMethod = "CARD"
	PaymentMethodPromptPay PaymentMethod = "PROMPTPAY"
)

// PassengerType describes who the transport is booked for.
type PassengerType string

const (
	PassengerTypeElderly  PassengerType = "ELDERLY"
	PassengerTypePatient  PassengerType = "PATIENT"
	PassengerTypeDisabled PassengerType = "DISABLED"
)

// Booking represents a confirmed patient-transport booking.
type Booking struct {
	ID            string
	UserID        string
	FromAddress   string
	ToAddress     string
	FromLat       float64
	FromLng       float64
	ToLat         float64
	ToLng         float64
	ScheduledAt   time.Time
	PassengerType PassengerType
	Equipment     []string
	DistanceKm    float64
	Fare          int
	PaymentMethod PaymentMethod
	Status        BookingStatus
	CreatedAt     time.Time
	CancelledAt   time.Time
	CancelReason  string
}
