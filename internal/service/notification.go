package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"safepath/internal/domain"
)

// NotificationType represents the type of notification.
type NotificationType string

const (
	NotificationBookingConfirmed NotificationType = "BOOKING_CONFIRMED"
	NotificationBookingCancelled NotificationType = "BOOKING_CANCELLED"
	NotificationBookingCompleted NotificationType = "BOOKING_COMPLETED"
	NotificationPaymentRecorded  NotificationType = "PAYMENT_RECORDED"
)

// Notification represents a notification to be sent.
type Notification struct {
	Type        NotificationType
	RecipientID string
	Title       string
	Message     string
	Data        map[string]interface{}
	CreatedAt   time.Time
}

// NotificationService handles notification delivery. Push delivery itself is
// a collaborator concern; this service produces the notification payloads.
type NotificationService struct{}

// NewNotificationService creates a new NotificationService.
func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// NotifyBookingConfirmed notifies the user that their booking was created.
func (s *NotificationService) NotifyBookingConfirmed(ctx context.Context, booking *domain.Booking) error {
	notification := Notification{
		Type:        NotificationBookingConfirmed,
		RecipientID: booking.UserID,
		Title:       "Booking Confirmed",
		Message: fmt.Sprintf("Your transport from %s to %s on %s is booked.",
			booking.FromAddress, booking.ToAddress, booking.ScheduledAt.Format("Jan 02, 2006 15:04")),
		Data: map[string]interface{}{
			"booking_id":  booking.ID,
			"fare":        booking.Fare,
			"distance_km": booking.DistanceKm,
		},
		CreatedAt: time.Now(),
	}
	return s.send(ctx, notification)
}

// NotifyBookingCancelled notifies the user about a cancellation.
func (s *NotificationService) NotifyBookingCancelled(ctx context.Context, booking *domain.Booking, reason string) error {
	notification := Notification{
		Type:        NotificationBookingCancelled,
		RecipientID: booking.UserID,
		Title:       "Booking Cancelled",
		Message:     "Your transport booking has been cancelled.",
		Data: map[string]interface{}{
			"booking_id": booking.ID,
			"reason":     reason,
		},
		CreatedAt: time.Now(),
	}
	return s.send(ctx, notification)
}

// NotifyBookingCompleted notifies the user that their trip finished.
func (s *NotificationService) NotifyBookingCompleted(ctx context.Context, booking *domain.Booking) error {
	notification := Notification{
		Type:        NotificationBookingCompleted,
		RecipientID: booking.UserID,
		Title:       "Trip Completed",
		Message:     fmt.Sprintf("Your trip is complete. Total fare: %d", booking.Fare),
		Data: map[string]interface{}{
			"booking_id": booking.ID,
			"fare":       booking.Fare,
		},
		CreatedAt: time.Now(),
	}
	return s.send(ctx, notification)
}

// send delivers a notification (log implementation; a push gateway would
// hook in here).
func (s *NotificationService) send(ctx context.Context, notification Notification) error {
	log.Printf("[NOTIFICATION] Type=%s, Recipient=%s, Title=%s, Message=%s",
		notification.Type, notification.RecipientID, notification.Title, notification.Message)

	return nil
}
