package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"safepath/internal/domain"
	"safepath/internal/middleware"
	"safepath/internal/service"
)

// BookingHandler handles HTTP requests for bookings.
type BookingHandler struct {
	bookingService *service.BookingService
	paymentService *service.PaymentService
	receiptService *service.ReceiptService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(
	bookingService *service.BookingService,
	paymentService *service.PaymentService,
	receiptService *service.ReceiptService,
) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		paymentService: paymentService,
		receiptService: receiptService,
	}
}

// BookingResponse is the HTTP response for booking data.
type BookingResponse struct {
	ID            string     `json:"id"`
	FromAddress   string     `json:"from_address"`
	ToAddress     string     `json:"to_address"`
	FromLat       float64    `json:"from_lat"`
	FromLng       float64    `json:"from_lng"`
	ToLat         float64    `json:"to_lat"`
	ToLng         float64    `json:"to_lng"`
	ScheduledAt   time.Time  `json:"scheduled_at"`
	PassengerType string     `json:"passenger_type"`
	Equipment     []string   `json:"equipment,omitempty"`
	DistanceKm    float64    `json:"distance_km"`
	Fare          int        `json:"fare"`
	PaymentMethod string     `json:"payment_method"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`
	CancelReason  string     `json:"cancel_reason,omitempty"`
}

func toBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:            b.ID,
		FromAddress:   b.FromAddress,
		ToAddress:     b.ToAddress,
		FromLat:       b.FromLat,
		FromLng:       b.FromLng,
		ToLat:         b.ToLat,
		ToLng:         b.ToLng,
		ScheduledAt:   b.ScheduledAt,
		PassengerType: string(b.PassengerType),
		Equipment:     b.Equipment,
		DistanceKm:    b.DistanceKm,
		Fare:          b.Fare,
		PaymentMethod: string(b.PaymentMethod),
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
		CancelReason:  b.CancelReason,
	}
	if !b.CancelledAt.IsZero() {
		t := b.CancelledAt
		resp.CancelledAt = &t
	}
	return resp
}

// List handles GET /v1/bookings
func (h *BookingHandler) List(c *gin.Context) {
	status := domain.BookingStatus(c.Query("status"))

	bookings, err := h.bookingService.List(c.Request.Context(), middleware.UserID(c), status)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		response = append(response, toBookingResponse(b))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /v1/bookings/:id
func (h *BookingHandler) Get(c *gin.Context) {
	booking, err := h.bookingService.Get(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(booking))
}

// CancelRequest is the HTTP request body for cancelling a booking.
type CancelRequest struct {
	Reason string `json:"reason"`
}

// Cancel handles POST /v1/bookings/:id/cancel
func (h *BookingHandler) Cancel(c *gin.Context) {
	var req CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	booking, err := h.bookingService.Cancel(c.Request.Context(), service.CancelRequest{
		UserID:    middleware.UserID(c),
		BookingID: c.Param("id"),
		Reason:    req.Reason,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(booking))
}

// Complete handles POST /v1/bookings/:id/complete
func (h *BookingHandler) Complete(c *gin.Context) {
	booking, err := h.bookingService.Complete(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(booking))
}

// Receipt handles GET /v1/bookings/:id/receipt
func (h *BookingHandler) Receipt(c *gin.Context) {
	booking, err := h.bookingService.Get(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	payment, err := h.paymentService.GetByBooking(c.Request.Context(), booking.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	receipt := h.receiptService.FormatReceipt(booking, payment)
	c.String(http.StatusOK, receipt)
}
