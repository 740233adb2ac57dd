package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"safepath/internal/domain"
	"safepath/internal/service"
)

// PaymentHandler handles HTTP requests for payments.
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// PaymentResponse is the HTTP response for payment data.
type PaymentResponse struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	Method    string    `json:"method"`
	Amount    int       `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func toPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID,
		BookingID: p.BookingID,
		Method:    string(p.Method),
		Amount:    p.Amount,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
	}
}

// Get handles GET /v1/payments/:id
func (h *PaymentHandler) Get(c *gin.Context) {
	payment, err := h.paymentService.GetPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPaymentResponse(payment))
}

// MarkPaid handles POST /v1/payments/:id/paid
func (h *PaymentHandler) MarkPaid(c *gin.Context) {
	if err := h.paymentService.MarkPaid(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "paid"})
}
