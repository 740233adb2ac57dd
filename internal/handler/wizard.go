package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"safepath/internal/domain"
	"safepath/internal/middleware"
	"safepath/internal/service"
)

// WizardHandler handles HTTP requests for the booking wizard.
type WizardHandler struct {
	wizardService *service.WizardService
}

// NewWizardHandler creates a new WizardHandler.
func NewWizardHandler(wizardService *service.WizardService) *WizardHandler {
	return &WizardHandler{wizardService: wizardService}
}

// CoordinateRequest is a latitude/longitude pair in a request body.
type CoordinateRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DraftResponse is the HTTP representation of the wizard draft.
type DraftResponse struct {
	FromAddress   string             `json:"from_address,omitempty"`
	ToAddress     string             `json:"to_address,omitempty"`
	FromCoord     *CoordinateRequest `json:"from_coord,omitempty"`
	ToCoord       *CoordinateRequest `json:"to_coord,omitempty"`
	ScheduledAt   *time.Time         `json:"scheduled_at,omitempty"`
	PassengerType string             `json:"passenger_type,omitempty"`
	Equipment     []string           `json:"equipment,omitempty"`
	DistanceKm    *float64           `json:"distance_km,omitempty"`
	Fare          *int               `json:"fare,omitempty"`
}

func toDraftResponse(d *domain.Draft) DraftResponse {
	resp := DraftResponse{
		FromAddress:   d.FromAddress,
		ToAddress:     d.ToAddress,
		ScheduledAt:   d.ScheduledAt,
		PassengerType: string(d.PassengerType),
		Equipment:     d.Equipment,
		DistanceKm:    d.DistanceKm,
		Fare:          d.Fare,
	}
	if d.FromCoord != nil {
		resp.FromCoord = &CoordinateRequest{Lat: d.FromCoord.Lat, Lng: d.FromCoord.Lng}
	}
	if d.ToCoord != nil {
		resp.ToCoord = &CoordinateRequest{Lat: d.ToCoord.Lat, Lng: d.ToCoord.Lng}
	}
	return resp
}

// Start handles POST /v1/wizard/start
func (h *WizardHandler) Start(c *gin.Context) {
	d, err := h.wizardService.Start(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toDraftResponse(d))
}

// SetAddressesRequest is the HTTP request body for the address step.
type SetAddressesRequest struct {
	FromAddress string             `json:"from_address"`
	ToAddress   string             `json:"to_address"`
	FromCoord   *CoordinateRequest `json:"from_coord"`
	ToCoord     *CoordinateRequest `json:"to_coord"`
}

// SetAddresses handles PUT /v1/wizard/addresses
func (h *WizardHandler) SetAddresses(c *gin.Context) {
	var req SetAddressesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	svcReq := service.SetAddressesRequest{
		FromAddress: req.FromAddress,
		ToAddress:   req.ToAddress,
	}
	if req.FromCoord != nil {
		svcReq.FromCoord = &domain.Coordinate{Lat: req.FromCoord.Lat, Lng: req.FromCoord.Lng}
	}
	if req.ToCoord != nil {
		svcReq.ToCoord = &domain.Coordinate{Lat: req.ToCoord.Lat, Lng: req.ToCoord.Lng}
	}

	d, err := h.wizardService.SetAddresses(c.Request.Context(), middleware.UserID(c), svcReq)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDraftResponse(d))
}

// SetScheduleRequest is the HTTP request body for the schedule step.
type SetScheduleRequest struct {
	ScheduledAt time.Time `json:"scheduled_at"`
}

// SetSchedule handles PUT /v1/wizard/schedule
func (h *WizardHandler) SetSchedule(c *gin.Context) {
	var req SetScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	d, err := h.wizardService.SetSchedule(c.Request.Context(), middleware.UserID(c), req.ScheduledAt)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDraftResponse(d))
}

// SetPassengerRequest is the HTTP request body for the passenger step.
type SetPassengerRequest struct {
	PassengerType  string   `json:"passenger_type"`
	Equipment      []string `json:"equipment"`
	OtherEquipment string   `json:"other_equipment"`
}

// SetPassenger handles PUT /v1/wizard/passenger
func (h *WizardHandler) SetPassenger(c *gin.Context) {
	var req SetPassengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	d, err := h.wizardService.SetPassengerInfo(c.Request.Context(), middleware.UserID(c), service.SetPassengerInfoRequest{
		PassengerType:  domain.PassengerType(req.PassengerType),
		Equipment:      req.Equipment,
		OtherEquipment: req.OtherEquipment,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDraftResponse(d))
}

// Summary handles GET /v1/wizard/summary
func (h *WizardHandler) Summary(c *gin.Context) {
	d, err := h.wizardService.Summary(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDraftResponse(d))
}

// ConfirmRequest is the HTTP request body for the payment step.
type ConfirmRequest struct {
	PaymentMethod string `json:"payment_method"`
}

// ConfirmResponse is the HTTP response for a confirmed booking.
type ConfirmResponse struct {
	Booking BookingResponse  `json:"booking"`
	Payment *PaymentResponse `json:"payment,omitempty"`
}

// Confirm handles POST /v1/wizard/confirm
func (h *WizardHandler) Confirm(c *gin.Context) {
	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.wizardService.Confirm(c.Request.Context(), middleware.UserID(c), domain.PaymentMethod(req.PaymentMethod))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := ConfirmResponse{Booking: toBookingResponse(result.Booking)}
	if result.Payment != nil {
		p := toPaymentResponse(result.Payment)
		resp.Payment = &p
	}
	c.JSON(http.StatusCreated, resp)
}
