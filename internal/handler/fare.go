package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"safepath/internal/domain"
	"safepath/internal/fare"
	"safepath/internal/service"
)

// FareHandler handles HTTP requests for fare estimates.
type FareHandler struct{}

// NewFareHandler creates a new FareHandler.
func NewFareHandler() *FareHandler {
	return &FareHandler{}
}

// EstimateRequest is the HTTP request body for a fare estimate.
type EstimateRequest struct {
	From *CoordinateRequest `json:"from"`
	To   *CoordinateRequest `json:"to"`
}

// EstimateResponse is the HTTP response for a fare estimate.
type EstimateResponse struct {
	DistanceKm float64 `json:"distance_km"`
	Fare       int     `json:"fare"`
}

// Estimate handles POST /v1/fare/estimate
func (h *FareHandler) Estimate(c *gin.Context) {
	var req EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.From == nil || req.To == nil {
		respondError(c, service.ErrMissingCoordinates)
		return
	}

	from := domain.Coordinate{Lat: req.From.Lat, Lng: req.From.Lng}
	to := domain.Coordinate{Lat: req.To.Lat, Lng: req.To.Lng}
	if !from.Valid() || !to.Valid() {
		respondError(c, service.ErrInvalidCoordinates)
		return
	}

	distanceKm, amount := fare.Estimate(from.Lat, from.Lng, to.Lat, to.Lng)
	c.JSON(http.StatusOK, EstimateResponse{DistanceKm: distanceKm, Fare: amount})
}
