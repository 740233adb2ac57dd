package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"safepath/internal/repository"
	"safepath/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound),
		errors.Is(err, service.ErrPlaceNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrMissingAddress),
		errors.Is(err, service.ErrMissingCoordinates),
		errors.Is(err, service.ErrInvalidCoordinates),
		errors.Is(err, service.ErrInvalidSchedule),
		errors.Is(err, service.ErrInvalidPassengerType),
		errors.Is(err, service.ErrInvalidPaymentMethod),
		errors.Is(err, service.ErrInvalidBookingID),
		errors.Is(err, service.ErrInvalidUserID):
		return http.StatusBadRequest

	// Unauthorized
	case errors.Is(err, service.ErrNotAuthenticated),
		errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Forbidden
	case errors.Is(err, service.ErrBookingNotOwned):
		return http.StatusForbidden

	// Conflict errors
	case errors.Is(err, service.ErrNoDraft),
		errors.Is(err, service.ErrDraftIncomplete),
		errors.Is(err, service.ErrSubmissionInProgress),
		errors.Is(err, service.ErrBookingAlreadyCancelled),
		errors.Is(err, service.ErrBookingNotCancellable),
		errors.Is(err, service.ErrBookingNotCompletable),
		errors.Is(err, repository.ErrDuplicate):
		return http.StatusConflict

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
