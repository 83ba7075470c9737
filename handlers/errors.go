package handlers

import (
	"errors"
	"net/http"

	"servicehub/models"
	"servicehub/services/admin"
	"servicehub/services/booking"
	"servicehub/services/catalog"
	"servicehub/services/earnings"
	"servicehub/services/quotation"
	"servicehub/services/user"
	"servicehub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusFor maps service errors onto HTTP statuses.
func statusFor(err error) int {
	var verr user.ValidationError
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, catalog.ErrForbidden),
		errors.Is(err, quotation.ErrForbidden),
		errors.Is(err, user.ErrAccountSuspended),
		errors.Is(err, admin.ErrProtectedAccount):
		return http.StatusForbidden
	case errors.Is(err, user.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.As(err, &verr),
		errors.Is(err, user.ErrWeakPassword),
		errors.Is(err, catalog.ErrInvalidReview),
		errors.Is(err, catalog.ErrInvalidService),
		errors.Is(err, quotation.ErrInvalidRequest),
		errors.Is(err, earnings.ErrInvalidAmount),
		errors.Is(err, admin.ErrInvalidAction):
		return http.StatusBadRequest
	case errors.Is(err, user.ErrEmailTaken),
		errors.Is(err, models.ErrAlreadyExists),
		errors.Is(err, models.ErrConflict),
		errors.Is(err, quotation.ErrInvalidTransition),
		errors.Is(err, booking.ErrAlreadyPaid),
		errors.Is(err, booking.ErrBookingCancelled),
		errors.Is(err, earnings.ErrInsufficientFunds):
		return http.StatusConflict
	case errors.Is(err, booking.ErrPaymentFailed):
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}

// respondError logs err and writes the matching error body. Internal errors
// are not echoed to the client.
func respondError(c *gin.Context, message string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		getLogger(c).Error(message, zap.Error(err))
		utils.JSONError(c, status, message, "")
		return
	}
	if status == http.StatusNotFound && errors.Is(err, models.ErrNotFound) {
		utils.JSONError(c, status, message, "")
		return
	}
	utils.JSONError(c, status, message, err.Error())
}

func badRequest(c *gin.Context, details string) {
	utils.JSONError(c, http.StatusBadRequest, "Invalid request", details)
}
