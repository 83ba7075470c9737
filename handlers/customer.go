package handlers

import (
	"net/http"

	"servicehub/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CustomerHandler serves bookings, payment, saved services, stats and the
// dashboard feeds.
type CustomerHandler struct {
	Bookings booking.BookingService
}

func NewCustomerHandler(bs booking.BookingService) *CustomerHandler {
	return &CustomerHandler{Bookings: bs}
}

// ListBookings handles GET /api/customer/bookings.
func (h *CustomerHandler) ListBookings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	list, err := h.Bookings.ListCustomerBookings(c.Request.Context(), userID)
	if err != nil {
		respondError(c, "Failed to fetch bookings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": list})
}

// PayBooking handles POST /api/customer/bookings/:id/pay.
func (h *CustomerHandler) PayBooking(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		PaymentMethod string `json:"paymentMethod"`
	}
	// The body is optional.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
	}

	b, receipt, err := h.Bookings.Pay(c.Request.Context(), userID, id, req.PaymentMethod)
	if err != nil {
		respondError(c, "Payment failed", err)
		return
	}
	getLogger(c).Info("Booking paid", zap.Int64("bookingID", b.ID), zap.String("paymentID", receipt.PaymentID))
	c.JSON(http.StatusOK, gin.H{"booking": b, "payment": receipt})
}

// ListSavedServices handles GET /api/customer/saved-services.
func (h *CustomerHandler) ListSavedServices(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	list, err := h.Bookings.ListSavedServices(c.Request.Context(), userID)
	if err != nil {
		respondError(c, "Failed to fetch saved services", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": list})
}

// SaveService handles POST /api/customer/saved-services.
func (h *CustomerHandler) SaveService(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req struct {
		ServiceID int64 `json:"serviceId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ServiceID <= 0 {
		badRequest(c, "serviceId is required")
		return
	}
	added, err := h.Bookings.SaveService(c.Request.Context(), userID, req.ServiceID)
	if err != nil {
		respondError(c, "Service not found", err)
		return
	}
	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"success": true, "serviceId": req.ServiceID})
}

// RemoveSavedService handles DELETE /api/customer/saved-services/:id.
func (h *CustomerHandler) RemoveSavedService(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	removed, err := h.Bookings.UnsaveService(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, "Failed to remove saved service", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": removed})
}

// Stats handles GET /api/customer/stats.
func (h *CustomerHandler) Stats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	stats, err := h.Bookings.CustomerStats(c.Request.Context(), userID)
	if err != nil {
		respondError(c, "Failed to fetch stats", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// Activity handles GET /api/customer/activity.
func (h *CustomerHandler) Activity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	limit, _ := queryLimit(c)
	items, err := h.Bookings.Activity(c.Request.Context(), userID, limit)
	if err != nil {
		respondError(c, "Failed to fetch activity", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"activity": items})
}

// Recommendations handles GET /api/customer/recommendations.
func (h *CustomerHandler) Recommendations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	limit, _ := queryLimit(c)
	recs, err := h.Bookings.Recommendations(c.Request.Context(), userID, limit)
	if err != nil {
		respondError(c, "Failed to fetch recommendations", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}
