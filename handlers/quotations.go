package handlers

import (
	"net/http"

	"servicehub/models"
	"servicehub/services/quotation"
	"servicehub/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuotationHandler serves both sides of the quotation lifecycle.
type QuotationHandler struct {
	Quotations quotation.QuotationService
	Users      user.UserService
}

func NewQuotationHandler(qs quotation.QuotationService, us user.UserService) *QuotationHandler {
	return &QuotationHandler{Quotations: qs, Users: us}
}

// ListCustomerQuotations handles GET /api/quotations.
func (h *QuotationHandler) ListCustomerQuotations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	list, err := h.Quotations.ListForCustomer(c.Request.Context(), userID)
	if err != nil {
		respondError(c, "Failed to fetch quotations", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotations": list})
}

// CreateQuotation handles POST /api/quotations.
func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req models.QuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if req.ServiceID <= 0 {
		badRequest(c, "serviceId is required")
		return
	}
	customer, err := h.Users.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, "User not found", err)
		return
	}
	q, err := h.Quotations.Request(c.Request.Context(), *customer, req)
	if err != nil {
		respondError(c, "Failed to create quotation", err)
		return
	}
	getLogger(c).Info("Quotation requested", zap.Int64("quotationID", q.ID), zap.Int64("serviceID", q.ServiceID))
	c.JSON(http.StatusCreated, gin.H{"quotation": q})
}

// GetQuotation handles GET /api/quotations/:id.
func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	q, err := h.Quotations.Get(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, "Quotation not found", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotation": q})
}

// CancelQuotation handles PATCH /api/quotations/:id/cancel.
func (h *QuotationHandler) CancelQuotation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	q, err := h.Quotations.Cancel(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, "Failed to cancel quotation", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotation": q})
}

// CompleteQuotation handles PATCH /api/quotations/:id/complete.
func (h *QuotationHandler) CompleteQuotation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	q, b, err := h.Quotations.Complete(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, "Failed to complete quotation", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotation": q, "booking": b})
}

// ListProviderQuotations handles GET /api/provider/quotations.
func (h *QuotationHandler) ListProviderQuotations(c *gin.Context) {
	providerID, ok := currentUserID(c)
	if !ok {
		return
	}
	list, err := h.Quotations.ListForProvider(c.Request.Context(), providerID)
	if err != nil {
		respondError(c, "Failed to fetch quotations", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotations": list})
}

// RespondQuotation handles POST /api/provider/quotations/:id/respond.
func (h *QuotationHandler) RespondQuotation(c *gin.Context) {
	providerID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var resp models.QuotationResponse
	if err := c.ShouldBindJSON(&resp); err != nil {
		badRequest(c, err.Error())
		return
	}
	q, err := h.Quotations.Respond(c.Request.Context(), providerID, id, resp)
	if err != nil {
		respondError(c, "Failed to respond to quotation", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotation": q})
}

// RejectQuotation handles POST /api/provider/quotations/:id/reject.
func (h *QuotationHandler) RejectQuotation(c *gin.Context) {
	providerID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	q, err := h.Quotations.Reject(c.Request.Context(), providerID, id)
	if err != nil {
		respondError(c, "Failed to reject quotation", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotation": q})
}
