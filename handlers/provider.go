package handlers

import (
	"net/http"

	"servicehub/services/earnings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProviderHandler serves provider earnings, payouts and dashboard stats.
type ProviderHandler struct {
	Earnings earnings.EarningsService
}

func NewProviderHandler(es earnings.EarningsService) *ProviderHandler {
	return &ProviderHandler{Earnings: es}
}

// GetEarnings handles GET /api/provider/earnings?timeRange=week|month|all.
func (h *ProviderHandler) GetEarnings(c *gin.Context) {
	providerID, ok := currentUserID(c)
	if !ok {
		return
	}
	report, err := h.Earnings.Report(c.Request.Context(), providerID, c.DefaultQuery("timeRange", earnings.RangeMonth))
	if err != nil {
		respondError(c, "Failed to fetch earnings", err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// RequestPayout handles POST /api/provider/earnings/pay.
func (h *ProviderHandler) RequestPayout(c *gin.Context) {
	providerID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req struct {
		Amount float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	payout, err := h.Earnings.RequestPayout(c.Request.Context(), providerID, req.Amount)
	if err != nil {
		respondError(c, "Payout failed", err)
		return
	}
	getLogger(c).Info("Payout requested", zap.String("payoutID", payout.ID))
	c.JSON(http.StatusOK, gin.H{"ok": true, "status": "Paid", "payout": payout})
}

// Stats handles GET /api/provider/stats.
func (h *ProviderHandler) Stats(c *gin.Context) {
	providerID, ok := currentUserID(c)
	if !ok {
		return
	}
	stats, err := h.Earnings.ProviderStats(c.Request.Context(), providerID)
	if err != nil {
		respondError(c, "Failed to fetch stats", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
