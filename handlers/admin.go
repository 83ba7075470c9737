package handlers

import (
	"net/http"

	"servicehub/models"
	"servicehub/services/admin"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates elevated admin-level operations.
type AdminHandler struct {
	Admin admin.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(as admin.AdminService) *AdminHandler {
	return &AdminHandler{Admin: as}
}

var actionMessages = map[string]string{
	models.UserActionView:       "User details",
	models.UserActionSuspend:    "User suspended",
	models.UserActionActivate:   "User activated",
	models.ServiceActionApprove: "Service approved",
	models.ServiceActionReject:  "Service rejected",
}

// ListUsers handles GET /api/admin/users.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.Admin.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to fetch users", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// UserAction handles PATCH /api/admin/users/:id/:action.
func (h *AdminHandler) UserAction(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	action := c.Param("action")
	u, err := h.Admin.UserAction(c.Request.Context(), id, action)
	if err != nil {
		respondError(c, "User action failed", err)
		return
	}
	if action != models.UserActionView {
		getLogger(c).Info("Admin changed account status",
			zap.Int64("userID", id), zap.String("status", u.Status))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": actionMessages[action], "user": u})
}

// ListServices handles GET /api/admin/services.
func (h *AdminHandler) ListServices(c *gin.Context) {
	services, err := h.Admin.ListServices(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to fetch services", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// ServiceAction handles PATCH /api/admin/services/:id/:action.
func (h *AdminHandler) ServiceAction(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	action := c.Param("action")
	svc, err := h.Admin.ServiceAction(c.Request.Context(), id, action)
	if err != nil {
		respondError(c, "Service action failed", err)
		return
	}
	getLogger(c).Info("Admin moderated service",
		zap.Int64("serviceID", id), zap.String("status", svc.Status))
	c.JSON(http.StatusOK, gin.H{"success": true, "message": actionMessages[action], "service": svc})
}

// ListQuotations handles GET /api/admin/quotations.
func (h *AdminHandler) ListQuotations(c *gin.Context) {
	quotes, err := h.Admin.ListQuotations(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to fetch quotations", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotations": quotes})
}

// Stats handles GET /api/admin/stats.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.Admin.Stats(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to fetch stats", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
