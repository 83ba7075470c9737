package handlers

import (
	"net/http"

	"servicehub/services/notification"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the caller's in-app notifications.
type NotificationHandler struct {
	Notifications notification.NotificationService
}

func NewNotificationHandler(ns notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{Notifications: ns}
}

// List handles GET /api/notifications.
func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	list, err := h.Notifications.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, "Failed to fetch notifications", err)
		return
	}
	unread := 0
	for _, n := range list {
		if !n.Read {
			unread++
		}
	}
	c.JSON(http.StatusOK, gin.H{"notifications": list, "unread": unread})
}

// MarkRead handles PATCH /api/notifications/:id/read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	n, err := h.Notifications.MarkRead(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, "Notification not found", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notification": n})
}

// MarkAllRead handles PATCH /api/notifications/read-all.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	count, err := h.Notifications.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		respondError(c, "Failed to update notifications", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "updated": count})
}
