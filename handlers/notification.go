package handlers

import (
	"net/http"

	"fixify/middleware"
	"fixify/services/notification"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the notification polling endpoints.
type NotificationHandler struct {
	Service notification.NotificationService
}

// NewNotificationHandler returns a NotificationHandler.
func NewNotificationHandler(service notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{Service: service}
}

// ListNotifications handles GET /api/notifications.
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	notifications, err := h.Service.ListForRecipient(c.Request.Context(), principal.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// MarkNotificationRead handles PUT /api/notifications/:id/read.
func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	if err := h.Service.MarkRead(c.Request.Context(), c.Param("id"), principal.ID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked read"})
}
