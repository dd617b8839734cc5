package handler

import (
	"github.com/gin-gonic/gin"

	"lexconnect/internal/service"
)

// NotificationHandler handles the header alert endpoints.
type NotificationHandler struct {
	notificationService service.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// List handles GET /api/v1/notifications
// @Summary List notifications
// @Description List the caller's notifications, newest first
// @Tags notifications
// @Produce json
// @Success 200 {object} Response{data=[]domain.Notification} "Notifications"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	ident, ok := identityFromContext(c)
	if !ok {
		return
	}

	notifs, err := h.notificationService.List(c.Request.Context(), ident)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, notifs)
}

// MarkRead handles POST /api/v1/notifications/:id/read
// @Summary Mark a notification read
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} Response{data=MessageResponse} "Marked read"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	ident, ok := identityFromContext(c)
	if !ok {
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), ident, c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "notification marked read"})
}

// MarkAllRead handles POST /api/v1/notifications/read-all
// @Summary Mark all notifications read
// @Tags notifications
// @Produce json
// @Success 200 {object} Response{data=MessageResponse} "All marked read"
// @Security BearerAuth
// @Router /notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	ident, ok := identityFromContext(c)
	if !ok {
		return
	}

	if err := h.notificationService.MarkAllRead(c.Request.Context(), ident); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "all notifications marked read"})
}
