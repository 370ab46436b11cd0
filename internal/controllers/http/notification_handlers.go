package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListNotifications(c *gin.Context) {
	var isRead *bool
	if v := c.Query("is_read"); v != "" {
		read := v == "true" || v == "1"
		isRead = &read
	}

	ns, err := h.notifications.List(c.Request.Context(), currentUserID(c), isRead)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "notifications", ns)
}

func (h *Handler) MarkNotificationRead(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.notifications.MarkRead(c.Request.Context(), id, currentUserID(c)); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "notification marked read", nil)
}

func (h *Handler) MarkAllNotificationsRead(c *gin.Context) {
	if err := h.notifications.MarkAllRead(c.Request.Context(), currentUserID(c)); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "all notifications marked read", nil)
}

func (h *Handler) UnreadNotificationCount(c *gin.Context) {
	n, err := h.notifications.UnreadCount(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "unread count", gin.H{"count": n})
}
