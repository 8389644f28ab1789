package websocket

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NotificationHandler upgrades authenticated users onto the notification stream
type NotificationHandler struct {
	hub *Hub
}

// NewNotificationHandler creates a new notification stream handler
func NewNotificationHandler(hub *Hub) *NotificationHandler {
	return &NotificationHandler{hub: hub}
}

// HandleConnection upgrades the request to a WebSocket connection. Expects
// WebSocketAuthMiddleware to have set user_id and user_role in the context.
func (h *NotificationHandler) HandleConnection(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "Authentication required",
			"message": "Please provide a valid token",
		})
		return
	}

	ServeWebSocket(h.hub, c.Writer, c.Request, userID, c.GetString("user_role"))
}
