package routes

import (
	"booking-marketplace-server/services"
	ws "booking-marketplace-server/websocket"
)

var notifier *services.NotificationService

// Init wires shared route dependencies. Must be called before registering
// routes that emit notifications.
func Init(hub *ws.Hub) {
	notifier = services.NewNotificationService(hub)
}
