package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"booking-marketplace-server/database"
	"booking-marketplace-server/models"
	ws "booking-marketplace-server/websocket"
)

// NotificationService persists notification records and pushes them to
// connected clients over the websocket hub. Persisting never depends on the
// push succeeding; a disconnected user reads the record on next fetch.
type NotificationService struct {
	hub *ws.Hub
}

// NewNotificationService creates a new notification service
func NewNotificationService(hub *ws.Hub) *NotificationService {
	return &NotificationService{hub: hub}
}

// Notify stores a notification for a user and pushes it live when connected
func (ns *NotificationService) Notify(userID uint, ntype models.NotificationType, title, body string, data map[string]interface{}) error {
	payload := ""
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return err
		}
		payload = string(raw)
	}

	notification := models.Notification{
		UserID: userID,
		Title:  title,
		Body:   body,
		Type:   ntype,
		Data:   payload,
	}

	if err := database.DB.Create(&notification).Error; err != nil {
		return err
	}

	if ns.hub != nil {
		ns.hub.SendToUser(userID, &ws.Message{
			Type:      "notification",
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"id":    notification.ID,
				"title": title,
				"body":  body,
				"type":  ntype,
				"data":  data,
			},
		})
	}

	return nil
}

// NotifyBookingRequested tells a worker about a new pending booking
func (ns *NotificationService) NotifyBookingRequested(booking *models.Booking, clientName string) {
	err := ns.Notify(booking.WorkerID, models.NotificationBookingRequest,
		"New Booking Request",
		fmt.Sprintf("%s requested a %s booking for %s.", clientName, booking.ServiceType, booking.BookingDate.Format("2 Jan 2006")),
		map[string]interface{}{"booking_id": booking.ID},
	)
	if err != nil {
		log.Printf("❌ Failed to notify worker %d about booking %d: %v", booking.WorkerID, booking.ID, err)
	}
}

// NotifyBookingStatus tells the counterpart of a status change
func (ns *NotificationService) NotifyBookingStatus(booking *models.Booking, recipientID uint) {
	var title, body string
	switch booking.Status {
	case models.BookingStatusAccepted:
		title = "Booking Accepted"
		body = "Your booking request has been accepted."
	case models.BookingStatusInProgress:
		title = "Work Started"
		body = "Your worker has started the job."
	case models.BookingStatusCompleted:
		title = "Booking Completed"
		body = "Your booking has been completed. Please leave a review."
	case models.BookingStatusCancelled:
		title = "Booking Cancelled"
		body = "The booking has been cancelled."
	default:
		title = "Booking Update"
		body = "Your booking status has been updated."
	}

	err := ns.Notify(recipientID, models.NotificationBookingUpdate, title, body,
		map[string]interface{}{"booking_id": booking.ID, "status": booking.Status})
	if err != nil {
		log.Printf("❌ Failed to notify user %d about booking %d: %v", recipientID, booking.ID, err)
	}
}

// NotifyReviewReceived tells a worker they got a new review
func (ns *NotificationService) NotifyReviewReceived(workerUserID uint, review *models.Review) {
	err := ns.Notify(workerUserID, models.NotificationReview,
		"New Review",
		fmt.Sprintf("You received a %d-star review.", review.Rating),
		map[string]interface{}{"review_id": review.ID, "booking_id": review.BookingID},
	)
	if err != nil {
		log.Printf("❌ Failed to notify worker user %d about review %d: %v", workerUserID, review.ID, err)
	}
}
