package routes

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"booking-marketplace-server/database"
	"booking-marketplace-server/middleware"
	"booking-marketplace-server/models"
	"booking-marketplace-server/services"
)

// RegisterBookingRoutes registers booking lifecycle routes
func RegisterBookingRoutes(router *gin.RouterGroup) {
	router.POST("/bookings", createBooking)
	router.GET("/bookings", listBookings)
	router.GET("/bookings/stats", getBookingStats)
	router.GET("/bookings/:id", getBooking)
	router.PATCH("/bookings/:id/status", updateBookingStatus)
	router.POST("/bookings/:id/cancel", cancelBooking)
}

// createBooking creates a booking in pending status. The total amount is
// supplied by the client (estimated hours times the worker's hourly rate) and
// is immutable after creation; the server checks it for non-negativity only.
func createBooking(c *gin.Context) {
	userValue, _ := c.Get("user")
	user := userValue.(models.User)

	if !user.IsClient() {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "Only clients can create bookings",
		})
		return
	}

	var req models.BookingCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	bookingDate, err := time.Parse("2006-01-02", req.BookingDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid booking date, expected YYYY-MM-DD",
		})
		return
	}

	if !isValidTimeOfDay(req.StartTime) || !isValidTimeOfDay(req.EndTime) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Start and end time must be in HH:MM format",
		})
		return
	}

	if req.TotalAmount.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Total amount must not be negative",
		})
		return
	}

	// The worker must exist and be a verified worker account
	var workerProfile models.WorkerProfile
	if err := database.DB.
		Where("user_id = ? AND verification_status = ?", req.WorkerID, models.VerificationVerified).
		First(&workerProfile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Worker not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to verify worker",
		})
		return
	}

	booking := models.Booking{
		ClientID:    user.ID,
		WorkerID:    req.WorkerID,
		ServiceType: req.ServiceType,
		BookingDate: bookingDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    middleware.SanitizeInput(req.Location),
		Description: req.Description,
		TotalAmount: req.TotalAmount,
		Status:      models.BookingStatusPending,
	}

	if err := database.DB.Create(&booking).Error; err != nil {
		log.Printf("Error creating booking: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to create booking",
		})
		return
	}

	if notifier != nil {
		notifier.NotifyBookingRequested(&booking, user.FullName)
	}

	log.Printf("📅 Booking %d created by client %d for worker %d", booking.ID, user.ID, req.WorkerID)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"booking": booking,
	})
}

// listBookings lists the caller's bookings joined with the counterpart's
// public profile, newest booking date first, optionally filtered by status.
func listBookings(c *gin.Context) {
	userValue, _ := c.Get("user")
	user := userValue.(models.User)

	query := database.DB.Model(&models.Booking{})
	if user.IsWorker() {
		query = query.Where("worker_id = ?", user.ID).Preload("Client")
	} else {
		query = query.Where("client_id = ?", user.ID).Preload("Worker")
	}

	if status := c.Query("status"); status != "" {
		if !models.IsValidBookingStatus(models.BookingStatus(status)) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Invalid booking status",
			})
			return
		}
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Order("booking_date DESC").Find(&bookings).Error; err != nil {
		log.Printf("Error fetching bookings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch bookings",
		})
		return
	}

	results := make([]models.BookingWithCounterpart, 0, len(bookings))
	for _, b := range bookings {
		results = append(results, joinCounterpart(b, &user))
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"bookings": results,
	})
}

// joinCounterpart attaches the other party's public profile to a booking,
// plus the worker's service attributes when the counterpart is the worker.
func joinCounterpart(b models.Booking, viewer *models.User) models.BookingWithCounterpart {
	result := models.BookingWithCounterpart{Booking: b}

	if viewer.IsWorker() {
		result.Counterpart = b.Client.Public()
	} else {
		result.Counterpart = b.Worker.Public()

		var wp models.WorkerProfile
		if err := database.DB.Where("user_id = ?", b.WorkerID).First(&wp).Error; err == nil {
			result.CounterpartWorker = &wp
		}
	}

	// Joined structs are views; drop the raw relations from the payload
	result.Client = models.User{}
	result.Worker = models.User{}

	return result
}

func getBooking(c *gin.Context) {
	userValue, _ := c.Get("user")
	user := userValue.(models.User)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid booking ID",
		})
		return
	}

	var booking models.Booking
	if err := database.DB.Preload("Client").Preload("Worker").First(&booking, bookingID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Booking not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch booking",
		})
		return
	}

	if booking.ClientID != user.ID && booking.WorkerID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "You are not a party to this booking",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"booking": joinCounterpart(booking, &user),
	})
}

// updateBookingStatus applies a lifecycle transition. The caller's side of the
// booking determines the acting role, the transition graph decides whether the
// move is legal, and the write is a compare-and-swap on the row version so two
// parties racing on the same booking cannot both win.
func updateBookingStatus(c *gin.Context) {
	userValue, _ := c.Get("user")
	user := userValue.(models.User)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid booking ID",
		})
		return
	}

	var req models.BookingStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	var booking models.Booking
	if err := database.DB.First(&booking, bookingID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Booking not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch booking",
		})
		return
	}

	var actor models.BookingActor
	var counterpartID uint
	switch user.ID {
	case booking.WorkerID:
		actor = models.ActorWorker
		counterpartID = booking.ClientID
	case booking.ClientID:
		actor = models.ActorClient
		counterpartID = booking.WorkerID
	default:
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "You are not a party to this booking",
		})
		return
	}

	if !models.CanTransition(booking.Status, req.Status, actor) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"error":   models.ErrInvalidTransition.Error(),
			"message": "Cannot move booking from " + string(booking.Status) + " to " + string(req.Status),
		})
		return
	}

	result := database.DB.Model(&models.Booking{}).
		Where("id = ? AND version = ?", booking.ID, booking.Version).
		Updates(map[string]interface{}{
			"status":  req.Status,
			"version": booking.Version + 1,
		})
	if result.Error != nil {
		log.Printf("Error updating booking status: %v", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to update booking status",
		})
		return
	}
	if result.RowsAffected == 0 {
		// Someone else moved the booking first
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"message": "Booking was updated by the other party, please reload and retry",
		})
		return
	}

	booking.Status = req.Status
	booking.Version++

	if notifier != nil {
		notifier.NotifyBookingStatus(&booking, counterpartID)
	}

	log.Printf("📅 Booking %d moved to %s by %s %d", booking.ID, booking.Status, actor, user.ID)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"booking": booking,
	})
}

// cancelBooking is the client-side cancellation shortcut. It is only permitted
// while the booking is still pending; later cancellation goes through the
// status update path where the transition graph applies.
func cancelBooking(c *gin.Context) {
	userValue, _ := c.Get("user")
	user := userValue.(models.User)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid booking ID",
		})
		return
	}

	var booking models.Booking
	if err := database.DB.First(&booking, bookingID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Booking not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch booking",
		})
		return
	}

	if booking.ClientID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "Only the booking's client can cancel it",
		})
		return
	}

	if booking.Status != models.BookingStatusPending {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"error":   models.ErrInvalidTransition.Error(),
			"message": "Only pending bookings can be cancelled here",
		})
		return
	}

	result := database.DB.Model(&models.Booking{}).
		Where("id = ? AND version = ?", booking.ID, booking.Version).
		Updates(map[string]interface{}{
			"status":  models.BookingStatusCancelled,
			"version": booking.Version + 1,
		})
	if result.Error != nil {
		log.Printf("Error cancelling booking: %v", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to cancel booking",
		})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"message": "Booking was updated by the other party, please reload and retry",
		})
		return
	}

	booking.Status = models.BookingStatusCancelled
	booking.Version++

	if notifier != nil {
		notifier.NotifyBookingStatus(&booking, booking.WorkerID)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"booking": booking,
	})
}

// getBookingStats recomputes the caller's booking aggregates by scanning the
// full booking set on every call; nothing is persisted.
func getBookingStats(c *gin.Context) {
	userValue, _ := c.Get("user")
	user := userValue.(models.User)

	var bookings []models.Booking
	var query *gorm.DB
	if user.IsWorker() {
		query = database.DB.Where("worker_id = ?", user.ID)
	} else {
		query = database.DB.Where("client_id = ?", user.ID)
	}

	if err := query.Find(&bookings).Error; err != nil {
		log.Printf("Error fetching bookings for stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to compute stats",
		})
		return
	}

	if user.IsWorker() {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"stats":   services.ComputeWorkerStats(bookings, time.Now()),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   services.ComputeClientStats(bookings),
	})
}

// isValidTimeOfDay checks a wall-clock "HH:MM" value
func isValidTimeOfDay(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	h, err := strconv.Atoi(s[:2])
	if err != nil || h < 0 || h > 23 {
		return false
	}
	m, err := strconv.Atoi(s[3:])
	if err != nil || m < 0 || m > 59 {
		return false
	}
	return true
}
