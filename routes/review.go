package routes

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"booking-marketplace-server/database"
	"booking-marketplace-server/middleware"
	"booking-marketplace-server/models"
	"booking-marketplace-server/services"
)

// RegisterReviewRoutes registers review routes
func RegisterReviewRoutes(router *gin.RouterGroup) {
	router.POST("/reviews", submitReview)
	router.GET("/reviews/worker/:workerId", getWorkerReviews)
	router.GET("/reviews/mine", getMyReviews)
	router.GET("/reviews/booking/:bookingId", getBookingReview)
}

// submitReview creates a review for a completed booking and recomputes the
// worker's derived rating fields from the full review set. Insert, recompute
// and profile write run in one transaction so a failure cannot leave the
// aggregate stale, and the unique index on booking_id rejects a second review
// even when two submissions race past the pre-check.
func submitReview(c *gin.Context) {
	userValue, _ := c.Get("user")
	user := userValue.(models.User)

	var req models.ReviewCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	if req.Comment != nil {
		trimmed := strings.TrimSpace(*req.Comment)
		if trimmed == "" {
			req.Comment = nil
		} else if len(trimmed) < 10 {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Comment must be at least 10 characters",
			})
			return
		} else {
			sanitized := middleware.SanitizeInput(trimmed)
			req.Comment = &sanitized
		}
	}

	var booking models.Booking
	if err := database.DB.First(&booking, req.BookingID).Error; err != nil {
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
			"message": "You can only review your own bookings",
		})
		return
	}

	if booking.Status != models.BookingStatusCompleted {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"message": "Only completed bookings can be reviewed",
		})
		return
	}

	var existing models.Review
	if err := database.DB.Where("booking_id = ?", req.BookingID).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"message": "A review already exists for this booking",
		})
		return
	}

	review := models.Review{
		BookingID: booking.ID,
		WorkerID:  booking.WorkerID,
		ClientID:  user.ID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&review).Error; err != nil {
			return err
		}

		var ratings []int
		if err := tx.Model(&models.Review{}).
			Where("worker_id = ?", booking.WorkerID).
			Pluck("rating", &ratings).Error; err != nil {
			return err
		}

		avg, count := services.AggregateRatings(ratings)

		return tx.Model(&models.WorkerProfile{}).
			Where("user_id = ?", booking.WorkerID).
			Updates(map[string]interface{}{
				"rating":        avg,
				"total_reviews": count,
			}).Error
	})
	if err != nil {
		log.Printf("❌ Review submission failed for booking %d: %v", booking.ID, err)
		if strings.Contains(err.Error(), "idx_reviews_booking_id") {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"message": "A review already exists for this booking",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to submit review",
		})
		return
	}

	if notifier != nil {
		notifier.NotifyReviewReceived(booking.WorkerID, &review)
	}

	log.Printf("⭐ Review %d submitted for booking %d (worker %d)", review.ID, booking.ID, booking.WorkerID)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"review":  review,
	})
}

// getWorkerReviews lists all reviews for a worker, newest first
func getWorkerReviews(c *gin.Context) {
	workerID, err := strconv.ParseUint(c.Param("workerId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid worker ID",
		})
		return
	}

	var reviews []models.Review
	if err := database.DB.
		Where("worker_id = ?", workerID).
		Preload("Client").
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		log.Printf("Error fetching worker reviews: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch reviews",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"reviews": reviews,
	})
}

// getMyReviews lists reviews written by the calling client
func getMyReviews(c *gin.Context) {
	userID := c.GetUint("user_id")

	var reviews []models.Review
	if err := database.DB.
		Where("client_id = ?", userID).
		Preload("Worker").
		Preload("Booking").
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		log.Printf("Error fetching client reviews: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch reviews",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"reviews": reviews,
	})
}

// getBookingReview returns the review for a booking, if any. Clients use this
// to decide whether the review form should be shown at all.
func getBookingReview(c *gin.Context) {
	userValue, _ := c.Get("user")
	user := userValue.(models.User)

	bookingID, err := strconv.ParseUint(c.Param("bookingId"), 10, 32)
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

	if booking.ClientID != user.ID && booking.WorkerID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "You are not a party to this booking",
		})
		return
	}

	var review models.Review
	if err := database.DB.Where("booking_id = ?", bookingID).First(&review).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"review":  nil,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch review",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"review":  review,
	})
}
