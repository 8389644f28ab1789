package routes

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"booking-marketplace-server/database"
	"booking-marketplace-server/models"
	"booking-marketplace-server/services"
)

// RegisterAdminAuthRoutes registers admin authentication routes
func RegisterAdminAuthRoutes(router *gin.RouterGroup) {
	jwtService := services.NewJWTService()

	router.POST("/login", func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required"`
			Password string `json:"password" binding:"required"`
		}

		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid request",
				"message": err.Error(),
			})
			return
		}

		req.Email = strings.ToLower(strings.TrimSpace(req.Email))

		var user models.User
		if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Invalid credentials",
				"message": "Email or password is incorrect",
			})
			return
		}

		if !user.IsAdmin() || !user.IsActive {
			c.JSON(http.StatusForbidden, gin.H{
				"error":   "Admin access required",
				"message": "This account cannot access the admin surface",
			})
			return
		}

		if !jwtService.CheckPasswordHash(req.Password, user.PasswordHash) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Invalid credentials",
				"message": "Email or password is incorrect",
			})
			return
		}

		tokens, err := jwtService.GenerateTokenPair(user.ID, c.GetHeader("X-Device-ID"), c.GetHeader("User-Agent"), c.ClientIP())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Internal server error",
				"message": "Failed to sign in",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Signed in successfully",
			"user":    user,
			"tokens":  tokens,
		})
	})
}

// RegisterAdminRoutes registers protected admin routes
func RegisterAdminRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard/stats", getDashboardStats)
	router.GET("/workers", listAllWorkers)
	router.PATCH("/workers/:id/verify", verifyWorker)
	router.GET("/documents/pending", listPendingDocuments)
	router.PATCH("/documents/:id/verify", verifyDocument)
}

func getDashboardStats(c *gin.Context) {
	var userCount, workerCount, verifiedWorkerCount, reviewCount int64
	database.DB.Model(&models.User{}).Count(&userCount)
	database.DB.Model(&models.WorkerProfile{}).Count(&workerCount)
	database.DB.Model(&models.WorkerProfile{}).
		Where("verification_status = ?", models.VerificationVerified).
		Count(&verifiedWorkerCount)
	database.DB.Model(&models.Review{}).Count(&reviewCount)

	bookingCounts := map[string]int64{}
	for _, status := range []models.BookingStatus{
		models.BookingStatusPending,
		models.BookingStatusAccepted,
		models.BookingStatusInProgress,
		models.BookingStatusCompleted,
		models.BookingStatusCancelled,
	} {
		var count int64
		database.DB.Model(&models.Booking{}).Where("status = ?", status).Count(&count)
		bookingCounts[string(status)] = count
	}

	c.JSON(http.StatusOK, gin.H{
		"users":            userCount,
		"workers":          workerCount,
		"verified_workers": verifiedWorkerCount,
		"reviews":          reviewCount,
		"bookings":         bookingCounts,
	})
}

func listAllWorkers(c *gin.Context) {
	status := c.Query("verification_status")

	query := database.DB.Model(&models.WorkerProfile{}).Preload("User")
	if status != "" {
		query = query.Where("verification_status = ?", status)
	}

	var workers []models.WorkerProfile
	if err := query.Order("created_at DESC").Find(&workers).Error; err != nil {
		log.Printf("Error fetching workers for admin: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch workers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"workers": workers})
}

// verifyWorker moves a worker profile's verification status. Verification is
// an administrative decision taken outside the booking and review flow.
func verifyWorker(c *gin.Context) {
	workerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid worker ID"})
		return
	}

	var req struct {
		VerificationStatus models.VerificationStatus `json:"verification_status" binding:"required,oneof=pending verified rejected"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var worker models.WorkerProfile
	if err := database.DB.First(&worker, workerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Worker not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch worker"})
		return
	}

	if err := database.DB.Model(&worker).
		Update("verification_status", req.VerificationStatus).Error; err != nil {
		log.Printf("Error updating worker verification: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update worker"})
		return
	}

	if notifier != nil {
		title := "Profile Verified"
		body := "Your worker profile has been verified. Clients can now find you."
		if req.VerificationStatus == models.VerificationRejected {
			title = "Profile Rejected"
			body = "Your worker profile was rejected. Please review your documents and try again."
		}
		if req.VerificationStatus != models.VerificationPending {
			if err := notifier.Notify(worker.UserID, models.NotificationSystem, title, body, nil); err != nil {
				log.Printf("⚠️ Failed to notify worker %d about verification: %v", worker.UserID, err)
			}
		}
	}

	log.Printf("🛡️ Worker %d verification set to %s", worker.ID, req.VerificationStatus)
	c.JSON(http.StatusOK, gin.H{
		"success":             true,
		"verification_status": req.VerificationStatus,
	})
}

func listPendingDocuments(c *gin.Context) {
	var documents []models.WorkerDocument
	if err := database.DB.
		Where("verification_status = ?", models.VerificationPending).
		Preload("Worker").
		Order("uploaded_at ASC").
		Find(&documents).Error; err != nil {
		log.Printf("Error fetching pending documents: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch documents"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"documents": documents})
}

func verifyDocument(c *gin.Context) {
	documentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document ID"})
		return
	}

	var req struct {
		VerificationStatus models.VerificationStatus `json:"verification_status" binding:"required,oneof=verified rejected"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var document models.WorkerDocument
	if err := database.DB.First(&document, documentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch document"})
		return
	}

	if err := database.DB.Model(&document).
		Update("verification_status", req.VerificationStatus).Error; err != nil {
		log.Printf("Error updating document verification: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update document"})
		return
	}

	log.Printf("🛡️ Document %d verification set to %s", document.ID, req.VerificationStatus)
	c.JSON(http.StatusOK, gin.H{
		"success":             true,
		"verification_status": req.VerificationStatus,
	})
}
