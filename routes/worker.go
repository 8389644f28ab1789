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
)

// RegisterWorkerRoutes registers public worker discovery routes
func RegisterWorkerRoutes(router *gin.RouterGroup) {
	router.GET("/workers", browseWorkers)
	router.GET("/workers/:id", getWorker)
}

// RegisterWorkerProfileRoutes registers routes for workers managing their own profile
func RegisterWorkerProfileRoutes(router *gin.RouterGroup) {
	router.POST("/workers/profile", createWorkerProfile)
	router.PUT("/workers/profile", updateWorkerProfile)
	router.PATCH("/workers/availability", updateAvailability)
}

// ===== DISCOVERY HANDLERS =====

// browseWorkers lists verified workers ordered by rating, optionally filtered
// by service type and a free-text search across name, bio and skills.
func browseWorkers(c *gin.Context) {
	serviceType := c.Query("service_type")
	search := strings.ToLower(strings.TrimSpace(c.Query("search")))
	limit := 50

	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	query := database.DB.Where("verification_status = ?", models.VerificationVerified)

	if serviceType != "" {
		if !models.IsValidServiceType(models.ServiceType(serviceType)) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Invalid service type",
			})
			return
		}
		query = query.Where("service_type = ?", serviceType)
	}

	var workers []models.WorkerProfile
	if err := query.
		Preload("User").
		Order("rating DESC NULLS LAST").
		Limit(limit).
		Find(&workers).Error; err != nil {
		log.Printf("Error fetching workers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch workers",
		})
		return
	}

	if search != "" {
		filtered := make([]models.WorkerProfile, 0, len(workers))
		for _, w := range workers {
			if matchesWorkerSearch(&w, search) {
				filtered = append(filtered, w)
			}
		}
		workers = filtered
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"workers": workers,
	})
}

// matchesWorkerSearch checks the search term against name, bio and skill tags
func matchesWorkerSearch(w *models.WorkerProfile, search string) bool {
	if strings.Contains(strings.ToLower(w.User.FullName), search) {
		return true
	}
	if w.Bio != nil && strings.Contains(strings.ToLower(*w.Bio), search) {
		return true
	}
	for _, skill := range w.SkillList() {
		if strings.Contains(strings.ToLower(skill), search) {
			return true
		}
	}
	return false
}

func getWorker(c *gin.Context) {
	workerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid worker ID",
		})
		return
	}

	var worker models.WorkerProfile
	if err := database.DB.Preload("User").First(&worker, workerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Worker not found",
			})
			return
		}
		log.Printf("Error fetching worker profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch worker profile",
		})
		return
	}

	// Only verified workers are publicly visible
	if worker.VerificationStatus != models.VerificationVerified {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Worker not found",
		})
		return
	}

	var documents []models.WorkerDocument
	if err := database.DB.
		Where("worker_id = ? AND verification_status = ?", worker.UserID, models.VerificationVerified).
		Find(&documents).Error; err != nil {
		log.Printf("Error fetching worker documents: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"worker":    worker,
		"documents": documents,
	})
}

// ===== SELF-MANAGEMENT HANDLERS =====

func createWorkerProfile(c *gin.Context) {
	userValue, _ := c.Get("user")
	user := userValue.(models.User)

	if !user.IsWorker() {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "Only worker accounts can create a worker profile",
		})
		return
	}

	var req models.WorkerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	if req.HourlyRate.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Hourly rate must not be negative",
		})
		return
	}

	var existing models.WorkerProfile
	if err := database.DB.Where("user_id = ?", user.ID).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"message": "Worker profile already exists",
		})
		return
	}

	profile := models.WorkerProfile{
		UserID:             user.ID,
		ServiceType:        req.ServiceType,
		ExperienceYears:    req.ExperienceYears,
		HourlyRate:         req.HourlyRate,
		Bio:                req.Bio,
		Skills:             joinSkills(req.Skills),
		AvailabilityStatus: models.AvailabilityAvailable,
		VerificationStatus: models.VerificationPending,
	}

	if err := database.DB.Create(&profile).Error; err != nil {
		log.Printf("Error creating worker profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to create worker profile",
		})
		return
	}

	log.Printf("✅ Worker profile created for user %d", user.ID)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"worker":  profile,
	})
}

func updateWorkerProfile(c *gin.Context) {
	userID := c.GetUint("user_id")

	var profile models.WorkerProfile
	if err := database.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Worker profile not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch worker profile",
		})
		return
	}

	var req models.WorkerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	if req.HourlyRate.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Hourly rate must not be negative",
		})
		return
	}

	// Rating, total_reviews and verification_status are never writable here:
	// the first two belong to review submission, the last to the admin surface.
	updates := map[string]interface{}{
		"service_type":     req.ServiceType,
		"experience_years": req.ExperienceYears,
		"hourly_rate":      req.HourlyRate,
		"bio":              req.Bio,
		"skills":           joinSkills(req.Skills),
	}

	if err := database.DB.Model(&profile).Updates(updates).Error; err != nil {
		log.Printf("Error updating worker profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to update worker profile",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"worker":  profile,
	})
}

func updateAvailability(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req models.AvailabilityUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	result := database.DB.Model(&models.WorkerProfile{}).
		Where("user_id = ?", userID).
		Update("availability_status", req.AvailabilityStatus)
	if result.Error != nil {
		log.Printf("Error updating availability: %v", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to update availability",
		})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Worker profile not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":             true,
		"availability_status": req.AvailabilityStatus,
	})
}

func joinSkills(skills []string) string {
	cleaned := make([]string, 0, len(skills))
	for _, s := range skills {
		s = middleware.SanitizeInput(s)
		if s != "" {
			cleaned = append(cleaned, s)
		}
	}
	return strings.Join(cleaned, ",")
}
