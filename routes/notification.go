package routes

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"booking-marketplace-server/database"
	"booking-marketplace-server/models"
)

// RegisterNotificationRoutes registers notification routes
func RegisterNotificationRoutes(router *gin.RouterGroup) {
	router.GET("", getUserNotifications)
	router.GET("/", getUserNotifications)
	router.GET("/unread-count", getUnreadCount)
	router.POST("/mark-read/:id", markNotificationAsRead)
	router.POST("/mark-all-read", markAllNotificationsAsRead)
	router.POST("/register-token", registerPushToken)
}

func getUserNotifications(c *gin.Context) {
	userID := c.GetUint("user_id")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	offset := (page - 1) * limit

	var total int64
	database.DB.Model(&models.Notification{}).Where("user_id = ?", userID).Count(&total)

	var notifications []models.Notification
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&notifications).Error; err != nil {
		log.Printf("Error fetching notifications: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
			"pages": (total + int64(limit) - 1) / int64(limit),
		},
	})
}

func getUnreadCount(c *gin.Context) {
	userID := c.GetUint("user_id")

	var count int64
	if err := database.DB.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&count).Error; err != nil {
		log.Printf("Error counting unread notifications: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"unread_count": count})
}

func markNotificationAsRead(c *gin.Context) {
	userID := c.GetUint("user_id")

	notificationID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification ID"})
		return
	}

	result := database.DB.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("read", true)
	if result.Error != nil {
		log.Printf("Error marking notification read: %v", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func markAllNotificationsAsRead(c *gin.Context) {
	userID := c.GetUint("user_id")

	if err := database.DB.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true).Error; err != nil {
		log.Printf("Error marking notifications read: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// registerPushToken registers or refreshes a device push token for a user
func registerPushToken(c *gin.Context) {
	userID := c.GetUint("user_id")

	var request struct {
		PushToken string `json:"push_token" binding:"required"`
		Platform  string `json:"platform" binding:"required,oneof=ios android"`
		DeviceID  string `json:"device_id"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existingToken models.PushToken
	err := database.DB.Where("token = ?", request.PushToken).First(&existingToken).Error

	if err == gorm.ErrRecordNotFound {
		token := models.PushToken{
			UserID:   userID,
			Token:    request.PushToken,
			Platform: request.Platform,
			DeviceID: request.DeviceID,
			Active:   true,
		}

		if err := database.DB.Create(&token).Error; err != nil {
			log.Printf("❌ Error creating push token: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register push token"})
			return
		}
	} else if err != nil {
		log.Printf("❌ Error checking existing token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	} else {
		existingToken.UserID = userID
		existingToken.Platform = request.Platform
		existingToken.DeviceID = request.DeviceID
		existingToken.Active = true
		existingToken.UpdatedAt = time.Now()

		if err := database.DB.Save(&existingToken).Error; err != nil {
			log.Printf("❌ Error updating push token: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update push token"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Push token registered",
	})
}
