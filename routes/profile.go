package routes

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"booking-marketplace-server/database"
	"booking-marketplace-server/middleware"
	"booking-marketplace-server/models"
)

// RegisterProfileRoutes registers profile routes
func RegisterProfileRoutes(router *gin.RouterGroup) {
	router.GET("/profile", getMyProfile)
	router.PUT("/profile", updateMyProfile)
	router.POST("/profile/avatar", uploadAvatar)
}

func getMyProfile(c *gin.Context) {
	userID := c.GetUint("user_id")

	var user models.User
	if err := database.DB.Preload("WorkerProfile").First(&user, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Profile not found",
			})
			return
		}
		log.Printf("Error fetching profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch profile",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"profile": user,
	})
}

func updateMyProfile(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req struct {
		FullName string `json:"full_name" binding:"required,min=2,max=100"`
		Phone    string `json:"phone" binding:"required,min=7,max=20"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	updates := map[string]interface{}{
		"full_name": middleware.SanitizeInput(req.FullName),
		"phone":     req.Phone,
	}

	if err := database.DB.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		log.Printf("Error updating profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to update profile",
		})
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Profile updated but failed to load details",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"profile": user,
	})
}

func uploadAvatar(c *gin.Context) {
	userID := c.GetUint("user_id")

	header, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "No avatar file provided",
		})
		return
	}

	if !validateImageFile(header) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid avatar file",
		})
		return
	}

	url, _, err := uploadToStorage(c.Request.Context(), header, "avatars", fmt.Sprintf("user_%d", userID))
	if err != nil {
		log.Printf("❌ Avatar upload failed for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to upload avatar",
		})
		return
	}

	if err := database.DB.Model(&models.User{}).Where("id = ?", userID).Update("avatar_url", url).Error; err != nil {
		log.Printf("Error saving avatar URL: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Avatar uploaded but failed to save",
		})
		return
	}

	log.Printf("📸 Avatar updated for user %d", userID)
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"avatar_url": url,
	})
}
