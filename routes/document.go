package routes

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"booking-marketplace-server/database"
	"booking-marketplace-server/models"
)

// RegisterDocumentRoutes registers worker verification document routes
func RegisterDocumentRoutes(router *gin.RouterGroup) {
	router.POST("/documents", uploadDocument)
	router.GET("/documents", listMyDocuments)
	router.DELETE("/documents/:id", deleteDocument)
}

// uploadDocument stores a verification artifact in object storage and records
// it with a pending verification status for out-of-band admin review.
func uploadDocument(c *gin.Context) {
	userValue, _ := c.Get("user")
	user := userValue.(models.User)

	if !user.IsWorker() {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "Only workers can upload verification documents",
		})
		return
	}

	documentType := models.DocumentType(c.PostForm("document_type"))
	if !models.IsValidDocumentType(documentType) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid document type",
		})
		return
	}

	header, err := c.FormFile("document")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "No document file provided",
		})
		return
	}

	if !validateDocumentFile(header) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid document file",
		})
		return
	}

	url, publicID, err := uploadToStorage(
		c.Request.Context(),
		header,
		"documents",
		fmt.Sprintf("worker_%d_%s_%d", user.ID, documentType, time.Now().Unix()),
	)
	if err != nil {
		log.Printf("❌ Document upload failed for worker %d: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to upload document",
		})
		return
	}

	document := models.WorkerDocument{
		WorkerID:           user.ID,
		DocumentType:       documentType,
		DocumentURL:        url,
		PublicID:           publicID,
		VerificationStatus: models.VerificationPending,
	}

	if err := database.DB.Create(&document).Error; err != nil {
		log.Printf("Error saving document record: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Document uploaded but failed to save",
		})
		return
	}

	log.Printf("📄 Document %d uploaded by worker %d (%s)", document.ID, user.ID, documentType)
	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"document": document,
	})
}

func listMyDocuments(c *gin.Context) {
	userID := c.GetUint("user_id")

	var documents []models.WorkerDocument
	if err := database.DB.
		Where("worker_id = ?", userID).
		Order("uploaded_at DESC").
		Find(&documents).Error; err != nil {
		log.Printf("Error fetching documents: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch documents",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"documents": documents,
	})
}

func deleteDocument(c *gin.Context) {
	userID := c.GetUint("user_id")

	documentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid document ID",
		})
		return
	}

	var document models.WorkerDocument
	if err := database.DB.First(&document, documentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Document not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch document",
		})
		return
	}

	if document.WorkerID != userID {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "You can only delete your own documents",
		})
		return
	}

	if document.PublicID != "" {
		if err := deleteFromStorage(c.Request.Context(), document.PublicID); err != nil {
			log.Printf("⚠️ Failed to delete stored document %s: %v", document.PublicID, err)
		}
	}

	if err := database.DB.Delete(&document).Error; err != nil {
		log.Printf("Error deleting document record: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to delete document",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Document deleted",
	})
}
