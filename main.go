package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"booking-marketplace-server/config"
	"booking-marketplace-server/database"
	"booking-marketplace-server/jobs"
	"booking-marketplace-server/middleware"
	"booking-marketplace-server/routes"
	ws "booking-marketplace-server/websocket"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load configuration
	config.Load()

	// Initialize database
	if err := database.Initialize(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	// Set Gin mode
	if config.AppConfig.Server.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Disable automatic redirects for trailing slashes
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false

	// Security middleware stack
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.InputValidationMiddleware())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.AuditLogMiddleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Booking Marketplace Server is running",
			"time":    time.Now().UTC(),
		})
	})

	// Notification hub for real-time pushes
	hub := ws.NewHub()
	go hub.Run()
	routes.Init(hub)

	// WebSocket endpoint (token passed as query param, browsers cannot set headers)
	notificationHandler := ws.NewNotificationHandler(hub)
	router.GET("/api/v1/ws/notifications",
		middleware.WebSocketAuthMiddleware(),
		notificationHandler.HandleConnection)

	// API routes
	api := router.Group("/api/v1")
	{
		// Auth routes (no authentication required) with strict rate limiting
		authRoutes := api.Group("/auth")
		authRoutes.Use(middleware.AuthRateLimitMiddleware())
		routes.RegisterAuthRoutes(authRoutes)

		// Public worker discovery
		routes.RegisterWorkerRoutes(api)

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			passwordRoutes := protected.Group("/auth")
			routes.RegisterPasswordRoutes(passwordRoutes)

			routes.RegisterProfileRoutes(protected)
			routes.RegisterWorkerProfileRoutes(protected)
			routes.RegisterBookingRoutes(protected)
			routes.RegisterReviewRoutes(protected)
			routes.RegisterDocumentRoutes(protected)

			notificationRoutes := protected.Group("/notifications")
			routes.RegisterNotificationRoutes(notificationRoutes)
		}

		// Admin authentication routes (no authentication required)
		adminAuth := api.Group("/admin/auth")
		adminAuth.Use(middleware.AuthRateLimitMiddleware())
		routes.RegisterAdminAuthRoutes(adminAuth)

		// Admin routes (protected, admin role required)
		adminRoutes := api.Group("/admin")
		adminRoutes.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
		routes.RegisterAdminRoutes(adminRoutes)
	}

	// Start background jobs
	cleanupJob := jobs.NewCleanupJob()
	cleanupJob.Start()
	defer cleanupJob.Stop()

	port := config.AppConfig.Server.Port
	log.Printf("Server starting on port %s", port)
	if err := router.Run("0.0.0.0:" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
