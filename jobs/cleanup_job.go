package jobs

import (
	"log"
	"time"

	"booking-marketplace-server/services"
)

// CleanupJob periodically purges expired and revoked refresh tokens
type CleanupJob struct {
	jwtService *services.JWTService
	stopChan   chan bool
}

// NewCleanupJob creates a new cleanup job
func NewCleanupJob() *CleanupJob {
	return &CleanupJob{
		jwtService: services.NewJWTService(),
		stopChan:   make(chan bool),
	}
}

// Start begins the cleanup job
func (j *CleanupJob) Start() {
	go j.run()
	log.Println("🚀 Token cleanup job started")
}

// Stop stops the cleanup job
func (j *CleanupJob) Stop() {
	j.stopChan <- true
	log.Println("🛑 Token cleanup job stopped")
}

// run executes the cleanup job
func (j *CleanupJob) run() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	// Run once at startup so restarts do not accumulate stale tokens
	j.cleanupTokens()

	for {
		select {
		case <-ticker.C:
			j.cleanupTokens()
		case <-j.stopChan:
			return
		}
	}
}

func (j *CleanupJob) cleanupTokens() {
	if err := j.jwtService.CleanupExpiredTokens(); err != nil {
		log.Printf("❌ Error cleaning up expired tokens: %v", err)
		return
	}
	log.Println("🧹 Expired refresh tokens cleaned up")
}
