package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ServiceType represents the kind of work a worker offers
type ServiceType string

const (
	ServiceDomesticWorker ServiceType = "domestic_worker"
	ServiceGardener       ServiceType = "gardener"
	ServicePlumber        ServiceType = "plumber"
	ServiceHandyman       ServiceType = "handyman"
)

// AvailabilityStatus is toggled by the worker ad hoc
type AvailabilityStatus string

const (
	AvailabilityAvailable   AvailabilityStatus = "available"
	AvailabilityBusy        AvailabilityStatus = "busy"
	AvailabilityUnavailable AvailabilityStatus = "unavailable"
)

// VerificationStatus is an administrative approval state, reviewed out-of-band
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// WorkerProfile represents a worker's public service attributes.
// Rating and TotalReviews are derived values: they are written only when a
// review is submitted, never by the worker directly.
type WorkerProfile struct {
	ID                 uint               `json:"id" gorm:"primaryKey"`
	UserID             uint               `json:"user_id" gorm:"uniqueIndex;not null"`
	ServiceType        ServiceType        `json:"service_type" gorm:"type:varchar(30);not null;check:service_type IN ('domestic_worker','gardener','plumber','handyman')"`
	ExperienceYears    int                `json:"experience_years" gorm:"not null;default:0;check:experience_years >= 0"`
	HourlyRate         decimal.Decimal    `json:"hourly_rate" gorm:"type:decimal(10,2);not null"`
	Bio                *string            `json:"bio" gorm:"type:text"`
	Skills             string             `json:"skills" gorm:"type:text"` // comma-joined tags
	AvailabilityStatus AvailabilityStatus `json:"availability_status" gorm:"type:varchar(20);not null;default:'available'"`
	VerificationStatus VerificationStatus `json:"verification_status" gorm:"type:varchar(20);not null;default:'pending'"`
	Rating             *decimal.Decimal   `json:"rating" gorm:"type:decimal(3,2)"` // null until first review
	TotalReviews       int                `json:"total_reviews" gorm:"not null;default:0"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
	DeletedAt          gorm.DeletedAt     `json:"deleted_at,omitempty" gorm:"index"`

	// Relationships
	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for the WorkerProfile model
func (WorkerProfile) TableName() string {
	return "worker_profiles"
}

// SkillList splits the stored skills string into individual tags
func (wp *WorkerProfile) SkillList() []string {
	if strings.TrimSpace(wp.Skills) == "" {
		return nil
	}
	parts := strings.Split(wp.Skills, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// WorkerProfileRequest represents the request structure for creating/updating a worker profile
type WorkerProfileRequest struct {
	ServiceType     ServiceType     `json:"service_type" binding:"required,oneof=domestic_worker gardener plumber handyman"`
	ExperienceYears int             `json:"experience_years" binding:"min=0"`
	HourlyRate      decimal.Decimal `json:"hourly_rate" binding:"required"`
	Bio             *string         `json:"bio"`
	Skills          []string        `json:"skills"`
}

// AvailabilityUpdateRequest represents a worker's availability toggle
type AvailabilityUpdateRequest struct {
	AvailabilityStatus AvailabilityStatus `json:"availability_status" binding:"required,oneof=available busy unavailable"`
}

// GetServiceTypes returns all supported service types
func GetServiceTypes() []ServiceType {
	return []ServiceType{
		ServiceDomesticWorker,
		ServiceGardener,
		ServicePlumber,
		ServiceHandyman,
	}
}

// IsValidServiceType checks whether s is a known service type
func IsValidServiceType(s ServiceType) bool {
	switch s {
	case ServiceDomesticWorker, ServiceGardener, ServicePlumber, ServiceHandyman:
		return true
	default:
		return false
	}
}
