package models

import (
	"time"
)

// Review represents a client's one-time assessment of a completed booking.
// At most one review exists per booking (unique index on booking_id), and a
// review is immutable once created: there is no edit or delete path.
type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	BookingID uint      `json:"booking_id" gorm:"uniqueIndex:idx_reviews_booking_id;not null"`
	WorkerID  uint      `json:"worker_id" gorm:"not null;index"`
	ClientID  uint      `json:"client_id" gorm:"not null;index"`
	Rating    int       `json:"rating" gorm:"type:int;not null;check:rating >= 1 AND rating <= 5"`
	Comment   *string   `json:"comment" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Relationships
	Booking Booking `json:"booking,omitempty" gorm:"foreignKey:BookingID"`
	Worker  User    `json:"worker,omitempty" gorm:"foreignKey:WorkerID"`
	Client  User    `json:"client,omitempty" gorm:"foreignKey:ClientID"`
}

// TableName specifies the table name for the Review model
func (Review) TableName() string {
	return "reviews"
}

// ReviewCreateRequest represents the request structure for submitting a review
type ReviewCreateRequest struct {
	BookingID uint    `json:"booking_id" binding:"required"`
	Rating    int     `json:"rating" binding:"required,min=1,max=5"`
	Comment   *string `json:"comment"`
}
