package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusAccepted   BookingStatus = "accepted"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// BookingActor identifies which side of a booking is performing a transition
type BookingActor string

const (
	ActorClient BookingActor = "client"
	ActorWorker BookingActor = "worker"
)

// ErrInvalidTransition is returned when a status update does not follow the
// booking lifecycle graph.
var ErrInvalidTransition = errors.New("invalid booking status transition")

// transitions is the booking lifecycle graph: for each current status, the
// statuses reachable from it and the actors allowed to move there.
// completed and cancelled are terminal.
var transitions = map[BookingStatus]map[BookingStatus][]BookingActor{
	BookingStatusPending: {
		BookingStatusAccepted:  {ActorWorker},
		BookingStatusCancelled: {ActorWorker, ActorClient},
	},
	BookingStatusAccepted: {
		BookingStatusInProgress: {ActorWorker},
		BookingStatusCancelled:  {ActorWorker, ActorClient},
	},
	BookingStatusInProgress: {
		BookingStatusCompleted: {ActorWorker},
	},
}

// CanTransition reports whether actor may move a booking from one status to
// another along the lifecycle graph.
func CanTransition(from, to BookingStatus, actor BookingActor) bool {
	targets, ok := transitions[from]
	if !ok {
		return false
	}
	actors, ok := targets[to]
	if !ok {
		return false
	}
	for _, a := range actors {
		if a == actor {
			return true
		}
	}
	return false
}

// IsValidBookingStatus checks whether s is a known booking status
func IsValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusPending, BookingStatusAccepted, BookingStatusInProgress,
		BookingStatusCompleted, BookingStatusCancelled:
		return true
	default:
		return false
	}
}

// Booking represents a scheduled engagement between a client and a worker.
// Bookings are never deleted: cancellation is a terminal status, not a removal.
type Booking struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	ClientID    uint            `json:"client_id" gorm:"not null;index"`
	WorkerID    uint            `json:"worker_id" gorm:"not null;index"`
	ServiceType ServiceType     `json:"service_type" gorm:"type:varchar(30);not null"`
	BookingDate time.Time       `json:"booking_date" gorm:"type:date;not null"`
	StartTime   string          `json:"start_time" gorm:"size:5;not null"` // "HH:MM"
	EndTime     string          `json:"end_time" gorm:"size:5;not null"`
	Location    string          `json:"location" gorm:"size:500;not null"`
	Description *string         `json:"description" gorm:"size:1000"`
	TotalAmount decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	Status      BookingStatus   `json:"status" gorm:"type:varchar(20);not null;default:'pending';check:status IN ('pending','accepted','in_progress','completed','cancelled')"`
	Version     uint            `json:"version" gorm:"not null;default:0"` // optimistic concurrency counter
	CreatedAt   time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time       `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	Client User `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Worker User `json:"worker,omitempty" gorm:"foreignKey:WorkerID"`
}

// TableName specifies the table name for the Booking model
func (Booking) TableName() string {
	return "bookings"
}

// IsTerminal reports whether the booking has reached a final status
func (b *Booking) IsTerminal() bool {
	return b.Status == BookingStatusCompleted || b.Status == BookingStatusCancelled
}

// BookingCreateRequest represents the request structure for creating a booking.
// TotalAmount is computed by the caller as estimated hours times the worker's
// hourly rate; the server validates it for non-negativity only.
type BookingCreateRequest struct {
	WorkerID    uint            `json:"worker_id" binding:"required"`
	ServiceType ServiceType     `json:"service_type" binding:"required,oneof=domestic_worker gardener plumber handyman"`
	BookingDate string          `json:"booking_date" binding:"required"` // "2006-01-02"
	StartTime   string          `json:"start_time" binding:"required"`
	EndTime     string          `json:"end_time" binding:"required"`
	Location    string          `json:"location" binding:"required,max=500"`
	Description *string         `json:"description"`
	TotalAmount decimal.Decimal `json:"total_amount" binding:"required"`
}

// BookingStatusUpdateRequest represents a status transition request
type BookingStatusUpdateRequest struct {
	Status BookingStatus `json:"status" binding:"required,oneof=pending accepted in_progress completed cancelled"`
}

// BookingWithCounterpart is the joined query shape returned by booking lists:
// the booking plus the other party's public profile, and the worker's service
// attributes when the counterpart is a worker.
type BookingWithCounterpart struct {
	Booking
	Counterpart       PublicProfile  `json:"counterpart"`
	CounterpartWorker *WorkerProfile `json:"counterpart_worker,omitempty"`
}
