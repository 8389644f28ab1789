package services

import (
	"time"

	"github.com/shopspring/decimal"

	"booking-marketplace-server/models"
)

// WorkerBookingStats summarises a worker's booking set. Computed by scanning
// the full set on every call; nothing is persisted.
type WorkerBookingStats struct {
	Pending                int             `json:"pending"`
	Upcoming               int             `json:"upcoming"`
	Completed              int             `json:"completed"`
	TotalEarningsThisMonth decimal.Decimal `json:"total_earnings_this_month"`
}

// ClientBookingStats summarises a client's booking set
type ClientBookingStats struct {
	Active     int             `json:"active"`
	Completed  int             `json:"completed"`
	Cancelled  int             `json:"cancelled"`
	TotalSpent decimal.Decimal `json:"total_spent"`
}

// ComputeWorkerStats folds a worker's bookings into counts and this-month
// earnings. Upcoming means accepted bookings whose date has not passed;
// earnings count completed bookings created since the first of the month.
func ComputeWorkerStats(bookings []models.Booking, now time.Time) WorkerBookingStats {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	stats := WorkerBookingStats{TotalEarningsThisMonth: decimal.Zero}
	for _, b := range bookings {
		switch b.Status {
		case models.BookingStatusPending:
			stats.Pending++
		case models.BookingStatusAccepted:
			if !b.BookingDate.Before(now.Truncate(24 * time.Hour)) {
				stats.Upcoming++
			}
		case models.BookingStatusCompleted:
			stats.Completed++
			if !b.CreatedAt.Before(monthStart) {
				stats.TotalEarningsThisMonth = stats.TotalEarningsThisMonth.Add(b.TotalAmount)
			}
		}
	}
	return stats
}

// ComputeClientStats folds a client's bookings into counts and lifetime spend.
// Active covers pending, accepted and in-progress bookings; spend counts
// completed bookings only.
func ComputeClientStats(bookings []models.Booking) ClientBookingStats {
	stats := ClientBookingStats{TotalSpent: decimal.Zero}
	for _, b := range bookings {
		switch b.Status {
		case models.BookingStatusPending, models.BookingStatusAccepted, models.BookingStatusInProgress:
			stats.Active++
		case models.BookingStatusCompleted:
			stats.Completed++
			stats.TotalSpent = stats.TotalSpent.Add(b.TotalAmount)
		case models.BookingStatusCancelled:
			stats.Cancelled++
		}
	}
	return stats
}
