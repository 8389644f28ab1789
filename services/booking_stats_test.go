package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"booking-marketplace-server/models"
)

func booking(status models.BookingStatus, amount float64, date, createdAt time.Time) models.Booking {
	return models.Booking{
		Status:      status,
		TotalAmount: decimal.NewFromFloat(amount),
		BookingDate: date,
		CreatedAt:   createdAt,
	}
}

func TestComputeWorkerStats(t *testing.T) {
	now := time.Date(2026, time.September, 15, 12, 0, 0, 0, time.UTC)
	tomorrow := now.AddDate(0, 0, 1)
	lastWeek := now.AddDate(0, 0, -7)
	lastMonth := now.AddDate(0, -1, 0)

	bookings := []models.Booking{
		booking(models.BookingStatusPending, 100, tomorrow, now),
		booking(models.BookingStatusPending, 50, tomorrow, now),
		booking(models.BookingStatusAccepted, 200, tomorrow, lastWeek),
		booking(models.BookingStatusAccepted, 150, lastWeek, lastWeek), // date passed, not upcoming
		booking(models.BookingStatusInProgress, 80, now, lastWeek),
		booking(models.BookingStatusCompleted, 300, lastWeek, lastWeek),
		booking(models.BookingStatusCompleted, 120, lastMonth, lastMonth), // previous month, no earnings
		booking(models.BookingStatusCancelled, 999, tomorrow, now),
	}

	stats := ComputeWorkerStats(bookings, now)

	assert.Equal(t, 2, stats.Pending)
	assert.Equal(t, 1, stats.Upcoming)
	assert.Equal(t, 2, stats.Completed)
	assert.True(t, stats.TotalEarningsThisMonth.Equal(decimal.NewFromInt(300)),
		"got %s", stats.TotalEarningsThisMonth)
}

func TestComputeWorkerStatsMonthBoundary(t *testing.T) {
	now := time.Date(2026, time.September, 1, 0, 30, 0, 0, time.UTC)
	monthStart := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	justBefore := monthStart.Add(-time.Minute)

	bookings := []models.Booking{
		booking(models.BookingStatusCompleted, 100, justBefore, monthStart),
		booking(models.BookingStatusCompleted, 40, justBefore, justBefore),
	}

	stats := ComputeWorkerStats(bookings, now)

	assert.Equal(t, 2, stats.Completed)
	assert.True(t, stats.TotalEarningsThisMonth.Equal(decimal.NewFromInt(100)),
		"got %s", stats.TotalEarningsThisMonth)
}

func TestComputeWorkerStatsEmpty(t *testing.T) {
	stats := ComputeWorkerStats(nil, time.Now())

	assert.Zero(t, stats.Pending)
	assert.Zero(t, stats.Upcoming)
	assert.Zero(t, stats.Completed)
	assert.True(t, stats.TotalEarningsThisMonth.IsZero())
}

func TestComputeClientStats(t *testing.T) {
	now := time.Now()

	bookings := []models.Booking{
		booking(models.BookingStatusPending, 100, now, now),
		booking(models.BookingStatusAccepted, 200, now, now),
		booking(models.BookingStatusInProgress, 80, now, now),
		booking(models.BookingStatusCompleted, 300, now, now),
		booking(models.BookingStatusCompleted, 150, now, now),
		booking(models.BookingStatusCancelled, 999, now, now),
	}

	stats := ComputeClientStats(bookings)

	assert.Equal(t, 3, stats.Active)
	assert.Equal(t, 2, stats.Completed)
	assert.Equal(t, 1, stats.Cancelled)
	assert.True(t, stats.TotalSpent.Equal(decimal.NewFromInt(450)),
		"got %s", stats.TotalSpent)
}
