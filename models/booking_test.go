package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionLegalEdges(t *testing.T) {
	cases := []struct {
		name  string
		from  BookingStatus
		to    BookingStatus
		actor BookingActor
	}{
		{"worker accepts pending", BookingStatusPending, BookingStatusAccepted, ActorWorker},
		{"worker cancels pending", BookingStatusPending, BookingStatusCancelled, ActorWorker},
		{"client cancels pending", BookingStatusPending, BookingStatusCancelled, ActorClient},
		{"worker starts accepted", BookingStatusAccepted, BookingStatusInProgress, ActorWorker},
		{"worker cancels accepted", BookingStatusAccepted, BookingStatusCancelled, ActorWorker},
		{"client cancels accepted", BookingStatusAccepted, BookingStatusCancelled, ActorClient},
		{"worker completes in progress", BookingStatusInProgress, BookingStatusCompleted, ActorWorker},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, CanTransition(tc.from, tc.to, tc.actor))
		})
	}
}

func TestCanTransitionActorRestrictions(t *testing.T) {
	// Only workers drive the forward path
	assert.False(t, CanTransition(BookingStatusPending, BookingStatusAccepted, ActorClient))
	assert.False(t, CanTransition(BookingStatusAccepted, BookingStatusInProgress, ActorClient))
	assert.False(t, CanTransition(BookingStatusInProgress, BookingStatusCompleted, ActorClient))
}

func TestCanTransitionRejectsSkippedStates(t *testing.T) {
	assert.False(t, CanTransition(BookingStatusPending, BookingStatusInProgress, ActorWorker))
	assert.False(t, CanTransition(BookingStatusPending, BookingStatusCompleted, ActorWorker))
	assert.False(t, CanTransition(BookingStatusAccepted, BookingStatusCompleted, ActorWorker))
	assert.False(t, CanTransition(BookingStatusInProgress, BookingStatusCancelled, ActorClient))
	assert.False(t, CanTransition(BookingStatusInProgress, BookingStatusCancelled, ActorWorker))
}

func TestCanTransitionTerminalStatesAreFrozen(t *testing.T) {
	targets := []BookingStatus{
		BookingStatusPending,
		BookingStatusAccepted,
		BookingStatusInProgress,
		BookingStatusCompleted,
		BookingStatusCancelled,
	}

	for _, terminal := range []BookingStatus{BookingStatusCompleted, BookingStatusCancelled} {
		for _, to := range targets {
			for _, actor := range []BookingActor{ActorClient, ActorWorker} {
				assert.False(t, CanTransition(terminal, to, actor),
					"expected %s -> %s by %s to be rejected", terminal, to, actor)
			}
		}
	}
}

func TestCanTransitionNoSelfLoops(t *testing.T) {
	for _, s := range []BookingStatus{
		BookingStatusPending,
		BookingStatusAccepted,
		BookingStatusInProgress,
	} {
		assert.False(t, CanTransition(s, s, ActorWorker))
		assert.False(t, CanTransition(s, s, ActorClient))
	}
}

func TestBookingIsTerminal(t *testing.T) {
	assert.True(t, (&Booking{Status: BookingStatusCompleted}).IsTerminal())
	assert.True(t, (&Booking{Status: BookingStatusCancelled}).IsTerminal())
	assert.False(t, (&Booking{Status: BookingStatusPending}).IsTerminal())
	assert.False(t, (&Booking{Status: BookingStatusAccepted}).IsTerminal())
	assert.False(t, (&Booking{Status: BookingStatusInProgress}).IsTerminal())
}

func TestIsValidBookingStatus(t *testing.T) {
	assert.True(t, IsValidBookingStatus(BookingStatusPending))
	assert.True(t, IsValidBookingStatus(BookingStatusCancelled))
	assert.False(t, IsValidBookingStatus("archived"))
	assert.False(t, IsValidBookingStatus(""))
}
