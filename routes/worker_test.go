package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"booking-marketplace-server/models"
)

func strPtr(s string) *string { return &s }

func TestMatchesWorkerSearch(t *testing.T) {
	worker := &models.WorkerProfile{
		Bio:    strPtr("Experienced plumber covering the north side"),
		Skills: "pipe fitting,leak repair",
		User:   models.User{FullName: "Thandi Nkosi"},
	}

	assert.True(t, matchesWorkerSearch(worker, "thandi"))
	assert.True(t, matchesWorkerSearch(worker, "north side"))
	assert.True(t, matchesWorkerSearch(worker, "leak"))
	assert.False(t, matchesWorkerSearch(worker, "gardening"))
}

func TestMatchesWorkerSearchNilBio(t *testing.T) {
	worker := &models.WorkerProfile{
		User: models.User{FullName: "Sipho Dlamini"},
	}

	assert.True(t, matchesWorkerSearch(worker, "sipho"))
	assert.False(t, matchesWorkerSearch(worker, "plumber"))
}

func TestJoinSkills(t *testing.T) {
	assert.Equal(t, "gardening,lawn care", joinSkills([]string{" gardening ", "lawn care"}))
	assert.Equal(t, "", joinSkills(nil))
	assert.Equal(t, "pruning", joinSkills([]string{"", "  ", "pruning"}))
}
