package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidTimeOfDay(t *testing.T) {
	valid := []string{"00:00", "09:30", "12:00", "23:59"}
	for _, s := range valid {
		assert.True(t, isValidTimeOfDay(s), "expected %q to be valid", s)
	}

	invalid := []string{"", "9:30", "24:00", "12:60", "12-30", "ab:cd", "12:345", "-1:00"}
	for _, s := range invalid {
		assert.False(t, isValidTimeOfDay(s), "expected %q to be invalid", s)
	}
}
