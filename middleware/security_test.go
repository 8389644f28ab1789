package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("user@example.com"))
	assert.True(t, ValidateEmail("first.last+tag@sub.example.co"))
	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail("missing@domain @space.com"))
	assert.False(t, ValidateEmail(""))
}

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "&lt;script&gt;alert(1)&lt;/script&gt;", SanitizeInput("<script>alert(1)</script>"))
	assert.Equal(t, "O&#x27;Brien", SanitizeInput("O'Brien"))
	assert.Equal(t, "say &quot;hi&quot;", SanitizeInput(`say "hi"`))
	assert.Equal(t, "trimmed", SanitizeInput("  trimmed  "))
}

func TestValidatePasswordStrength(t *testing.T) {
	ok, errs := ValidatePasswordStrength("Str0ngpass")
	assert.True(t, ok)
	assert.Empty(t, errs)

	ok, errs = ValidatePasswordStrength("short1A")
	assert.False(t, ok)
	assert.Len(t, errs, 1)

	ok, errs = ValidatePasswordStrength("alllowercase1")
	assert.False(t, ok)
	assert.Contains(t, errs, "Password must contain at least one uppercase letter")

	ok, errs = ValidatePasswordStrength("NODIGITSHERE")
	assert.False(t, ok)
	assert.Contains(t, errs, "Password must contain at least one lowercase letter")
	assert.Contains(t, errs, "Password must contain at least one digit")
}
