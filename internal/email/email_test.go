package email

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	valid := []string{
		"a@b.co",
		"ava.stone@nimbus.io",
		"USER+tag@sub.example.com",
		"  padded@example.com  ",
	}
	for _, addr := range valid {
		assert.True(t, Valid(addr), addr)
	}

	invalid := []string{
		"",
		"   ",
		"bad-email",
		"no-at.example.com",
		"two@@example.com",
		"spaces in@example.com",
		"@example.com",
		"user@nodot",
		"a@b.c", // below the minimum length
		"x@" + strings.Repeat("d", 250) + ".io",
	}
	for _, addr := range invalid {
		assert.False(t, Valid(addr), addr)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "ava@nimbus.io", Normalize("  AVA@Nimbus.IO "))
}

func TestValidationMessage(t *testing.T) {
	assert.Equal(t, "Email is required.", ValidationMessage(""))
	assert.Equal(t, "Email is required.", ValidationMessage("   "))
	assert.Equal(t, "Enter a valid email address.", ValidationMessage("bad-email"))
	assert.Empty(t, ValidationMessage("ava@nimbus.io"))
}
