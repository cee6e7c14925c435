package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidMobileNumber(t *testing.T) {
	valid := []string{
		"9876543210",
		"6000000000",
		"7123456789",
		"8123456789",
		"+91 98765 43210",
		"91-9876543210",
		"09876543210",
	}
	for _, number := range valid {
		assert.True(t, IsValidMobileNumber(number), "%q should be valid", number)
	}

	invalid := []string{
		"",
		"5876543210",
		"987654321",
		"98765432100",
		"abcdefghij",
		"98765 4321x",
	}
	for _, number := range invalid {
		assert.False(t, IsValidMobileNumber(number), "%q should be invalid", number)
	}
}

func TestNormalizeContact(t *testing.T) {
	assert.Equal(t, "9876543210", NormalizeContact("+91 98765-43210"))
	assert.Equal(t, "9876543210", NormalizeContact("919876543210"))
	assert.Equal(t, "9876543210", NormalizeContact("09876543210"))
	assert.Equal(t, "9876543210", NormalizeContact("9876543210"))
}
