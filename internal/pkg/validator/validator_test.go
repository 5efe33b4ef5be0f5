package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("a"))
	assert.False(t, IsEmpty("  a  "))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.example.co"))
	assert.False(t, IsValidEmail("user@"))
	assert.False(t, IsValidEmail("user example.com"))
	assert.False(t, IsValidEmail("user@example"))
}

func TestIsValidDate(t *testing.T) {
	d, ok := IsValidDate("2024-03-15")
	assert.True(t, ok)
	assert.Equal(t, 2024, d.Year())

	_, ok = IsValidDate("15-03-2024")
	assert.False(t, ok)
	_, ok = IsValidDate("2024-02-30")
	assert.False(t, ok)
}

func TestIsValidClock(t *testing.T) {
	c, ok := IsValidClock("09:30")
	assert.True(t, ok)
	assert.Equal(t, 9, c.Hour())
	assert.Equal(t, 30, c.Minute())

	_, ok = IsValidClock("24:00")
	assert.False(t, ok)
	_, ok = IsValidClock("9:30 AM")
	assert.False(t, ok)
	_, ok = IsValidClock("0930")
	assert.False(t, ok)
}

func TestIsValidDateTime(t *testing.T) {
	_, ok := IsValidDateTime("2024-01-15T10:30:00Z")
	assert.True(t, ok)
	_, ok = IsValidDateTime("2024-01-15T10:30:00+04:00")
	assert.True(t, ok)
	_, ok = IsValidDateTime("2024-01-15 10:30:00")
	assert.False(t, ok)
}

func TestIsInSlice(t *testing.T) {
	values := []string{"pending", "approved", "rejected"}
	assert.True(t, IsInSlice("approved", values))
	assert.False(t, IsInSlice("Approved", values))
	assert.False(t, IsInSlice("", values))
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email is required"},
		{Field: "password", Message: "password is too short"},
	}
	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "email is required", m["email"])
	assert.Contains(t, errs.Error(), "password: password is too short")
}
