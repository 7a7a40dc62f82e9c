package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("Jane"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"admin@example.com",
		"first.last+tag@sub.example.co.id",
	}
	invalid := []string{
		"",
		"admin",
		"admin@",
		"@example.com",
		"admin@example",
	}

	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("1990-05-20")
	assert.True(t, ok)
	assert.Equal(t, time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC), date)

	for _, bad := range []string{"", "20/05/1990", "1990-13-01", "1990-05-32", "yesterday"} {
		_, ok := IsValidDate(bad)
		assert.False(t, ok, bad)
	}
}

func TestIsValidClockTime(t *testing.T) {
	for _, good := range []string{"00:00", "09:00", "17:15", "23:59"} {
		_, ok := IsValidClockTime(good)
		assert.True(t, ok, good)
	}
	for _, bad := range []string{"", "24:00", "9:0:0", "17:60", "five"} {
		_, ok := IsValidClockTime(bad)
		assert.False(t, ok, bad)
	}
}

func TestIsInSlice(t *testing.T) {
	options := []string{"in", "out"}
	assert.True(t, IsInSlice("in", options))
	assert.True(t, IsInSlice("out", options))
	assert.False(t, IsInSlice("IN", options))
	assert.False(t, IsInSlice("", options))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "employeeName", Message: "employeeName is required"},
		{Field: "punchType", Message: "punchType must be one of: in, out"},
	}

	assert.Equal(t, "employeeName: employeeName is required; punchType: punchType must be one of: in, out", errs.Error())
	assert.Equal(t, map[string]string{
		"employeeName": "employeeName is required",
		"punchType":    "punchType must be one of: in, out",
	}, errs.ToMap())
}
