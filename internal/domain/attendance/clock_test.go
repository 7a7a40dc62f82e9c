package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateWorkingHours(t *testing.T) {
	cases := []struct {
		name    string
		inTime  string
		outTime string
		want    string
	}{
		{"full standard day", "09:00", "17:00", "8"},
		{"half hour short", "09:00", "16:30", "7.5"},
		{"overnight shift", "22:00", "06:00", "8"},
		{"quarter hour over", "09:00", "17:15", "8.25"},
		{"one minute", "09:00", "09:01", "0.02"},
		{"zero duration", "09:00", "09:00", "0"},
		{"whitespace tolerated", " 09:00 ", " 17:00 ", "8"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := CalculateWorkingHours(c.inTime, c.outTime)
			require.NoError(t, err)
			assert.Equal(t, c.want, got.String())
		})
	}
}

func TestCalculateWorkingHours_Malformed(t *testing.T) {
	cases := []struct {
		name    string
		inTime  string
		outTime string
	}{
		{"empty in", "", "17:00"},
		{"empty out", "09:00", ""},
		{"garbage in", "nine", "17:00"},
		{"garbage out", "09:00", "5pm"},
		{"out of range", "25:00", "17:00"},
		{"missing minutes", "09", "17:00"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := CalculateWorkingHours(c.inTime, c.outTime)
			assert.ErrorIs(t, err, ErrMalformedTime)
			assert.True(t, got.IsZero())
		})
	}
}

func TestClassifyStatus(t *testing.T) {
	eight, err := CalculateWorkingHours("09:00", "17:00")
	require.NoError(t, err)
	assert.Equal(t, StatusOnTime, ClassifyStatus(eight, 8))

	sevenAndAHalf, err := CalculateWorkingHours("09:00", "16:30")
	require.NoError(t, err)
	assert.Equal(t, StatusLessHours, ClassifyStatus(sevenAndAHalf, 8))

	overnight, err := CalculateWorkingHours("22:00", "06:00")
	require.NoError(t, err)
	assert.Equal(t, StatusOnTime, ClassifyStatus(overnight, 8))

	// Threshold is configurable, not hardwired to 8
	assert.Equal(t, StatusOnTime, ClassifyStatus(sevenAndAHalf, 7))
}
