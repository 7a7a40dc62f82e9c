package attendance

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TimeLayout is the wire format for punch times.
const TimeLayout = "15:04"

var sixty = decimal.NewFromInt(60)

// CalculateWorkingHours returns the elapsed hours between two HH:MM clock
// times, rounded to 2 decimal places. An out-time earlier than the in-time
// is treated as falling on the next calendar day, so overnight shifts
// (22:00 -> 06:00) compute correctly. Malformed input returns
// ErrMalformedTime.
func CalculateWorkingHours(inTime, outTime string) (decimal.Decimal, error) {
	in, err := time.Parse(TimeLayout, strings.TrimSpace(inTime))
	if err != nil {
		return decimal.Zero, fmt.Errorf("punch-in %q: %w", inTime, ErrMalformedTime)
	}

	out, err := time.Parse(TimeLayout, strings.TrimSpace(outTime))
	if err != nil {
		return decimal.Zero, fmt.Errorf("punch-out %q: %w", outTime, ErrMalformedTime)
	}

	if out.Before(in) {
		out = out.Add(24 * time.Hour)
	}

	minutes := int64(out.Sub(in) / time.Minute)
	return decimal.NewFromInt(minutes).Div(sixty).Round(2), nil
}

// ClassifyStatus maps a completed session's hours to its terminal status.
func ClassifyStatus(totalHours decimal.Decimal, standardWorkHours int) string {
	if totalHours.GreaterThanOrEqual(decimal.NewFromInt(int64(standardWorkHours))) {
		return StatusOnTime
	}
	return StatusLessHours
}
