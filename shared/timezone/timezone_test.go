package timezone_test

import (
	"handy/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToLocalFixedOffset(t *testing.T) {
	// Default offset is +330 minutes (UTC+05:30).
	utc := time.Date(2024, 3, 10, 0, 29, 0, 0, time.UTC)

	local := timezone.ToLocal(utc)

	assert.Equal(t, 5, local.Hour())
	assert.Equal(t, 59, local.Minute())
}

func TestToLocalCrossesMidnight(t *testing.T) {
	utc := time.Date(2024, 3, 10, 20, 0, 0, 0, time.UTC)

	local := timezone.ToLocal(utc)

	// 20:00 UTC is 01:30 the next local day.
	assert.Equal(t, 11, local.Day())
	assert.Equal(t, 1, local.Hour())
	assert.Equal(t, 30, local.Minute())
}

func TestClockMinutes(t *testing.T) {
	utc := time.Date(2024, 3, 10, 0, 30, 0, 0, time.UTC)

	// 00:30 UTC is 06:00 local.
	assert.Equal(t, 6*60, timezone.ClockMinutes(utc))
}

func TestParseClock(t *testing.T) {
	minutes, err := timezone.ParseClock("09:00")

	assert.NoError(t, err)
	assert.Equal(t, 9*60, minutes)

	minutes, err = timezone.ParseClock("17:30")

	assert.NoError(t, err)
	assert.Equal(t, 17*60+30, minutes)

	_, err = timezone.ParseClock("9 AM")

	assert.Error(t, err)
}

func TestNowAndLocation(t *testing.T) {
	assert.False(t, timezone.Now().IsZero())
	assert.NotNil(t, timezone.GetLocation())
}

func TestFormatRoundTrip(t *testing.T) {
	utc := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	formatted := timezone.Format(utc, "2006-01-02 15:04")

	assert.Equal(t, "2024-01-01 17:30", formatted)

	parsed, err := timezone.Parse("2006-01-02 15:04", formatted)

	assert.NoError(t, err)
	assert.True(t, parsed.Equal(utc))
}
