package timezone

import (
	"fmt"
	"handy/config"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location
)

func init() {
	cfg := config.Get()

	appLocation = locationFor(cfg.App.UTCOffsetMinutes)

	log.Info().
		Int("offsetMinutes", cfg.App.UTCOffsetMinutes).
		Str("location", appLocation.String()).
		Msg("Application timezone initialized")
}

func locationFor(offsetMinutes int) *time.Location {
	sign := "+"
	abs := offsetMinutes

	if abs < 0 {
		sign = "-"
		abs = -abs
	}

	name := fmt.Sprintf("UTC%s%02d:%02d", sign, abs/60, abs%60)

	return time.FixedZone(name, offsetMinutes*60)
}

// Now returns the current time on the region's wall clock.
func Now() time.Time {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, using UTC")
		return time.Now().UTC()
	}
	return time.Now().In(appLocation)
}

// ToLocal converts a (typically UTC) time to the region's wall clock.
func ToLocal(t time.Time) time.Time {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, using UTC")
		return t.UTC()
	}
	return t.In(appLocation)
}

// GetLocation returns the region's fixed-offset location.
func GetLocation() *time.Location {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, returning UTC")
		return time.UTC
	}
	return appLocation
}

// Parse parses a time string on the region's wall clock.
func Parse(layout, value string) (time.Time, error) {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, parsing in UTC")
		return time.Parse(layout, value)
	}
	return time.ParseInLocation(layout, value, appLocation)
}

// Format formats a time on the region's wall clock.
func Format(t time.Time, layout string) string {
	return ToLocal(t).Format(layout)
}

// ClockMinutes returns the wall-clock position of t as minutes since local
// midnight. Used for schedule-window comparisons.
func ClockMinutes(t time.Time) int {
	local := ToLocal(t)

	return local.Hour()*60 + local.Minute()
}

// ParseClock parses a "15:04" wall-clock string into minutes since midnight.
func ParseClock(value string) (int, error) {
	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return 0, fmt.Errorf("invalid wall-clock value %q: %w", value, err)
	}

	return parsed.Hour()*60 + parsed.Minute(), nil
}
