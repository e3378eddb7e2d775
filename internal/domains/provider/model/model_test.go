package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"handy/internal/domains/provider/model"
	"handy/shared/constant"
	"handy/shared/timezone"
)

// The default week is what gets written for a provider on first schedule
// access, so its shape doubles as the seed row contract.
func TestDefaultSchedule(t *testing.T) {
	schedules := model.DefaultSchedule("provider-1")

	assert.Len(t, schedules, 7)

	for _, schedule := range schedules {
		assert.Equal(t, "provider-1", schedule.ProviderID)
		assert.Equal(t, "09:00", schedule.StartTime)
		assert.Equal(t, "17:00", schedule.EndTime)

		day := time.Weekday(schedule.Weekday)
		if day == time.Saturday || day == time.Sunday {
			assert.False(t, schedule.Active, "weekends are off by default")
		} else {
			assert.True(t, schedule.Active)
		}
	}
}

func TestWorksAt(t *testing.T) {
	schedules := model.DefaultSchedule("provider-1")

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{
			name: "weekday inside working hours",
			at:   time.Date(2026, time.September, 1, 10, 0, 0, 0, timezone.GetLocation()),
			want: true,
		},
		{
			name: "opening minute",
			at:   time.Date(2026, time.September, 1, 9, 0, 0, 0, timezone.GetLocation()),
			want: true,
		},
		{
			name: "closing minute is exclusive",
			at:   time.Date(2026, time.September, 1, 17, 0, 0, 0, timezone.GetLocation()),
			want: false,
		},
		{
			name: "sunday is inactive",
			at:   time.Date(2026, time.September, 6, 10, 0, 0, 0, timezone.GetLocation()),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.WorksAt(schedules, tt.at))
		})
	}
}

func TestProviderVerified(t *testing.T) {
	assert.True(t, model.Provider{VerificationStatus: constant.VerificationVerified}.Verified())
	assert.False(t, model.Provider{VerificationStatus: constant.VerificationPending}.Verified())
	assert.False(t, model.Provider{}.Verified())
}
