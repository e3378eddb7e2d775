package model

import (
	"handy/shared/constant"
	"handy/shared/model"
	"handy/shared/timezone"
	"time"
)

const (
	TableName  = "providers"
	EntityName = "provider"

	FieldID                 = "id"
	FieldUserID             = "user_id"
	FieldDisplayName        = "display_name"
	FieldBio                = "bio"
	FieldCredits            = "credits"
	FieldVerificationStatus = "verification_status"
)

const (
	ScheduleTableName  = "provider_schedules"
	ScheduleEntityName = "providerSchedule"

	FieldProviderID = "provider_id"
	FieldWeekday    = "weekday"
	FieldStartTime  = "start_time"
	FieldEndTime    = "end_time"
	FieldActive     = "active"
)

type Provider struct {
	ID                 string `db:"id"`
	UserID             string `db:"user_id"`
	DisplayName        string `db:"display_name"`
	Bio                string `db:"bio"`
	Credits            int    `db:"credits"`
	VerificationStatus string `db:"verification_status"`
	model.Metadata
}

// ProviderSchedule is one weekday row of a provider's working hours.
// StartTime and EndTime are local wall-clock values in "15:04" form;
// weekday follows time.Weekday numbering (Sunday = 0).
type ProviderSchedule struct {
	ID         string `db:"id"`
	ProviderID string `db:"provider_id"`
	Weekday    int    `db:"weekday"`
	StartTime  string `db:"start_time"`
	EndTime    string `db:"end_time"`
	Active     bool   `db:"active"`
	model.Metadata
}

// DefaultSchedule is the working week assumed for providers that never set
// one up: Monday through Friday, 09:00 to 17:00, weekends off.
func DefaultSchedule(providerID string) []ProviderSchedule {
	schedules := make([]ProviderSchedule, 0, 7)

	for weekday := range 7 {
		day := time.Weekday(weekday)

		schedules = append(schedules, ProviderSchedule{
			ProviderID: providerID,
			Weekday:    weekday,
			StartTime:  "09:00",
			EndTime:    "17:00",
			Active:     day != time.Saturday && day != time.Sunday,
		})
	}

	return schedules
}

// WorksAt reports whether the schedule covers the local wall-clock moment t.
func WorksAt(schedules []ProviderSchedule, t time.Time) bool {
	local := timezone.ToLocal(t)
	weekday := int(local.Weekday())
	minutes := timezone.ClockMinutes(local)

	for _, schedule := range schedules {
		if schedule.Weekday != weekday || !schedule.Active {
			continue
		}

		start, err := timezone.ParseClock(schedule.StartTime)
		if err != nil {
			continue
		}

		end, err := timezone.ParseClock(schedule.EndTime)
		if err != nil {
			continue
		}

		if minutes >= start && minutes < end {
			return true
		}
	}

	return false
}

// Verified reports whether the provider may take jobs.
func (p Provider) Verified() bool {
	return p.VerificationStatus == constant.VerificationVerified
}
