package dto

import (
	"handy/internal/domains/provider/model"
	gDto "handy/shared/dto"
)

type ProviderResponse struct {
	ID                 string `json:"id"`
	UserID             string `json:"user_id"`
	DisplayName        string `json:"display_name"`
	Bio                string `json:"bio"`
	Credits            int    `json:"credits"`
	VerificationStatus string `json:"verification_status"`
	gDto.Metadata
}

func (r *ProviderResponse) FromModel(model model.Provider) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.DisplayName = model.DisplayName
	r.Bio = model.Bio
	r.Credits = model.Credits
	r.VerificationStatus = model.VerificationStatus
	r.Metadata.FromModel(model.Metadata)
}

type UpdateProviderRequest struct {
	DisplayName string `db:"display_name" json:"display_name" validate:"omitempty,max=100"`
	Bio         string `db:"bio"          json:"bio"          validate:"omitempty,max=500"`
}

type ScheduleEntry struct {
	Weekday   int    `json:"weekday"    validate:"gte=0,lte=6"`
	StartTime string `json:"start_time" validate:"required,clock"`
	EndTime   string `json:"end_time"   validate:"required,clock"`
	Active    bool   `json:"active"`
}

type UpdateScheduleRequest struct {
	Entries []ScheduleEntry `json:"entries" validate:"required,min=1,max=7,dive"`
}

type ScheduleResponse struct {
	Entries []ScheduleEntry `json:"entries"`
}

func (r *ScheduleResponse) FromModels(models []model.ProviderSchedule) {
	r.Entries = make([]ScheduleEntry, len(models))
	for i, mod := range models {
		r.Entries[i] = ScheduleEntry{
			Weekday:   mod.Weekday,
			StartTime: mod.StartTime,
			EndTime:   mod.EndTime,
			Active:    mod.Active,
		}
	}
}
