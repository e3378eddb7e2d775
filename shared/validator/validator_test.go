package validator_test

import (
	"strings"
	"testing"

	"handy/shared/failure"
	"handy/shared/validator"

	"github.com/stretchr/testify/assert"
)

type scheduleDay struct {
	DayOfWeek string `json:"day_of_week" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime string `json:"start_time"  validate:"required,clock"`
	EndTime   string `json:"end_time"    validate:"required,clock"`
}

func TestValidateDecodesAndValidates(t *testing.T) {
	body := strings.NewReader(`{"day_of_week":"Monday","start_time":"09:00","end_time":"17:00"}`)

	day := scheduleDay{}
	err := validator.Validate(body, &day)

	assert.NoError(t, err)
	assert.Equal(t, "Monday", day.DayOfWeek)
}

func TestValidateRejectsBadJSON(t *testing.T) {
	body := strings.NewReader(`{"day_of_week":`)

	day := scheduleDay{}
	err := validator.Validate(body, &day)

	assert.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestValidateClockTag(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		wantErr bool
	}{
		{name: "valid", start: "06:00", wantErr: false},
		{name: "12h clock rejected", start: "09:00 AM", wantErr: true},
		{name: "out of range hour", start: "24:00", wantErr: true},
		{name: "missing minutes", start: "9", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day := scheduleDay{DayOfWeek: "Monday", StartTime: tt.start, EndTime: "17:00"}
			err := validator.ValidateStruct(&day)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("accepted", "oneof=pending accepted completed cancelled"))
	assert.Error(t, validator.ValidateVar("unknown", "oneof=pending accepted completed cancelled"))
}
