package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"handy/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestFailureCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantReason string
	}{
		{
			name:       "bad request",
			err:        failure.BadRequest(errors.New("broken payload")),
			wantCode:   http.StatusBadRequest,
			wantReason: failure.ReasonBadRequest,
		},
		{
			name:       "business rule",
			err:        failure.BusinessRule(failure.ReasonOutOfHours, "outside operating hours"),
			wantCode:   http.StatusUnprocessableEntity,
			wantReason: failure.ReasonOutOfHours,
		},
		{
			name:       "payment required",
			err:        failure.PaymentRequired(failure.ReasonInsufficientCredits, "insufficient credits"),
			wantCode:   http.StatusPaymentRequired,
			wantReason: failure.ReasonInsufficientCredits,
		},
		{
			name:       "conflict",
			err:        failure.Conflict(failure.ReasonJobAlreadyTaken, "job already taken"),
			wantCode:   http.StatusConflict,
			wantReason: failure.ReasonJobAlreadyTaken,
		},
		{
			name:       "not found",
			err:        failure.NotFound("booking not found"),
			wantCode:   http.StatusNotFound,
			wantReason: failure.ReasonNotFound,
		},
		{
			name:       "unauthorized",
			err:        failure.Unauthorized("missing token"),
			wantCode:   http.StatusUnauthorized,
			wantReason: failure.ReasonUnauthorized,
		},
		{
			name:       "internal",
			err:        failure.InternalError(errors.New("boom")),
			wantCode:   http.StatusInternalServerError,
			wantReason: failure.ReasonInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, failure.GetCode(tt.err))
			assert.Equal(t, tt.wantReason, failure.GetReason(tt.err))
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestGetCodeWrappedError(t *testing.T) {
	inner := failure.Conflict(failure.ReasonJobAlreadyTaken, "taken")
	wrapped := fmt.Errorf("accepting job: %w", inner)

	assert.Equal(t, http.StatusConflict, failure.GetCode(wrapped))
	assert.Equal(t, failure.ReasonJobAlreadyTaken, failure.GetReason(wrapped))
}

func TestGetCodePlainError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("plain")))
	assert.Equal(t, failure.ReasonInternal, failure.GetReason(errors.New("plain")))
}

func TestNilErrors(t *testing.T) {
	assert.Nil(t, failure.BadRequest(nil))
	assert.Nil(t, failure.InternalError(nil))
}
