package failure

import (
	"errors"
	"net/http"
)

// Stable machine-readable reasons returned alongside the human message.
// Clients branch on these, never on message text.
const (
	ReasonBadRequest          = "bad_request"
	ReasonOutOfHours          = "out_of_hours"
	ReasonInvalidService      = "invalid_service"
	ReasonNoRelation          = "no_relation"
	ReasonProviderUnavailable = "provider_unavailable"
	ReasonNoWorkLocation      = "no_work_location"
	ReasonInsufficientCredits = "insufficient_credits"
	ReasonInsufficientBalance = "insufficient_balance"
	ReasonJobAlreadyTaken     = "job_already_taken"
	ReasonInvalidTransition   = "invalid_transition"
	ReasonNotFound            = "not_found"
	ReasonUnauthorized        = "unauthorized"
	ReasonForbidden           = "forbidden"
	ReasonInternal            = "internal_error"
)

// Failure is a wrapper for error messages and codes using standard HTTP
// response codes, plus a stable reason for machine consumption.
type Failure struct {
	Code    int    `json:"code"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message"`
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Reason: ReasonForbidden, Message: "You don't have the required permissions"}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Reason:  ReasonBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Reason:  ReasonBadRequest,
		Message: msg,
	}
}

// BusinessRule returns a new Failure for a violated business rule. These are
// reported to the caller as non-retryable; no state was changed.
func BusinessRule(reason, msg string) error {
	return &Failure{
		Code:    http.StatusUnprocessableEntity,
		Reason:  reason,
		Message: msg,
	}
}

// PaymentRequired returns a new Failure for an exhausted balance.
func PaymentRequired(reason, msg string) error {
	return &Failure{
		Code:    http.StatusPaymentRequired,
		Reason:  reason,
		Message: msg,
	}
}

// Conflict returns a new Failure for a lost concurrency race. Retryable from
// the caller's point of view ("pick another job").
func Conflict(reason, msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Reason:  reason,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Reason:  ReasonUnauthorized,
		Message: msg,
	}
}

// Forbidden returns a new Failure with code for forbidden requests.
func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Reason:  ReasonForbidden,
		Message: msg,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Reason:  ReasonNotFound,
		Message: entityName,
	}
}

// InternalError returns a new Failure with code for internal error and message
// derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Reason:  ReasonInternal,
			Message: err.Error(),
		}
	}

	return nil
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetReason returns the stable reason of an error interface.
func GetReason(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Reason
	}

	return ReasonInternal
}
