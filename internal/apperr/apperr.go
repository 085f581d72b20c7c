// Package apperr holds the error vocabulary shared by the shift manager and
// the transaction recorder. Every error returned by a service wraps exactly
// one of the sentinels below so callers can match with errors.Is.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrValidation is malformed input: code formats, missing fields,
	// non-positive amounts, unknown kinds.
	ErrValidation = errors.New("validation error")

	// ErrInvalidDenomination is a structurally wrong denomination breakdown.
	ErrInvalidDenomination = errors.New("invalid denomination")

	// ErrAmountMismatch means the breakdown does not add up to the claimed total.
	ErrAmountMismatch = errors.New("amount mismatch")

	ErrShiftAlreadyOpen = errors.New("shift already open")
	ErrShiftNotOpen     = errors.New("shift not open")
	ErrBalanceMismatch  = errors.New("balance mismatch")
	ErrNotFound         = errors.New("not found")

	// ErrCreation and ErrUpdate are persistence failures after validation
	// passed. They are the only errors worth retrying unchanged.
	ErrCreation = errors.New("creation error")
	ErrUpdate   = errors.New("update error")

	// ErrUpstreamUnavailable is returned when a peer service could not be reached.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

var domainErrors = []error{
	ErrValidation,
	ErrInvalidDenomination,
	ErrAmountMismatch,
	ErrShiftAlreadyOpen,
	ErrShiftNotOpen,
	ErrBalanceMismatch,
	ErrNotFound,
	ErrCreation,
	ErrUpdate,
	ErrUpstreamUnavailable,
}

func Validation(format string, args ...any) error {
	return wrap(ErrValidation, format, args...)
}

func InvalidDenomination(format string, args ...any) error {
	return wrap(ErrInvalidDenomination, format, args...)
}

func AmountMismatch(format string, args ...any) error {
	return wrap(ErrAmountMismatch, format, args...)
}

func ShiftAlreadyOpen(format string, args ...any) error {
	return wrap(ErrShiftAlreadyOpen, format, args...)
}

func ShiftNotOpen(format string, args ...any) error {
	return wrap(ErrShiftNotOpen, format, args...)
}

func BalanceMismatch(format string, args ...any) error {
	return wrap(ErrBalanceMismatch, format, args...)
}

func NotFound(format string, args ...any) error {
	return wrap(ErrNotFound, format, args...)
}

func Creation(format string, args ...any) error {
	return wrap(ErrCreation, format, args...)
}

func Update(format string, args ...any) error {
	return wrap(ErrUpdate, format, args...)
}

func UpstreamUnavailable(format string, args ...any) error {
	return wrap(ErrUpstreamUnavailable, format, args...)
}

func wrap(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}

// IsDomain reports whether err already carries one of the package sentinels.
func IsDomain(err error) bool {
	for _, target := range domainErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Classify leaves domain errors untouched and wraps anything else (driver
// errors, commit failures) in fallback.
func Classify(err error, fallback error) error {
	if err == nil || IsDomain(err) {
		return err
	}
	return fmt.Errorf("%w: %w", fallback, err)
}

// HTTPStatus maps an error to the status code the handlers answer with.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrInvalidDenomination),
		errors.Is(err, ErrAmountMismatch):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrShiftAlreadyOpen),
		errors.Is(err, ErrShiftNotOpen):
		return http.StatusConflict
	case errors.Is(err, ErrBalanceMismatch):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrUpstreamUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
