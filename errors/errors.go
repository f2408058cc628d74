package errors

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the registrar, converter and storage layers.
// They are wrapped with fmt.Errorf("%w: detail", ...) so callers can
// match them with errors.Is.
var (
	ErrInvalidDestination   = errors.New("INVALID DESTINATION")
	ErrInvalidDateFormat    = errors.New("INVALID DATE FORMAT")
	ErrInvalidDateRange     = errors.New("INVALID DATE RANGE")
	ErrOverlappingDates     = errors.New("OVERLAPPING DATES")
	ErrInvalidPaymentMethod = errors.New("INVALID PAYMENT METHOD")
	ErrInvalidCategory      = errors.New("INVALID CATEGORY")
	ErrNoTripForDate        = errors.New("NO TRIP FOR DATE")
	ErrNegativeAmount       = errors.New("NEGATIVE AMOUNT")
	ErrRateLookupTimeout    = errors.New("RATE LOOKUP TIMEOUT")
	ErrInvalidInput         = errors.New("INVALID INPUT")
	ErrInternal             = errors.New("INTERNAL")
)

var kinds = []error{
	ErrInvalidDestination,
	ErrInvalidDateFormat,
	ErrInvalidDateRange,
	ErrOverlappingDates,
	ErrInvalidPaymentMethod,
	ErrInvalidCategory,
	ErrNoTripForDate,
	ErrNegativeAmount,
	ErrRateLookupTimeout,
	ErrInvalidInput,
}

// Code returns the code of the first known kind found in err's chain, or
// the internal code when none matches.
func Code(err error) string {
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return kind.Error()
		}
	}
	return ErrInternal.Error()
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e ErrorResponse) Error() string {
	return fmt.Sprintf("code: %s, message: %s", e.Code, e.Message)
}
