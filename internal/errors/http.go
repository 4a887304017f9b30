package errors

import (
	"errors"
	"net/http"

	"github.com/gileadraab/bmi-calculator/internal/bmi"
)

// FromError extracts the error code for any error. Unrecognized errors
// map to CodeUnknown.
func FromError(err error) Code {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, bmi.ErrMissingInput):
		return CodeMissingInput
	case errors.Is(err, bmi.ErrNotNumeric):
		return CodeNotNumeric
	case errors.Is(err, bmi.ErrNonPositive):
		return CodeNonPositive
	case errors.Is(err, bmi.ErrWeightOutOfRange):
		return CodeWeightOutOfRange
	case errors.Is(err, bmi.ErrHeightOutOfRange):
		return CodeHeightOutOfRange
	case errors.Is(err, bmi.ErrInvalidUnit):
		return CodeInvalidUnit
	case errors.Is(err, bmi.ErrInvalidMeasurement):
		return CodeInvariantViolation
	default:
		return CodeUnknown
	}
}

// IsCode checks if the error maps to the specified code.
func IsCode(err error, code Code) bool {
	return FromError(err) == code
}

// HTTPStatus maps an error to the HTTP status for client responses.
// Validation failures are user-correctable and map to 400; invariant
// violations and unknown errors map to 500.
func HTTPStatus(err error) int {
	switch FromError(err) {
	case "":
		return http.StatusOK
	case CodeMissingInput, CodeNotNumeric, CodeNonPositive,
		CodeWeightOutOfRange, CodeHeightOutOfRange, CodeInvalidUnit,
		CodeInvalidRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
