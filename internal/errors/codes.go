// Package errors assigns stable machine-readable codes to engine
// failures and maps them to transport-level statuses.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// CodeInvalidRequest represents a malformed request envelope.
	CodeInvalidRequest Code = "INVALID_REQUEST"

	// Measurement validation errors
	CodeMissingInput     Code = "MEASUREMENT_MISSING_INPUT"
	CodeNotNumeric       Code = "MEASUREMENT_NOT_NUMERIC"
	CodeNonPositive      Code = "MEASUREMENT_NON_POSITIVE"
	CodeWeightOutOfRange Code = "WEIGHT_OUT_OF_RANGE"
	CodeHeightOutOfRange Code = "HEIGHT_OUT_OF_RANGE"
	CodeInvalidUnit      Code = "HEIGHT_UNIT_INVALID"

	// Compute precondition errors
	CodeInvariantViolation Code = "MEASUREMENT_INVARIANT_VIOLATION"
)
