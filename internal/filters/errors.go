package filters

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError reports a malformed or out-of-enum request parameter.
// It names the offending field so callers can surface a field-level reason.
// Validation failures are resolved before any query executes.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Invalid constructs a field-level validation error.
func Invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// MapHTTPStatus maps filter errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if IsValidation(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
