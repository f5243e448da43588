package analytics

import (
	"net/http"

	"github.com/manyara-labs/aerolens/internal/filters"
)

// MapHTTPStatus maps analytics errors to appropriate HTTP status codes.
// Plan construction surfaces field-level validation failures; everything
// else is an execution fault.
func MapHTTPStatus(err error) int {
	if filters.IsValidation(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
