package classifications

import (
	"errors"
	"net/http"

	"github.com/manyara-labs/aerolens/internal/sources"
)

// ErrNotFound indicates no classification result matches the request.
var ErrNotFound = errors.New("classification result not found")

// MapHTTPStatus maps classification domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, sources.ErrUnknownSource) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, sources.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
