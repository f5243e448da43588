package sources

import (
	"errors"
	"net/http"
)

// Domain errors for source record operations.
var (
	ErrUnknownSource = errors.New("unknown source kind")
	ErrNotFound      = errors.New("source record not found")
)

// MapHTTPStatus maps source domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrUnknownSource) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
