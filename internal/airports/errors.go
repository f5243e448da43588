package airports

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates no airport row exists for the requested code.
var ErrNotFound = errors.New("airport not found")

// MapHTTPStatus maps airport domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
