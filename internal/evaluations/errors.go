package evaluations

import (
	"errors"
	"net/http"

	"github.com/manyara-labs/aerolens/internal/filters"
)

// Domain errors for evaluation operations.
var (
	// ErrNotFoundOrComplete indicates no pending assignment matched the
	// submission. The two causes are deliberately indistinguishable: either
	// the assignment never existed or another submission completed it first.
	ErrNotFoundOrComplete = errors.New("assignment not found or already complete")

	// ErrDuplicate indicates an evaluation already exists for the assignment.
	ErrDuplicate = errors.New("evaluation already submitted")

	// ErrNoPending indicates the evaluator has no pending assignments.
	ErrNoPending = errors.New("no pending assignments")
)

// MapHTTPStatus maps evaluation domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case filters.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFoundOrComplete), errors.Is(err, ErrNoPending):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
