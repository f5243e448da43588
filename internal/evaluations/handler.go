package evaluations

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/manyara-labs/aerolens/internal/filters"
	"github.com/manyara-labs/aerolens/pkg/handlers"
	"github.com/manyara-labs/aerolens/pkg/routes"
)

// Handler provides HTTP endpoints for the evaluation workflow.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "evaluations"),
	}
}

// Routes returns the route group definition for evaluation endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/evaluations",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Submit},
			{Method: "GET", Pattern: "/next/{evaluatorId}", Handler: h.Next},
		},
	}
}

// Submit records a human evaluation for a pending assignment.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var sub Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest,
			filters.Invalid("body", "malformed request: %v", err))
		return
	}

	eval, err := h.sys.Submit(r.Context(), sub)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, eval)
}

// Next returns the oldest pending assignment for the evaluator path parameter.
func (h *Handler) Next(w http.ResponseWriter, r *http.Request) {
	a, err := h.sys.NextTask(r.Context(), r.PathValue("evaluatorId"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, a)
}
