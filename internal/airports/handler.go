package airports

import (
	"log/slog"
	"net/http"

	"github.com/manyara-labs/aerolens/pkg/handlers"
	"github.com/manyara-labs/aerolens/pkg/routes"
)

// Handler provides HTTP endpoints for airport reference lookups.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "airports"),
	}
}

// Routes returns the route group definition for airport endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/airports",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Lookup},
			{Method: "GET", Pattern: "/{code}", Handler: h.Find},
		},
	}
}

// Lookup returns details for the codes query parameters, keyed by normalized
// code. Missing codes are absent from the result rather than an error.
func (h *Handler) Lookup(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.Lookup(r.Context(), r.URL.Query()["codes"])
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Find returns a single airport by its code path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	a, err := h.sys.Find(r.Context(), r.PathValue("code"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, a)
}
