package sources

import (
	"log/slog"
	"net/http"

	"github.com/manyara-labs/aerolens/pkg/handlers"
	"github.com/manyara-labs/aerolens/pkg/routes"
)

// Handler provides HTTP endpoints for source record operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "sources"),
	}
}

// Routes returns the route group definition for source record endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/records",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{uid}", Handler: h.Fetch},
		},
	}
}

// Fetch returns the canonical record for the uid path parameter.
func (h *Handler) Fetch(w http.ResponseWriter, r *http.Request) {
	rec, err := h.sys.Fetch(r.Context(), r.PathValue("uid"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, rec)
}
