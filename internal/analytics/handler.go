package analytics

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/manyara-labs/aerolens/internal/filters"
	"github.com/manyara-labs/aerolens/pkg/handlers"
	"github.com/manyara-labs/aerolens/pkg/routes"
)

// defaultTopN caps the top value listing when the request omits n.
const defaultTopN = 10

// Handler provides HTTP endpoints for the aggregation pipelines. Every
// endpoint accepts the shared filter query parameters.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "analytics"),
	}
}

// Routes returns the route group definition for analytics endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/analytics",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/over-time", Handler: h.OverTime},
			{Method: "GET", Pattern: "/top/{dimension}", Handler: h.TopN},
			{Method: "GET", Pattern: "/heatmap", Handler: h.Heatmap},
			{Method: "GET", Pattern: "/hierarchy", Handler: h.Hierarchy},
			{Method: "GET", Pattern: "/statistics", Handler: h.Statistics},
			{Method: "GET", Pattern: "/geolocations", Handler: h.Geolocations},
			{Method: "GET", Pattern: "/seasonal", Handler: h.Seasonal},
			{Method: "GET", Pattern: "/uids", Handler: h.UIDs},
		},
	}
}

// OverTime returns incident counts bucketed by period.
func (h *Handler) OverTime(w http.ResponseWriter, r *http.Request) {
	spec, err := filters.FromQuery(r.URL.Query())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.OverTime(r.Context(), spec)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// TopN returns the most frequent values of the dimension path parameter.
// The n query parameter bounds the listing, defaulting to 10.
func (h *Handler) TopN(w http.ResponseWriter, r *http.Request) {
	spec, err := filters.FromQuery(r.URL.Query())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	n := defaultTopN
	if s := r.URL.Query().Get("n"); s != "" {
		n, err = strconv.Atoi(s)
		if err != nil {
			handlers.RespondError(w, h.logger, http.StatusBadRequest,
				filters.Invalid("n", "must be an integer, got %q", s))
			return
		}
	}

	result, err := h.sys.TopN(r.Context(), spec, r.PathValue("dimension"), n)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Heatmap returns incident counts for each observed pairing of the
// dimension1 and dimension2 query parameters.
func (h *Handler) Heatmap(w http.ResponseWriter, r *http.Request) {
	spec, err := filters.FromQuery(r.URL.Query())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Heatmap(
		r.Context(),
		spec,
		r.URL.Query().Get("dimension1"),
		r.URL.Query().Get("dimension2"),
	)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Hierarchy returns incident counts per operator, aircraft type, and phase.
func (h *Handler) Hierarchy(w http.ResponseWriter, r *http.Request) {
	spec, err := filters.FromQuery(r.URL.Query())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Hierarchy(r.Context(), spec)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Statistics returns the summary of the filtered slice.
func (h *Handler) Statistics(w http.ResponseWriter, r *http.Request) {
	spec, err := filters.FromQuery(r.URL.Query())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Statistics(r.Context(), spec)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Geolocations returns filtered incidents with resolved coordinates.
func (h *Handler) Geolocations(w http.ResponseWriter, r *http.Request) {
	spec, err := filters.FromQuery(r.URL.Query())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Geolocations(r.Context(), spec)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Seasonal returns the zero-filled year-by-month incident matrix for the
// optional start_year and end_year query parameters.
func (h *Handler) Seasonal(w http.ResponseWriter, r *http.Request) {
	startYear, err := yearParam(r, "start_year")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}
	endYear, err := yearParam(r, "end_year")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Seasonal(r.Context(), startYear, endYear)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// UIDs returns the identifiers of the filtered incidents, most recent first.
func (h *Handler) UIDs(w http.ResponseWriter, r *http.Request) {
	spec, err := filters.FromQuery(r.URL.Query())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.UIDs(r.Context(), spec)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func yearParam(r *http.Request, name string) (*int, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return nil, filters.Invalid(name, "must be an integer, got %q", s)
	}
	return &year, nil
}
