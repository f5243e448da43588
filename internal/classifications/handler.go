package classifications

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/manyara-labs/aerolens/internal/filters"
	"github.com/manyara-labs/aerolens/pkg/handlers"
	"github.com/manyara-labs/aerolens/pkg/pagination"
	"github.com/manyara-labs/aerolens/pkg/routes"
)

// Handler provides HTTP endpoints for classification result operations.
type Handler struct {
	sys    System
	pager  pagination.Config
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system, pagination config, and logger.
func NewHandler(sys System, pager pagination.Config, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		pager:  pager,
		logger: logger.With("handler", "classifications"),
	}
}

// Routes returns the route group definition for classification endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/classifications",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "GET", Pattern: "/full/{uid}", Handler: h.Full},
			{Method: "POST", Pattern: "/bulk", Handler: h.Bulk},
		},
	}
}

// List returns a page of classification results. Supports pagination
// parameters plus evaluator_id, category, and complete filters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	req := pagination.PageRequestFromQuery(r.URL.Query(), h.pager)

	var filter ListFilter
	if s := r.URL.Query().Get("evaluator_id"); s != "" {
		filter.EvaluatorID = &s
	}
	if s := r.URL.Query().Get("category"); s != "" {
		filter.Category = &s
	}
	if s := r.URL.Query().Get("complete"); s != "" {
		complete, err := strconv.ParseBool(s)
		if err != nil {
			handlers.RespondError(w, h.logger, http.StatusBadRequest,
				filters.Invalid("complete", "must be a boolean, got %q", s))
			return
		}
		filter.Complete = &complete
	}

	result, err := h.sys.List(r.Context(), req, filter)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Find returns a single classification result by the id path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest,
			filters.Invalid("id", "must be an integer, got %q", r.PathValue("id")))
		return
	}

	result, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Full returns the classification for the uid path parameter together with
// the origin record.
func (h *Handler) Full(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.FullByUID(r.Context(), r.PathValue("uid"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

type bulkRequest struct {
	UIDs []string `json:"uids"`
}

// Bulk joins classifications with origin records for the posted identifier
// list and returns them with summary statistics.
func (h *Handler) Bulk(w http.ResponseWriter, r *http.Request) {
	var req bulkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest,
			filters.Invalid("body", "malformed request: %v", err))
		return
	}

	result, err := h.sys.BulkRetrieve(r.Context(), req.UIDs)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
