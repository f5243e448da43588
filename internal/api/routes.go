package api

import (
	"net/http"

	"github.com/manyara-labs/aerolens/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, domain *Domain) {
	routes.Register(
		mux,
		domain.Sources.Handler().Routes(),
		domain.Airports.Handler().Routes(),
		domain.Analytics.Handler().Routes(),
		domain.Classifications.Handler().Routes(),
		domain.Evaluations.Handler().Routes(),
	)
}
