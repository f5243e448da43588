package api

import (
	"github.com/manyara-labs/aerolens/internal/airports"
	"github.com/manyara-labs/aerolens/internal/analytics"
	"github.com/manyara-labs/aerolens/internal/classifications"
	"github.com/manyara-labs/aerolens/internal/evaluations"
	"github.com/manyara-labs/aerolens/internal/sources"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Sources         sources.System
	Airports        airports.System
	Analytics       analytics.System
	Classifications classifications.System
	Evaluations     evaluations.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	sourcesSystem := sources.New(
		runtime.Database.Connection(),
		runtime.Logger,
	)

	airportsSystem := airports.New(
		runtime.Database.Connection(),
		runtime.Logger,
	)

	analyticsSystem := analytics.New(
		runtime.Database.Connection(),
		airportsSystem,
		runtime.Logger,
	)

	classificationsSystem := classifications.New(
		runtime.Database.Connection(),
		sourcesSystem,
		runtime.Pagination,
		runtime.Logger,
	)

	evaluationsSystem := evaluations.New(
		runtime.Database.Connection(),
		runtime.Logger,
	)

	return &Domain{
		Sources:         sourcesSystem,
		Airports:        airportsSystem,
		Analytics:       analyticsSystem,
		Classifications: classificationsSystem,
		Evaluations:     evaluationsSystem,
	}
}
