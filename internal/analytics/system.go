package analytics

import (
	"context"

	"github.com/manyara-labs/aerolens/internal/filters"
)

// System defines the public contract for the aggregation pipelines.
type System interface {
	Handler() *Handler

	OverTime(ctx context.Context, spec filters.Spec) ([]PeriodCount, error)
	TopN(ctx context.Context, spec filters.Spec, dimension string, n int) ([]CategoryCount, error)
	Heatmap(ctx context.Context, spec filters.Spec, dimension1, dimension2 string) ([]HeatmapCell, error)
	Hierarchy(ctx context.Context, spec filters.Spec) ([]HierarchyRow, error)
	Statistics(ctx context.Context, spec filters.Spec) (*Statistics, error)
	Geolocations(ctx context.Context, spec filters.Spec) ([]GeoIncident, error)
	Seasonal(ctx context.Context, startYear, endYear *int) ([]SeasonalCell, error)
	UIDs(ctx context.Context, spec filters.Spec) ([]string, error)
}
