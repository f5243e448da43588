// Package analytics implements the aggregation pipelines over the unified
// incident record set. Filtering, grouping, ordering, and counting are pushed
// to the database, so result sets are bounded by group cardinality rather
// than raw record count. The one deliberate exception is geolocation
// resolution, which joins against the airport reference lookup in the
// application layer.
package analytics

// PeriodCount is one bucket of the over-time pipeline. Periods with zero
// matching incidents are omitted, not zero-filled.
type PeriodCount struct {
	Period        string `json:"period"`
	IncidentCount int    `json:"incident_count"`
}

// CategoryCount is one row of the top-n pipeline.
type CategoryCount struct {
	Value         string `json:"value"`
	IncidentCount int    `json:"incident_count"`
}

// HeatmapCell is one observed dimension pairing of the heatmap pipeline.
type HeatmapCell struct {
	Dimension1    string `json:"dimension1"`
	Dimension2    string `json:"dimension2"`
	IncidentCount int    `json:"incident_count"`
}

// HierarchyRow is one operator/aircraft_type/phase grouping.
type HierarchyRow struct {
	Operator      string `json:"operator"`
	AircraftType  string `json:"aircraft_type"`
	Phase         string `json:"phase"`
	IncidentCount int    `json:"incident_count"`
}

// Statistics is the single-row summary of a filtered slice.
type Statistics struct {
	TotalIncidents int `json:"total_incidents"`
}

// GeoIncident is one incident with resolved airport coordinates. Incidents
// whose location cannot be resolved are excluded from the listing.
type GeoIncident struct {
	UID      string  `json:"uid"`
	Location string  `json:"location"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Airport  string  `json:"airport,omitempty"`
	City     string  `json:"city,omitempty"`
	Country  string  `json:"country,omitempty"`
}

// SeasonalCell is one cell of the year-by-month seasonal distribution,
// shaped for a matrix chart: x = month abbreviation, y = year, v = count.
// Unlike over-time, the seasonal matrix is zero-filled across the year range.
type SeasonalCell struct {
	X string `json:"x"`
	Y string `json:"y"`
	V int    `json:"v"`
}
