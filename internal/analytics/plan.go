package analytics

import (
	"fmt"

	"github.com/manyara-labs/aerolens/internal/filters"
	"github.com/manyara-labs/aerolens/internal/sources"
	"github.com/manyara-labs/aerolens/pkg/query"
)

// Kind names one of the aggregation result shapes.
type Kind string

const (
	KindOverTime    Kind = "over-time"
	KindTopN        Kind = "top-n"
	KindHeatmap     Kind = "heatmap"
	KindHierarchy   Kind = "hierarchy"
	KindStatistics  Kind = "statistics"
	KindGeolocation Kind = "geolocation"
)

// Params carries kind-specific parameters. Dimension and N apply to top-n;
// Dimension1 and Dimension2 apply to heatmap. Other kinds ignore them.
type Params struct {
	Dimension  string
	N          int
	Dimension1 string
	Dimension2 string
}

// Plan is a declarative, executable description of one aggregation query:
// the unified source CTE, the conjunctive predicate derived from the filter
// specification, and the kind-specific grouping, ordering, and truncation.
// Building a plan never touches the database.
type Plan struct {
	Kind Kind

	sql  string
	args []any
}

// SQL returns the parameterized statement for the plan.
func (p *Plan) SQL() string {
	return p.sql
}

// Args returns the positional arguments for the plan's statement.
func (p *Plan) Args() []any {
	return p.args
}

// incidents projects the canonical fields of the unified source CTE.
var incidents = query.
	NewProjectionMap("", "incidents", "i").
	Project("uid", "uid").
	Project("date", "date").
	Project("phase", "phase").
	Project("aircraft_type", "aircraft_type").
	Project("location", "location").
	Project("operator", "operator")

// dimensionFields are the canonical fields permitted as grouping dimensions.
var dimensionFields = map[string]bool{
	"operator":      true,
	"phase":         true,
	"aircraft_type": true,
	"location":      true,
}

// BuildPlan translates a filter specification plus an aggregation kind into
// a query plan against the unified source tables. Kind-specific parameters
// requesting a column outside the permitted dimension set fail with a
// ValidationError; heatmap with dimension1 == dimension2 is permitted and
// degenerates to a one-dimensional count.
func BuildPlan(spec filters.Spec, kind Kind, params Params) (*Plan, error) {
	b := query.NewBuilder(incidents)
	spec.Apply(b)

	var (
		sql  string
		args []any
	)

	switch kind {
	case KindOverTime:
		granularity, err := filters.ParseGranularity(string(spec.Granularity))
		if err != nil {
			return nil, err
		}

		layout := "YYYY-MM"
		if granularity == filters.GranularityYear {
			layout = "YYYY"
		}

		b.WhereNotNull("date")
		b.GroupBy("period")
		b.OrderByFields([]query.SortField{{Field: "period"}})
		sql, args = b.BuildSelect(fmt.Sprintf(
			"to_char(date_trunc('%s', %s), '%s') AS period, COUNT(*) AS incident_count",
			granularity, incidents.Column("date"), layout,
		))

	case KindTopN:
		if params.N < 1 {
			return nil, filters.Invalid("n", "must be at least 1, got %d", params.N)
		}
		col, err := dimensionColumn("dimension", params.Dimension)
		if err != nil {
			return nil, err
		}

		b.WhereNotNull(params.Dimension)
		b.GroupBy("value")
		b.OrderByFields([]query.SortField{
			{Field: "incident_count", Descending: true},
			{Field: "value"},
		})
		b.Limit(params.N)
		sql, args = b.BuildSelect(fmt.Sprintf(
			"%s AS value, COUNT(*) AS incident_count", col,
		))

	case KindHeatmap:
		col1, err := dimensionColumn("dimension1", params.Dimension1)
		if err != nil {
			return nil, err
		}
		col2, err := dimensionColumn("dimension2", params.Dimension2)
		if err != nil {
			return nil, err
		}

		b.WhereNotNull(params.Dimension1)
		if params.Dimension2 != params.Dimension1 {
			b.WhereNotNull(params.Dimension2)
		}
		b.GroupBy("dimension1", "dimension2")
		b.OrderByFields([]query.SortField{
			{Field: "incident_count", Descending: true},
			{Field: "dimension1"},
			{Field: "dimension2"},
		})
		sql, args = b.BuildSelect(fmt.Sprintf(
			"%s AS dimension1, %s AS dimension2, COUNT(*) AS incident_count", col1, col2,
		))

	case KindHierarchy:
		b.WhereNotNull("operator")
		b.WhereNotNull("aircraft_type")
		b.WhereNotNull("phase")
		b.GroupBy("operator", "aircraft_type", "phase")
		b.OrderByFields([]query.SortField{
			{Field: "incident_count", Descending: true},
			{Field: "operator"},
			{Field: "aircraft_type"},
			{Field: "phase"},
		})
		sql, args = b.BuildSelect(
			"i.operator AS operator, i.aircraft_type AS aircraft_type, i.phase AS phase, COUNT(*) AS incident_count",
		)

	case KindStatistics:
		sql, args = b.BuildCount()

	case KindGeolocation:
		b.WhereNotNull("location")
		b.OrderByFields([]query.SortField{{Field: "uid"}})
		sql, args = b.BuildSelect("i.uid AS uid, i.location AS location")

	default:
		return nil, filters.Invalid("kind", "unknown aggregation kind %q", kind)
	}

	return &Plan{
		Kind: kind,
		sql:  withIncidents(sql),
		args: args,
	}, nil
}

func dimensionColumn(param, field string) (string, error) {
	if !dimensionFields[field] {
		return "", filters.Invalid(param, "unknown dimension %q", field)
	}
	return incidents.Column(field), nil
}

func withIncidents(sql string) string {
	return "WITH incidents AS (" + sources.UnionAll() + ") " + sql
}
