package analytics

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/manyara-labs/aerolens/internal/airports"
	"github.com/manyara-labs/aerolens/internal/filters"
	"github.com/manyara-labs/aerolens/pkg/query"
	"github.com/manyara-labs/aerolens/pkg/repository"
)

type repo struct {
	db       *sql.DB
	airports airports.System
	logger   *slog.Logger
}

// New creates an analytics repository implementing the System interface.
// Geolocation resolution depends on the airport lookup system.
func New(db *sql.DB, airports airports.System, logger *slog.Logger) System {
	return &repo{
		db:       db,
		airports: airports,
		logger:   logger.With("system", "analytics"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

// OverTime counts incidents per period at the spec's granularity. Periods
// with no matching incidents are omitted.
func (r *repo) OverTime(ctx context.Context, spec filters.Spec) ([]PeriodCount, error) {
	plan, err := BuildPlan(spec, KindOverTime, Params{})
	if err != nil {
		return nil, err
	}

	rows, err := repository.QueryMany(ctx, r.db, plan.SQL(), plan.Args(), func(s repository.Scanner) (PeriodCount, error) {
		var pc PeriodCount
		err := s.Scan(&pc.Period, &pc.IncidentCount)
		return pc, err
	})
	if err != nil {
		return nil, fmt.Errorf("incidents over time: %w", err)
	}
	return rows, nil
}

// TopN returns the n most frequent values of the given dimension, counts
// descending and ties broken by value ascending.
func (r *repo) TopN(ctx context.Context, spec filters.Spec, dimension string, n int) ([]CategoryCount, error) {
	plan, err := BuildPlan(spec, KindTopN, Params{Dimension: dimension, N: n})
	if err != nil {
		return nil, err
	}

	rows, err := repository.QueryMany(ctx, r.db, plan.SQL(), plan.Args(), func(s repository.Scanner) (CategoryCount, error) {
		var cc CategoryCount
		err := s.Scan(&cc.Value, &cc.IncidentCount)
		return cc, err
	})
	if err != nil {
		return nil, fmt.Errorf("top %s: %w", dimension, err)
	}
	return rows, nil
}

// Heatmap counts incidents per observed pairing of two dimensions. Only
// pairings with at least one incident appear.
func (r *repo) Heatmap(ctx context.Context, spec filters.Spec, dimension1, dimension2 string) ([]HeatmapCell, error) {
	plan, err := BuildPlan(spec, KindHeatmap, Params{Dimension1: dimension1, Dimension2: dimension2})
	if err != nil {
		return nil, err
	}

	rows, err := repository.QueryMany(ctx, r.db, plan.SQL(), plan.Args(), func(s repository.Scanner) (HeatmapCell, error) {
		var hc HeatmapCell
		err := s.Scan(&hc.Dimension1, &hc.Dimension2, &hc.IncidentCount)
		return hc, err
	})
	if err != nil {
		return nil, fmt.Errorf("heatmap %s x %s: %w", dimension1, dimension2, err)
	}
	return rows, nil
}

// Hierarchy counts incidents per operator, aircraft type, and phase triple.
func (r *repo) Hierarchy(ctx context.Context, spec filters.Spec) ([]HierarchyRow, error) {
	plan, err := BuildPlan(spec, KindHierarchy, Params{})
	if err != nil {
		return nil, err
	}

	rows, err := repository.QueryMany(ctx, r.db, plan.SQL(), plan.Args(), func(s repository.Scanner) (HierarchyRow, error) {
		var hr HierarchyRow
		err := s.Scan(&hr.Operator, &hr.AircraftType, &hr.Phase, &hr.IncidentCount)
		return hr, err
	})
	if err != nil {
		return nil, fmt.Errorf("hierarchy: %w", err)
	}
	return rows, nil
}

// Statistics returns the summary of the filtered slice. The total counts
// every matching incident, including undated ones, so it can exceed the sum
// of OverTime buckets when records lack a date.
func (r *repo) Statistics(ctx context.Context, spec filters.Spec) (*Statistics, error) {
	plan, err := BuildPlan(spec, KindStatistics, Params{})
	if err != nil {
		return nil, err
	}

	total, err := repository.QueryOne(ctx, r.db, plan.SQL(), plan.Args(), func(s repository.Scanner) (int, error) {
		var n int
		err := s.Scan(&n)
		return n, err
	})
	if err != nil {
		return nil, fmt.Errorf("statistics: %w", err)
	}
	return &Statistics{TotalIncidents: total}, nil
}

// Geolocations lists filtered incidents with resolved airport coordinates.
// Location codes are resolved through the airport lookup; incidents whose
// code is unknown or lacks coordinates are excluded.
func (r *repo) Geolocations(ctx context.Context, spec filters.Spec) ([]GeoIncident, error) {
	plan, err := BuildPlan(spec, KindGeolocation, Params{})
	if err != nil {
		return nil, err
	}

	type located struct {
		uid      string
		location string
	}

	rows, err := repository.QueryMany(ctx, r.db, plan.SQL(), plan.Args(), func(s repository.Scanner) (located, error) {
		var l located
		err := s.Scan(&l.uid, &l.location)
		return l, err
	})
	if err != nil {
		return nil, fmt.Errorf("geolocations: %w", err)
	}

	codes := make([]string, 0, len(rows))
	for _, l := range rows {
		codes = append(codes, l.location)
	}

	resolved, err := r.airports.Lookup(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("geolocations: %w", err)
	}

	incidents := make([]GeoIncident, 0, len(rows))
	for _, l := range rows {
		a, ok := resolved[strings.ToLower(strings.TrimSpace(l.location))]
		if !ok || !a.HasCoordinates() {
			continue
		}

		gi := GeoIncident{
			UID:      l.uid,
			Location: l.location,
			Lat:      *a.Lat,
			Lon:      *a.Lon,
		}
		if a.Name != nil {
			gi.Airport = *a.Name
		}
		if a.City != nil {
			gi.City = *a.City
		}
		if a.Country != nil {
			gi.Country = *a.Country
		}
		incidents = append(incidents, gi)
	}
	return incidents, nil
}

// Seasonal returns the year-by-month incident matrix, zero-filled across
// every month of the covered year range. Absent bounds default to the
// earliest and latest years with data.
func (r *repo) Seasonal(ctx context.Context, startYear, endYear *int) ([]SeasonalCell, error) {
	b := query.NewBuilder(incidents)
	b.WhereNotNull("date")
	if startYear != nil {
		b.WhereGTE("date", time.Date(*startYear, time.January, 1, 0, 0, 0, 0, time.UTC))
	}
	if endYear != nil {
		b.WhereLTE("date", time.Date(*endYear, time.December, 31, 0, 0, 0, 0, time.UTC))
	}
	b.GroupBy("year", "month")
	b.OrderByFields([]query.SortField{{Field: "year"}, {Field: "month"}})

	stmt, args := b.BuildSelect(
		"EXTRACT(YEAR FROM i.date)::int AS year, EXTRACT(MONTH FROM i.date)::int AS month, COUNT(*) AS incident_count",
	)

	type bucket struct {
		year  int
		month int
		count int
	}

	rows, err := repository.QueryMany(ctx, r.db, withIncidents(stmt), args, func(s repository.Scanner) (bucket, error) {
		var bk bucket
		err := s.Scan(&bk.year, &bk.month, &bk.count)
		return bk, err
	})
	if err != nil {
		return nil, fmt.Errorf("seasonal distribution: %w", err)
	}

	// Explicit bounds win; otherwise the earliest and latest years with data.
	// Rows arrive ordered by year, month.
	var first, last int
	switch {
	case startYear != nil:
		first = *startYear
	case len(rows) > 0:
		first = rows[0].year
	}
	switch {
	case endYear != nil:
		last = *endYear
	case len(rows) > 0:
		last = rows[len(rows)-1].year
	}
	if first == 0 || last == 0 || first > last {
		return []SeasonalCell{}, nil
	}

	counts := make(map[[2]int]int, len(rows))
	for _, bk := range rows {
		counts[[2]int{bk.year, bk.month}] = bk.count
	}

	cells := make([]SeasonalCell, 0, (last-first+1)*12)
	for year := first; year <= last; year++ {
		for month := 1; month <= 12; month++ {
			cells = append(cells, SeasonalCell{
				X: time.Month(month).String()[:3],
				Y: strconv.Itoa(year),
				V: counts[[2]int{year, month}],
			})
		}
	}
	return cells, nil
}

// UIDs lists the identifiers of the filtered incidents, most recent first.
func (r *repo) UIDs(ctx context.Context, spec filters.Spec) ([]string, error) {
	b := query.NewBuilder(incidents)
	spec.Apply(b)
	b.OrderByFields([]query.SortField{
		{Field: "date", Descending: true},
		{Field: "uid"},
	})
	stmt, args := b.BuildSelect("i.uid AS uid")

	uids, err := repository.QueryMany(ctx, r.db, withIncidents(stmt), args, func(s repository.Scanner) (string, error) {
		var uid string
		err := s.Scan(&uid)
		return uid, err
	})
	if err != nil {
		return nil, fmt.Errorf("filtered uids: %w", err)
	}
	return uids, nil
}
