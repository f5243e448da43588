package analytics_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/manyara-labs/aerolens/internal/analytics"
	"github.com/manyara-labs/aerolens/internal/filters"
)

type stubSystem struct {
	overTime []analytics.PeriodCount
	topN     []analytics.CategoryCount
	lastSpec filters.Spec
	lastN    int
}

func (s *stubSystem) Handler() *analytics.Handler { return nil }

func (s *stubSystem) OverTime(ctx context.Context, spec filters.Spec) ([]analytics.PeriodCount, error) {
	s.lastSpec = spec
	return s.overTime, nil
}

func (s *stubSystem) TopN(ctx context.Context, spec filters.Spec, dimension string, n int) ([]analytics.CategoryCount, error) {
	s.lastSpec = spec
	s.lastN = n
	if _, err := analytics.BuildPlan(spec, analytics.KindTopN, analytics.Params{Dimension: dimension, N: n}); err != nil {
		return nil, err
	}
	return s.topN, nil
}

func (s *stubSystem) Heatmap(ctx context.Context, spec filters.Spec, d1, d2 string) ([]analytics.HeatmapCell, error) {
	return nil, nil
}

func (s *stubSystem) Hierarchy(ctx context.Context, spec filters.Spec) ([]analytics.HierarchyRow, error) {
	return nil, nil
}

func (s *stubSystem) Statistics(ctx context.Context, spec filters.Spec) (*analytics.Statistics, error) {
	return &analytics.Statistics{}, nil
}

func (s *stubSystem) Geolocations(ctx context.Context, spec filters.Spec) ([]analytics.GeoIncident, error) {
	return nil, nil
}

func (s *stubSystem) Seasonal(ctx context.Context, startYear, endYear *int) ([]analytics.SeasonalCell, error) {
	return nil, nil
}

func (s *stubSystem) UIDs(ctx context.Context, spec filters.Spec) ([]string, error) {
	return nil, nil
}

func testHandler(sys analytics.System) *analytics.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return analytics.NewHandler(sys, logger)
}

func TestHandlerOverTime(t *testing.T) {
	sys := &stubSystem{
		overTime: []analytics.PeriodCount{{Period: "2023-01", IncidentCount: 4}},
	}
	h := testHandler(sys)

	req := httptest.NewRequest("GET", "/analytics/over-time?operators=delta&granularity=month", nil)
	rec := httptest.NewRecorder()
	h.OverTime(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var parsed []analytics.PeriodCount
	if err := json.NewDecoder(rec.Body).Decode(&parsed); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(parsed) != 1 || parsed[0].Period != "2023-01" {
		t.Errorf("body = %v, want single 2023-01 bucket", parsed)
	}
	if len(sys.lastSpec.Operators) != 1 || sys.lastSpec.Operators[0] != "delta" {
		t.Errorf("spec operators = %v, want [delta]", sys.lastSpec.Operators)
	}
}

func TestHandlerOverTimeBadPeriod(t *testing.T) {
	h := testHandler(&stubSystem{})

	req := httptest.NewRequest("GET", "/analytics/over-time?start_period=May-2023", nil)
	rec := httptest.NewRecorder()
	h.OverTime(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandlerTopNDefaults(t *testing.T) {
	sys := &stubSystem{}
	h := testHandler(sys)

	req := httptest.NewRequest("GET", "/analytics/top/operator", nil)
	req.SetPathValue("dimension", "operator")
	rec := httptest.NewRecorder()
	h.TopN(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if sys.lastN != 10 {
		t.Errorf("n = %d, want default 10", sys.lastN)
	}
}

func TestHandlerTopNBadRequests(t *testing.T) {
	tests := []struct {
		name      string
		dimension string
		query     string
	}{
		{"non-integer n", "operator", "?n=ten"},
		{"zero n", "operator", "?n=0"},
		{"unknown dimension", "narrative", "?n=5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := testHandler(&stubSystem{})

			req := httptest.NewRequest("GET", "/analytics/top/"+tt.dimension+tt.query, nil)
			req.SetPathValue("dimension", tt.dimension)
			rec := httptest.NewRecorder()
			h.TopN(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestHandlerSeasonalBadYear(t *testing.T) {
	h := testHandler(&stubSystem{})

	req := httptest.NewRequest("GET", "/analytics/seasonal?start_year=twenty", nil)
	rec := httptest.NewRecorder()
	h.Seasonal(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
