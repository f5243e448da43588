package filters_test

import (
	"encoding/json"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/manyara-labs/aerolens/internal/filters"
	"github.com/manyara-labs/aerolens/pkg/query"
)

func TestFromQuery(t *testing.T) {
	values := url.Values{
		"operators":      {"alaska airlines", "delta"},
		"phases":         {"landing"},
		"aircraft_types": {},
		"start_period":   {"2020-01"},
		"end_period":     {"2023-12"},
		"granularity":    {"year"},
	}

	spec, err := filters.FromQuery(values)
	if err != nil {
		t.Fatalf("FromQuery failed: %v", err)
	}

	if len(spec.Operators) != 2 {
		t.Errorf("Operators = %v, want 2 entries", spec.Operators)
	}
	if len(spec.Phases) != 1 {
		t.Errorf("Phases = %v, want 1 entry", spec.Phases)
	}
	if len(spec.AircraftTypes) != 0 {
		t.Errorf("AircraftTypes = %v, want empty", spec.AircraftTypes)
	}
	if spec.StartPeriod == nil || spec.StartPeriod.Year != 2020 {
		t.Errorf("StartPeriod = %v, want 2020-01", spec.StartPeriod)
	}
	if spec.EndPeriod == nil || spec.EndPeriod.Month != time.December {
		t.Errorf("EndPeriod = %v, want 2023-12", spec.EndPeriod)
	}
	if spec.Granularity != filters.GranularityYear {
		t.Errorf("Granularity = %q, want year", spec.Granularity)
	}
}

func TestFromQueryDefaultGranularity(t *testing.T) {
	spec, err := filters.FromQuery(url.Values{})
	if err != nil {
		t.Fatalf("FromQuery failed: %v", err)
	}
	if spec.Granularity != filters.GranularityMonth {
		t.Errorf("Granularity = %q, want month", spec.Granularity)
	}
}

func TestFromQueryInvertedWindow(t *testing.T) {
	values := url.Values{
		"start_period": {"2023-05"},
		"end_period":   {"2023-01"},
	}

	_, err := filters.FromQuery(values)
	if err == nil {
		t.Fatal("FromQuery succeeded, want window error")
	}
	if !filters.IsValidation(err) {
		t.Errorf("error %v is not a validation error", err)
	}
}

func TestFromQueryEqualWindow(t *testing.T) {
	values := url.Values{
		"start_period": {"2023-05"},
		"end_period":   {"2023-05"},
	}

	if _, err := filters.FromQuery(values); err != nil {
		t.Fatalf("FromQuery failed for equal bounds: %v", err)
	}
}

func TestFromQueryCollectsAllErrors(t *testing.T) {
	values := url.Values{
		"start_period": {"bogus"},
		"end_period":   {"also-bogus"},
		"granularity":  {"decade"},
	}

	_, err := filters.FromQuery(values)
	if err == nil {
		t.Fatal("FromQuery succeeded, want errors")
	}

	msg := err.Error()
	for _, field := range []string{"start_period", "end_period", "granularity"} {
		if !strings.Contains(msg, field) {
			t.Errorf("error %q does not mention %s", msg, field)
		}
	}
}

func TestSpecValidateFromJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:  "valid spec",
			input: `{"operators":["delta"],"start_period":"2020-01","end_period":"2021-06"}`,
		},
		{
			name:    "inverted window",
			input:   `{"start_period":"2022-01","end_period":"2021-06"}`,
			wantErr: true,
		},
		{
			name:    "bad granularity",
			input:   `{"granularity":"weekly"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var spec filters.Spec
			if err := json.Unmarshal([]byte(tt.input), &spec); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}

			err := spec.Validate()
			if tt.wantErr && err == nil {
				t.Error("Validate succeeded, want error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate failed: %v", err)
			}
		})
	}
}

func TestSpecApply(t *testing.T) {
	start, _ := filters.ParsePeriod("2020-01")
	end, _ := filters.ParsePeriod("2020-12")

	spec := filters.Spec{
		Operators:   []string{"delta", "united"},
		Phases:      []string{"landing"},
		StartPeriod: &start,
		EndPeriod:   &end,
	}

	p := query.NewProjectionMap("", "incidents", "i").
		Project("uid", "uid").
		Project("date", "date").
		Project("phase", "phase").
		Project("operator", "operator")

	b := query.NewBuilder(p)
	spec.Apply(b)
	sql, args := b.BuildCount()

	want := "SELECT COUNT(*) FROM incidents i" +
		" WHERE i.operator IN ($1, $2) AND i.phase IN ($3) AND i.date >= $4 AND i.date <= $5"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 5 {
		t.Errorf("args = %v, want 5 entries", args)
	}
}

func TestSpecApplyEmpty(t *testing.T) {
	p := query.NewProjectionMap("", "incidents", "i").
		Project("uid", "uid").
		Project("operator", "operator")

	b := query.NewBuilder(p)
	filters.Spec{}.Apply(b)
	sql, args := b.BuildCount()

	want := "SELECT COUNT(*) FROM incidents i"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want empty", args)
	}
}
