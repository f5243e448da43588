// Package filters implements the validated filter specification shared by the
// analytics pipelines. A specification is a pure value object: parsing and
// validation perform no I/O, and every failure is reported as a field-level
// ValidationError before any query executes.
package filters

import (
	"errors"
	"net/url"

	"github.com/manyara-labs/aerolens/pkg/query"
)

// Granularity selects the truncation unit for period bucketing.
type Granularity string

const (
	GranularityYear  Granularity = "year"
	GranularityMonth Granularity = "month"
)

// ParseGranularity validates a granularity string, defaulting to month when empty.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case "":
		return GranularityMonth, nil
	case GranularityYear, GranularityMonth:
		return Granularity(s), nil
	default:
		return "", Invalid("granularity", "must be year or month, got %q", s)
	}
}

// Spec describes the requested slice of incident data. Empty list dimensions
// impose no restriction; period bounds, when present, are inclusive at both
// ends. Specs are immutable once parsed.
type Spec struct {
	Operators     []string    `json:"operators,omitempty"`
	Phases        []string    `json:"phases,omitempty"`
	AircraftTypes []string    `json:"aircraft_types,omitempty"`
	Locations     []string    `json:"locations,omitempty"`
	StartPeriod   *Period     `json:"start_period,omitempty"`
	EndPeriod     *Period     `json:"end_period,omitempty"`
	Granularity   Granularity `json:"granularity,omitempty"`
}

// FromQuery parses a filter specification from URL query parameters.
// List dimensions accept repeated parameters (operators=a&operators=b).
// All validation failures are collected and joined, not just the first.
func FromQuery(values url.Values) (Spec, error) {
	spec := Spec{
		Operators:     listParam(values, "operators"),
		Phases:        listParam(values, "phases"),
		AircraftTypes: listParam(values, "aircraft_types"),
		Locations:     listParam(values, "locations"),
	}

	var errs []error

	if s := values.Get("start_period"); s != "" {
		p, err := ParsePeriod(s)
		if err != nil {
			errs = append(errs, Invalid("start_period", "%v", err))
		} else {
			spec.StartPeriod = &p
		}
	}

	if s := values.Get("end_period"); s != "" {
		p, err := ParsePeriod(s)
		if err != nil {
			errs = append(errs, Invalid("end_period", "%v", err))
		} else {
			spec.EndPeriod = &p
		}
	}

	g, err := ParseGranularity(values.Get("granularity"))
	if err != nil {
		errs = append(errs, err)
	} else {
		spec.Granularity = g
	}

	if err := spec.validateWindow(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return Spec{}, errors.Join(errs...)
	}
	return spec, nil
}

// Validate checks a specification decoded from JSON. Period syntax is already
// enforced by Period.UnmarshalJSON; this covers cross-field invariants and
// the granularity enum.
func (s *Spec) Validate() error {
	var errs []error

	if s.Granularity != "" {
		if _, err := ParseGranularity(string(s.Granularity)); err != nil {
			errs = append(errs, err)
		}
	}

	if err := s.validateWindow(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Apply adds the specification's predicates to a query builder: within one
// dimension membership in the supplied set, across dimensions conjunction,
// omitted dimensions nothing. Field names are the canonical record fields.
func (s Spec) Apply(b *query.Builder) *query.Builder {
	b.
		WhereInStrings("operator", s.Operators).
		WhereInStrings("phase", s.Phases).
		WhereInStrings("aircraft_type", s.AircraftTypes).
		WhereInStrings("location", s.Locations)

	if s.StartPeriod != nil {
		b.WhereGTE("date", s.StartPeriod.Start())
	}
	if s.EndPeriod != nil {
		b.WhereLTE("date", s.EndPeriod.End())
	}

	return b
}

func (s *Spec) validateWindow() error {
	if s.StartPeriod != nil && s.EndPeriod != nil && s.StartPeriod.Compare(*s.EndPeriod) > 0 {
		return Invalid("start_period", "%s is after end_period %s", s.StartPeriod, s.EndPeriod)
	}
	return nil
}

func listParam(values url.Values, key string) []string {
	raw := values[key]
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
