package sources_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/manyara-labs/aerolens/internal/sources"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		uid      string
		wantKind sources.Kind
		wantErr  bool
	}{
		{
			name:     "asn record",
			uid:      "asn_290359",
			wantKind: sources.KindASN,
		},
		{
			name:     "asrs record",
			uid:      "asrs_1581234",
			wantKind: sources.KindASRS,
		},
		{
			name:     "pci record",
			uid:      "pci_2021_044",
			wantKind: sources.KindPCI,
		},
		{
			name:    "unknown prefix",
			uid:     "ntsb_12345",
			wantErr: true,
		},
		{
			name:    "no separator",
			uid:     "asn290359",
			wantErr: true,
		},
		{
			name:    "empty",
			uid:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, projection, err := sources.Resolve(tt.uid)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Resolve(%q) succeeded, want error", tt.uid)
				}
				if !errors.Is(err, sources.ErrUnknownSource) {
					t.Errorf("error %v does not wrap ErrUnknownSource", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) failed: %v", tt.uid, err)
			}
			if kind != tt.wantKind {
				t.Errorf("kind = %q, want %q", kind, tt.wantKind)
			}
			if projection == nil {
				t.Error("projection is nil")
			}
		})
	}
}

func TestProjectionCanonicalFields(t *testing.T) {
	for _, kind := range sources.Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			p := sources.Projection(kind)
			if p == nil {
				t.Fatal("projection is nil")
			}
			for _, field := range sources.CanonicalFields {
				if !p.Has(field) {
					t.Errorf("kind %s missing canonical field %s", kind, field)
				}
			}
		})
	}
}

func TestProjectionRenames(t *testing.T) {
	tests := []struct {
		kind  sources.Kind
		field string
		want  string
	}{
		{sources.KindASN, "date", "s.sanitized_date"},
		{sources.KindASRS, "location", "s.place"},
		{sources.KindASRS, "narrative", "s.synopsis"},
		{sources.KindPCI, "narrative", "s.summary"},
		{sources.KindPCI, "phase", "NULL"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind)+"/"+tt.field, func(t *testing.T) {
			if got := sources.Projection(tt.kind).Column(tt.field); got != tt.want {
				t.Errorf("Column(%q) = %q, want %q", tt.field, got, tt.want)
			}
		})
	}
}

func TestPartition(t *testing.T) {
	uids := []string{
		"asn_1",
		"asrs_2",
		"asn_3",
		"pci_4",
		"bogus_5",
		"nounderscore",
	}

	parts := sources.Partition(uids)

	want := map[sources.Kind][]string{
		sources.KindASN:  {"asn_1", "asn_3"},
		sources.KindASRS: {"asrs_2"},
		sources.KindPCI:  {"pci_4"},
	}
	if !reflect.DeepEqual(parts, want) {
		t.Errorf("Partition() = %v, want %v", parts, want)
	}
}

func TestPartitionEmpty(t *testing.T) {
	if parts := sources.Partition(nil); len(parts) != 0 {
		t.Errorf("Partition(nil) = %v, want empty", parts)
	}
}

func TestUnionAll(t *testing.T) {
	got := sources.UnionAll()

	if strings.Count(got, " UNION ALL ") != 2 {
		t.Errorf("UnionAll() has %d UNION ALL joins, want 2", strings.Count(got, " UNION ALL "))
	}

	for _, table := range []string{
		"public.asn_scraped_accidents s",
		"public.asrs_records s",
		"public.pci_scraped_accidents s",
	} {
		if !strings.Contains(got, table) {
			t.Errorf("UnionAll() missing %q:\n%s", table, got)
		}
	}

	if !strings.Contains(got, "s.sanitized_date AS date") {
		t.Errorf("UnionAll() missing canonical date rename:\n%s", got)
	}
	if !strings.Contains(got, "NULL AS phase") {
		t.Errorf("UnionAll() missing NULL phase placeholder:\n%s", got)
	}
	if !strings.Contains(got, "s.synopsis AS narrative") {
		t.Errorf("UnionAll() missing asrs narrative rename:\n%s", got)
	}
}
