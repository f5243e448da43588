package classifications_test

import (
	"testing"

	"github.com/manyara-labs/aerolens/internal/classifications"
	"github.com/manyara-labs/aerolens/internal/sources"
)

func ptr(s string) *string { return &s }

func record(phase, operator, aircraftType *string) classifications.BulkRecord {
	return classifications.BulkRecord{
		Record: sources.Record{
			Phase:        phase,
			Operator:     operator,
			AircraftType: aircraftType,
		},
	}
}

func TestSummarize(t *testing.T) {
	records := map[string]classifications.BulkRecord{
		"asn_1":  record(ptr("landing"), ptr("delta"), ptr("b737")),
		"asn_2":  record(ptr("landing"), ptr("delta"), ptr("b737")),
		"asrs_3": record(ptr("takeoff"), ptr("united"), ptr("a320")),
		"pci_4":  record(nil, ptr("delta"), nil),
	}

	stats := classifications.Summarize(records)

	if stats.TotalIncidents != 4 {
		t.Errorf("TotalIncidents = %d, want 4", stats.TotalIncidents)
	}
	if stats.UniqueOperators != 2 {
		t.Errorf("UniqueOperators = %d, want 2", stats.UniqueOperators)
	}
	if stats.UniqueAircraftTypes != 2 {
		t.Errorf("UniqueAircraftTypes = %d, want 2", stats.UniqueAircraftTypes)
	}
	if stats.PhaseCounts["landing"] != 2 {
		t.Errorf("PhaseCounts[landing] = %d, want 2", stats.PhaseCounts["landing"])
	}
	if stats.PhaseCounts["takeoff"] != 1 {
		t.Errorf("PhaseCounts[takeoff] = %d, want 1", stats.PhaseCounts["takeoff"])
	}
	if stats.OperatorCounts["delta"] != 3 {
		t.Errorf("OperatorCounts[delta] = %d, want 3", stats.OperatorCounts["delta"])
	}

	// The nil phase contributes to the total but not to any distribution.
	var phaseSum int
	for _, n := range stats.PhaseCounts {
		phaseSum += n
	}
	if phaseSum != 3 {
		t.Errorf("phase counts sum to %d, want 3", phaseSum)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	stats := classifications.Summarize(map[string]classifications.BulkRecord{})

	if stats.TotalIncidents != 0 {
		t.Errorf("TotalIncidents = %d, want 0", stats.TotalIncidents)
	}
	if stats.UniqueOperators != 0 || stats.UniqueAircraftTypes != 0 {
		t.Errorf("unique counts = %d/%d, want 0/0", stats.UniqueOperators, stats.UniqueAircraftTypes)
	}
	if stats.PhaseCounts == nil || stats.OperatorCounts == nil {
		t.Error("count maps should be initialized, not nil")
	}
}
