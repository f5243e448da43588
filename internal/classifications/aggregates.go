package classifications

// SummaryStatistics summarizes a set of joined records. Counts are computed
// in the application over exactly the retrieved records, so they always agree
// with the accompanying record map.
type SummaryStatistics struct {
	TotalIncidents      int            `json:"total_incidents"`
	UniqueOperators     int            `json:"unique_operators"`
	UniqueAircraftTypes int            `json:"unique_aircraft_types"`
	PhaseCounts         map[string]int `json:"phase_counts"`
	OperatorCounts      map[string]int `json:"operator_counts"`
}

// Summarize computes summary statistics over joined records. Records with a
// nil field contribute to the total but not to that field's distribution.
func Summarize(records map[string]BulkRecord) SummaryStatistics {
	stats := SummaryStatistics{
		TotalIncidents: len(records),
		PhaseCounts:    make(map[string]int),
		OperatorCounts: make(map[string]int),
	}

	aircraftTypes := make(map[string]bool)
	for _, rec := range records {
		if rec.Phase != nil {
			stats.PhaseCounts[*rec.Phase]++
		}
		if rec.Operator != nil {
			stats.OperatorCounts[*rec.Operator]++
		}
		if rec.AircraftType != nil {
			aircraftTypes[*rec.AircraftType] = true
		}
	}

	stats.UniqueOperators = len(stats.OperatorCounts)
	stats.UniqueAircraftTypes = len(aircraftTypes)
	return stats
}
