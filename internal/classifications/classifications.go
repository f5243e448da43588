// Package classifications implements storage and retrieval of model
// classification results for incident records. A result references its
// origin record by identifier; the record itself stays in its source table
// and is joined back in on demand.
package classifications

import (
	"time"

	"github.com/manyara-labs/aerolens/internal/sources"
)

// ClassificationResult is one model prediction for a source record, together
// with its human evaluation state.
type ClassificationResult struct {
	ID                  int       `json:"id"`
	SourceUID           string    `json:"source_uid"`
	ModelVersion        string    `json:"model_version"`
	PredictedCategory   string    `json:"predicted_category"`
	PredictedConfidence float64   `json:"predicted_confidence"`
	FinalCategory       *string   `json:"final_category"`
	IsComplete          bool      `json:"is_complete"`
	EvaluatorID         *string   `json:"evaluator_id"`
	ProcessedAt         time.Time `json:"processed_at"`
}

// FullResult pairs a classification with its origin record in canonical shape.
type FullResult struct {
	Classification ClassificationResult `json:"classification"`
	Record         sources.Record       `json:"record"`
}

// BulkRecord is one joined row of a bulk retrieval: the origin record in
// canonical shape plus the classification categories attached to it.
type BulkRecord struct {
	sources.Record
	PredictedCategory string  `json:"predicted_category"`
	FinalCategory     *string `json:"final_category"`
}

// BulkReport is the result of a bulk retrieval: the joined records keyed by
// identifier, and summary statistics computed over exactly those records.
// Identifiers with an unknown prefix or no classified row are absent.
type BulkReport struct {
	Records    map[string]BulkRecord `json:"records"`
	Statistics SummaryStatistics     `json:"statistics"`
}
