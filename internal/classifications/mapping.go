package classifications

import (
	"github.com/manyara-labs/aerolens/pkg/query"
	"github.com/manyara-labs/aerolens/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "classification_results", "c").
	Project("id", "id").
	Project("source_uid", "source_uid").
	Project("model_version", "model_version").
	Project("predicted_category", "predicted_category").
	Project("predicted_confidence", "predicted_confidence").
	Project("final_category", "final_category").
	Project("is_complete", "is_complete").
	Project("evaluator_id", "evaluator_id").
	Project("processed_at", "processed_at")

func scanResult(s repository.Scanner) (ClassificationResult, error) {
	var cr ClassificationResult
	err := s.Scan(
		&cr.ID,
		&cr.SourceUID,
		&cr.ModelVersion,
		&cr.PredictedCategory,
		&cr.PredictedConfidence,
		&cr.FinalCategory,
		&cr.IsComplete,
		&cr.EvaluatorID,
		&cr.ProcessedAt,
	)
	return cr, err
}

func scanBulkRecord(s repository.Scanner) (BulkRecord, error) {
	var br BulkRecord
	err := s.Scan(
		&br.UID,
		&br.Date,
		&br.Phase,
		&br.AircraftType,
		&br.Location,
		&br.Operator,
		&br.Narrative,
		&br.PredictedCategory,
		&br.FinalCategory,
	)
	return br, err
}
