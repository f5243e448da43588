package evaluations

import (
	"github.com/manyara-labs/aerolens/pkg/query"
	"github.com/manyara-labs/aerolens/pkg/repository"
)

var assignments = query.
	NewProjectionMap("public", "evaluation_assignments", "a").
	Project("id", "id").
	Project("classification_result_id", "classification_result_id").
	Project("evaluator_id", "evaluator_id").
	Project("status", "status").
	Project("assigned_at", "assigned_at").
	Project("completed_at", "completed_at")

func scanAssignment(s repository.Scanner) (Assignment, error) {
	var a Assignment
	err := s.Scan(
		&a.ID,
		&a.ClassificationResultID,
		&a.EvaluatorID,
		&a.Status,
		&a.AssignedAt,
		&a.CompletedAt,
	)
	return a, err
}

func scanEvaluation(s repository.Scanner) (HumanEvaluation, error) {
	var e HumanEvaluation
	err := s.Scan(
		&e.ID,
		&e.ClassificationResultID,
		&e.EvaluatorID,
		&e.HumanCategory,
		&e.HumanConfidence,
		&e.HumanReasoning,
		&e.CreatedAt,
	)
	return e, err
}
