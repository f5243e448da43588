// Package evaluations implements the human evaluation workflow for
// classification results. Evaluators work through assignments; submitting an
// evaluation completes its assignment exactly once, no matter how many
// concurrent submissions race for it.
package evaluations

import "time"

// Assignment statuses.
const (
	StatusPending  = "pending"
	StatusComplete = "complete"
)

// Assignment is one unit of evaluation work: a classification result handed
// to an evaluator. Completion is recorded on the assignment row itself, so a
// conditional update on status is sufficient to claim it.
type Assignment struct {
	ID                     int        `json:"id"`
	ClassificationResultID int        `json:"classification_result_id"`
	EvaluatorID            string     `json:"evaluator_id"`
	Status                 string     `json:"status"`
	AssignedAt             time.Time  `json:"assigned_at"`
	CompletedAt            *time.Time `json:"completed_at"`
}

// HumanEvaluation is an evaluator's verdict on a classification result:
// the category they assign, their confidence in it, and their reasoning.
type HumanEvaluation struct {
	ID                     int       `json:"id"`
	ClassificationResultID int       `json:"classification_result_id"`
	EvaluatorID            string    `json:"evaluator_id"`
	HumanCategory          string    `json:"human_category"`
	HumanConfidence        float64   `json:"human_confidence"`
	HumanReasoning         *string   `json:"human_reasoning"`
	CreatedAt              time.Time `json:"created_at"`
}

// Submission is the payload for submitting a human evaluation.
// Confidence is a fraction in [0.0, 1.0].
type Submission struct {
	ClassificationResultID int     `json:"classification_result_id"`
	EvaluatorID            string  `json:"evaluator_id"`
	HumanCategory          string  `json:"human_category"`
	HumanConfidence        float64 `json:"human_confidence"`
	HumanReasoning         *string `json:"human_reasoning,omitempty"`
}
