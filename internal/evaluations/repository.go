package evaluations

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/manyara-labs/aerolens/internal/filters"
	"github.com/manyara-labs/aerolens/pkg/query"
	"github.com/manyara-labs/aerolens/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates an evaluation workflow repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "evaluations"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

// completeAssignment claims the evaluator's pending assignment for a
// classification result. The status predicate makes the claim atomic: of any
// number of racing submissions, exactly one matches a pending row.
const completeAssignment = `
UPDATE public.evaluation_assignments
SET status = 'complete', completed_at = now()
WHERE classification_result_id = $1 AND evaluator_id = $2 AND status = 'pending'`

const insertEvaluation = `
INSERT INTO public.human_evaluations (classification_result_id, evaluator_id, human_category, human_confidence, human_reasoning)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, classification_result_id, evaluator_id, human_category, human_confidence, human_reasoning, created_at`

const finalizeClassification = `
UPDATE public.classification_results
SET final_category = $1, is_complete = TRUE, evaluator_id = $2
WHERE id = $3`

// Submit records a human evaluation. The assignment claim, the evaluation
// insert, and the classification finalization commit together or not at all;
// a submission with no pending assignment fails with ErrNotFoundOrComplete
// and leaves nothing behind.
func (r *repo) Submit(ctx context.Context, sub Submission) (*HumanEvaluation, error) {
	if err := sub.validate(); err != nil {
		return nil, err
	}

	eval, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (HumanEvaluation, error) {
		var zero HumanEvaluation

		err := repository.ExecExpectOne(ctx, tx, completeAssignment,
			sub.ClassificationResultID, sub.EvaluatorID)
		if err != nil {
			return zero, repository.MapError(err, ErrNotFoundOrComplete, ErrNotFoundOrComplete)
		}

		eval, err := repository.QueryOne(ctx, tx, insertEvaluation,
			[]any{sub.ClassificationResultID, sub.EvaluatorID, sub.HumanCategory, sub.HumanConfidence, sub.HumanReasoning},
			scanEvaluation)
		if err != nil {
			return zero, repository.MapError(err, ErrNotFoundOrComplete, ErrDuplicate)
		}

		_, err = tx.ExecContext(ctx, finalizeClassification,
			sub.HumanCategory, sub.EvaluatorID, sub.ClassificationResultID)
		if err != nil {
			return zero, fmt.Errorf("finalize classification: %w", err)
		}

		return eval, nil
	})
	if err != nil {
		return nil, err
	}
	return &eval, nil
}

// NextTask returns the evaluator's oldest pending assignment, or ErrNoPending.
func (r *repo) NextTask(ctx context.Context, evaluatorID string) (*Assignment, error) {
	b := query.NewBuilder(assignments)
	b.WhereEquals("evaluator_id", evaluatorID)
	b.WhereEquals("status", StatusPending)
	b.OrderByFields([]query.SortField{{Field: "assigned_at"}, {Field: "id"}})

	q, args := b.BuildSingleOrNull()

	a, err := repository.QueryOne(ctx, r.db, q, args, scanAssignment)
	if err != nil {
		return nil, repository.MapError(err, ErrNoPending, ErrNoPending)
	}
	return &a, nil
}

func (s Submission) validate() error {
	if s.ClassificationResultID < 1 {
		return filters.Invalid("classification_result_id", "must be a positive integer, got %d", s.ClassificationResultID)
	}
	if s.EvaluatorID == "" {
		return filters.Invalid("evaluator_id", "must not be empty")
	}
	if s.HumanCategory == "" {
		return filters.Invalid("human_category", "must not be empty")
	}
	if s.HumanConfidence < 0.0 || s.HumanConfidence > 1.0 {
		return filters.Invalid("human_confidence", "must be between 0.0 and 1.0, got %g", s.HumanConfidence)
	}
	return nil
}
