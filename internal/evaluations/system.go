package evaluations

import "context"

// System defines the public contract for the evaluation workflow.
type System interface {
	Handler() *Handler

	Submit(ctx context.Context, sub Submission) (*HumanEvaluation, error)
	NextTask(ctx context.Context, evaluatorID string) (*Assignment, error)
}
