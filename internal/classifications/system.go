package classifications

import (
	"context"

	"github.com/manyara-labs/aerolens/pkg/pagination"
)

// ListFilter narrows a classification listing. Nil fields impose no restriction.
type ListFilter struct {
	EvaluatorID *string
	Category    *string
	Complete    *bool
}

// System defines the public contract for classification result operations.
type System interface {
	Handler() *Handler

	List(ctx context.Context, req pagination.PageRequest, filter ListFilter) (pagination.PageResult[ClassificationResult], error)
	Find(ctx context.Context, id int) (*ClassificationResult, error)
	FullByUID(ctx context.Context, uid string) (*FullResult, error)
	BulkRetrieve(ctx context.Context, uids []string) (*BulkReport, error)
}
