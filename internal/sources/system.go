package sources

import "context"

// System defines the public contract for source record operations.
type System interface {
	Handler() *Handler

	Fetch(ctx context.Context, uid string) (*Record, error)
}
