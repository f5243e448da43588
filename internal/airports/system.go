package airports

import "context"

// System defines the public contract for airport reference lookups.
type System interface {
	Handler() *Handler

	Lookup(ctx context.Context, codes []string) (map[string]Airport, error)
	Find(ctx context.Context, code string) (*Airport, error)
}
