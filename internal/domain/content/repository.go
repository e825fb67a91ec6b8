package content

import "context"

// ContentRepository reads public listings from the content backend.
type ContentRepository interface {
	List(ctx context.Context, kind Kind, q Query) (Page, error)
}
