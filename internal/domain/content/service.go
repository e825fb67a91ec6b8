package content

import "context"

type ContentService interface {
	List(ctx context.Context, kind Kind, req ListRequest) (ListResponse, error)
}
