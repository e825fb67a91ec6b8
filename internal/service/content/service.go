package content

import (
	"context"
	"errors"
	"log/slog"

	"github.com/cmlabs-hris/career-gateway-go/internal/domain/content"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/coerce"
)

type ContentServiceImpl struct {
	repo content.ContentRepository
}

func NewContentService(repo content.ContentRepository) content.ContentService {
	return &ContentServiceImpl{repo: repo}
}

// List implements content.ContentService. Backend failures give an empty,
// degraded page; a cancelled request is returned as an error.
func (s *ContentServiceImpl) List(ctx context.Context, kind content.Kind, req content.ListRequest) (content.ListResponse, error) {
	if err := req.Validate(); err != nil {
		return content.ListResponse{}, err
	}

	resp := content.ListResponse{
		Items: []coerce.Object{},
		Page:  req.Page,
		Limit: req.Limit,
	}

	page, err := s.repo.List(ctx, kind, content.Query{
		Page:     req.Page,
		Limit:    req.Limit,
		Category: req.Category,
		Search:   req.Search,
	})
	if err != nil {
		if errors.Is(err, content.ErrUnknownKind) {
			return content.ListResponse{}, err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return content.ListResponse{}, ctxErr
		}
		slog.WarnContext(ctx, "Failed to list content", "kind", kind, "error", err)
		resp.Degraded = true
		return resp, nil
	}

	resp.Items = page.Items
	resp.Total = page.Total
	return resp, nil
}
