package portal

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/cmlabs-hris/career-gateway-go/internal/domain/content"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/coerce"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/upstream"
)

var contentPaths = map[content.Kind]string{
	content.KindCourses:        "/api/courses/list",
	content.KindBlogs:          "/api/blogs",
	content.KindBlogCategories: "/api/blogs/categories",
}

var totalKeys = []string{"total", "total_count", "totalCount", "total_items", "totalItems", "count"}

type contentRepositoryImpl struct {
	client *upstream.Client
}

func NewContentRepository(client *upstream.Client) content.ContentRepository {
	return &contentRepositoryImpl{client: client}
}

// List implements content.ContentRepository.
func (r *contentRepositoryImpl) List(ctx context.Context, kind content.Kind, q content.Query) (content.Page, error) {
	path, ok := contentPaths[kind]
	if !ok {
		return content.Page{}, content.ErrUnknownKind
	}

	query := url.Values{}
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		query.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Category != "" {
		query.Set("category", q.Category)
	}
	if q.Search != "" {
		query.Set("search", q.Search)
	}

	payload, err := r.client.Get(ctx, path, query)
	if err != nil {
		return content.Page{}, fmt.Errorf("list %s: %w", kind, err)
	}

	items := coerce.Objects(payload)
	if items == nil {
		items = []coerce.Object{}
	}
	return content.Page{Items: items, Total: totalOf(payload, len(items))}, nil
}

// totalOf finds the item count of a paginated envelope, falling back to the
// number of items on the page.
func totalOf(payload any, n int) int64 {
	obj, ok := payload.(coerce.Object)
	if !ok {
		return int64(n)
	}
	for _, scope := range []coerce.Object{obj, asObject(obj["pagination"]), asObject(obj["meta"]), asObject(obj["data"])} {
		if scope == nil {
			continue
		}
		if v := coerce.First(scope, totalKeys...); v != nil {
			if total := coerce.ID(v); total > 0 {
				return total
			}
		}
	}
	return int64(n)
}

func asObject(v any) coerce.Object {
	obj, _ := v.(coerce.Object)
	return obj
}
