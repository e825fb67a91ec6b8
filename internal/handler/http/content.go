package http

import (
	"net/http"

	"github.com/cmlabs-hris/career-gateway-go/internal/domain/content"
	"github.com/cmlabs-hris/career-gateway-go/internal/handler/http/response"
)

type ContentHandler interface {
	ListCourses(w http.ResponseWriter, r *http.Request)
	ListBlogs(w http.ResponseWriter, r *http.Request)
	ListBlogCategories(w http.ResponseWriter, r *http.Request)
}

type contentHandlerImpl struct {
	contentService content.ContentService
}

func NewContentHandler(contentService content.ContentService) ContentHandler {
	return &contentHandlerImpl{contentService: contentService}
}

// ListCourses handles GET /content/courses
func (h *contentHandlerImpl) ListCourses(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, content.KindCourses)
}

// ListBlogs handles GET /content/blogs
func (h *contentHandlerImpl) ListBlogs(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, content.KindBlogs)
}

// ListBlogCategories handles GET /content/blogs/categories
func (h *contentHandlerImpl) ListBlogCategories(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, content.KindBlogCategories)
}

func (h *contentHandlerImpl) list(w http.ResponseWriter, r *http.Request, kind content.Kind) {
	q := r.URL.Query()
	result, err := h.contentService.List(r.Context(), kind, content.ListRequest{
		Page:     getIntQueryParam(r, "page", 0),
		Limit:    getIntQueryParam(r, "limit", 0),
		Category: q.Get("category"),
		Search:   q.Get("search"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Items, response.NewPageMeta(result.Page, result.Limit, result.Total, result.Degraded))
}
