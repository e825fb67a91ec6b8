package content

import "github.com/cmlabs-hris/career-gateway-go/internal/pkg/coerce"

// Kind is a public content listing.
type Kind string

const (
	KindCourses        Kind = "courses"
	KindBlogs          Kind = "blogs"
	KindBlogCategories Kind = "blog_categories"
)

// Query is a paginated listing request sent to the content backend.
type Query struct {
	Page     int
	Limit    int
	Category string
	Search   string
}

// Page is one page of items as served by the content backend. Items are
// passed through as-is.
type Page struct {
	Items []coerce.Object
	Total int64
}
