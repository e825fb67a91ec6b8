package content

import (
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/coerce"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/validator"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 50
)

type ListRequest struct {
	Page     int    `json:"page"`
	Limit    int    `json:"limit"`
	Category string `json:"category,omitempty"`
	Search   string `json:"search,omitempty"`
}

// Validate rejects negative values and applies the pagination defaults.
func (r *ListRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Page < 0 {
		errs.Add("page", "page must be a positive number")
	}
	if r.Limit < 0 {
		errs.Add("limit", "limit must be a positive number")
	}
	if len(r.Search) > 100 {
		errs.Add("search", "search must not exceed 100 characters")
	}
	if err := errs.Err(); err != nil {
		return err
	}

	if r.Page == 0 {
		r.Page = DefaultPage
	}
	if r.Limit == 0 {
		r.Limit = DefaultLimit
	}
	if r.Limit > MaxLimit {
		r.Limit = MaxLimit
	}
	return nil
}

type ListResponse struct {
	Items    []coerce.Object `json:"items"`
	Page     int             `json:"page"`
	Limit    int             `json:"limit"`
	Total    int64           `json:"total"`
	Degraded bool            `json:"degraded"`
}
