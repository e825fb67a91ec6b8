package profile

import "github.com/cmlabs-hris/career-gateway-go/internal/pkg/coerce"

type ListResponse struct {
	Resource Resource        `json:"resource"`
	Items    []coerce.Object `json:"items"`
	Degraded bool            `json:"degraded"`
}

type ItemResponse struct {
	Resource Resource      `json:"resource"`
	Item     coerce.Object `json:"item"`
}
