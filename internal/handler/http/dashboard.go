package http

import (
	"net/http"

	"github.com/cmlabs-hris/career-gateway-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/career-gateway-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetStats returns the HR stats cards
	GetStats(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetStats handles GET /hr/dashboard/stats
func (h *dashboardHandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
