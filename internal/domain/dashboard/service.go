package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetStats returns HR stats tagged live, stale (last good payload) or unavailable
	GetStats(ctx context.Context) (StatsResponse, error)
}
