package dashboard

import "context"

// StatsRepository reads HR statistics from the HRMS backend.
type StatsRepository interface {
	GetStats(ctx context.Context) (Stats, error)
}
