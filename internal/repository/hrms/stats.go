package hrms

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/career-gateway-go/internal/config"
	"github.com/cmlabs-hris/career-gateway-go/internal/domain/dashboard"
)

type statsRepositoryImpl struct {
	backend *Backend
}

func NewStatsRepository(backend *Backend) dashboard.StatsRepository {
	return &statsRepositoryImpl{backend: backend}
}

// GetStats implements dashboard.StatsRepository.
func (r *statsRepositoryImpl) GetStats(ctx context.Context) (dashboard.Stats, error) {
	payload, err := r.backend.read(ctx, config.ResourceStats, nil)
	if err != nil {
		return dashboard.Stats{}, fmt.Errorf("get hr stats: %w", err)
	}
	return dashboard.NormalizeStats(payload), nil
}
