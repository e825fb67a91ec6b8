package dashboard

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cmlabs-hris/career-gateway-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/career-gateway-go/internal/domain/session"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/i18n"
)

type DashboardServiceImpl struct {
	repo dashboard.StatsRepository

	// maxStale bounds how old a retained payload may be and still be shown
	maxStale time.Duration
	now      func() time.Time

	mu sync.RWMutex
	// lastGood holds the most recent live payload per tenant
	lastGood map[string]dashboard.Snapshot
}

func NewDashboardService(repo dashboard.StatsRepository, maxStale time.Duration) dashboard.DashboardService {
	return &DashboardServiceImpl{
		repo:     repo,
		maxStale: maxStale,
		now:      time.Now,
		lastGood: make(map[string]dashboard.Snapshot),
	}
}

// GetStats implements dashboard.DashboardService. It never fails: a backend
// outage turns into a stale or unavailable answer.
func (s *DashboardServiceImpl) GetStats(ctx context.Context) (dashboard.StatsResponse, error) {
	tenant := tenantOf(ctx)
	stats, err := s.repo.GetStats(ctx)
	now := s.now()
	if err == nil {
		snap := dashboard.Snapshot{Stats: stats, FetchedAt: now}
		s.mu.Lock()
		s.lastGood[tenant] = snap
		s.mu.Unlock()
		return toResponse(dashboard.StateLive, "", snap), nil
	}

	slog.WarnContext(ctx, "Failed to fetch HR stats", "error", err)

	s.mu.RLock()
	last, ok := s.lastGood[tenant]
	s.mu.RUnlock()

	if ok && (s.maxStale <= 0 || now.Sub(last.FetchedAt) <= s.maxStale) {
		msg := i18n.T(ctx, "dashboard.stale", map[string]any{"FetchedAt": last.FetchedAt.Format(time.RFC3339)})
		return toResponse(dashboard.StateStale, msg, last), nil
	}

	return dashboard.StatsResponse{
		State:   dashboard.StateUnavailable,
		Message: i18n.T(ctx, "dashboard.unavailable"),
	}, nil
}

func tenantOf(ctx context.Context) string {
	if id, ok := session.FromContext(ctx); ok {
		return id.Tenant()
	}
	return ""
}

func toResponse(state dashboard.State, message string, snap dashboard.Snapshot) dashboard.StatsResponse {
	fetchedAt := snap.FetchedAt
	return dashboard.StatsResponse{
		State:     state,
		Message:   message,
		FetchedAt: &fetchedAt,
		Stats: &dashboard.StatsPayload{
			TotalEmployees:       snap.Stats.TotalEmployees,
			ActiveEmployees:      snap.Stats.ActiveEmployees,
			PresentToday:         snap.Stats.PresentToday,
			OnLeaveToday:         snap.Stats.OnLeaveToday,
			AbsentToday:          snap.Stats.AbsentToday,
			PendingLeaveRequests: snap.Stats.PendingLeaveRequests,
			Extra:                snap.Stats.Extra,
		},
	}
}
