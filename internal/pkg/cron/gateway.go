package cron

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/upstream"
)

// SessionPurger removes sessions that can no longer be used.
type SessionPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// GatewayJobs are the maintenance jobs of the gateway.
type GatewayJobs struct {
	resolver        *upstream.Resolver
	sessions        SessionPurger
	resolveInterval time.Duration
	purgeInterval   time.Duration
}

func NewGatewayJobs(resolver *upstream.Resolver, sessions SessionPurger, resolveInterval, purgeInterval time.Duration) *GatewayJobs {
	return &GatewayJobs{
		resolver:        resolver,
		sessions:        sessions,
		resolveInterval: resolveInterval,
		purgeInterval:   purgeInterval,
	}
}

func (j *GatewayJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("resolve_hrms_endpoints", j.resolveInterval, j.ResolveEndpoints)
	scheduler.AddJob("purge_expired_sessions", j.purgeInterval, j.PurgeSessions)
}

// ResolveEndpoints retries HRMS resources that had no working path yet.
// Paths already resolved are never tried again.
func (j *GatewayJobs) ResolveEndpoints(ctx context.Context) error {
	if len(j.resolver.Unresolved()) == 0 {
		return nil
	}
	err := j.resolver.Resolve(ctx)
	if errors.Is(err, upstream.ErrEndpointUnresolved) {
		slog.WarnContext(ctx, "Cron: HRMS endpoints still unresolved", "resources", j.resolver.Unresolved())
		return nil
	}
	return err
}

// PurgeSessions deletes expired and revoked sessions.
func (j *GatewayJobs) PurgeSessions(ctx context.Context) error {
	n, err := j.sessions.PurgeExpired(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		slog.InfoContext(ctx, "Cron: Purged sessions", "count", n)
	}
	return nil
}
