package profile

import (
	"context"

	"github.com/cmlabs-hris/career-gateway-go/internal/domain/session"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/coerce"
)

// ProfileRepository proxies the seeker profile endpoints of the portal
// backend. Credentials are taken from the identity.
type ProfileRepository interface {
	List(ctx context.Context, id session.Identity, resource Resource) ([]coerce.Object, error)
	Create(ctx context.Context, id session.Identity, resource Resource, body map[string]any) (coerce.Object, error)
	DeleteResume(ctx context.Context, id session.Identity, resumeID string) error
}
