// Package hrms implements the domain repositories on top of the external HRMS
// backend. Reads go to the paths found by the endpoint resolver at startup;
// actions go to the configured action paths. Every call is made on behalf of
// the employer in the request context.
package hrms

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/cmlabs-hris/career-gateway-go/internal/domain/session"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/upstream"
)

// employerParam scopes HRMS queries and actions to one employer.
const employerParam = "employer_id"

// Backend bundles what every HRMS repository needs.
type Backend struct {
	client   *upstream.Client
	resolver *upstream.Resolver
	actions  map[string]string
	loc      *time.Location
}

// NewBackend creates the shared HRMS backend. actions maps action names to
// paths that may contain an {id} placeholder.
func NewBackend(client *upstream.Client, resolver *upstream.Resolver, actions map[string]string, loc *time.Location) *Backend {
	if loc == nil {
		loc = time.Local
	}
	a := make(map[string]string, len(actions))
	for k, v := range actions {
		a[k] = v
	}
	return &Backend{client: client, resolver: resolver, actions: a, loc: loc}
}

// Location is the timezone used to derive local dates.
func (b *Backend) Location() *time.Location { return b.loc }

// credentials identifies the calling employer: its upstream token as bearer
// and its id as a query scope. Calls without an employer identity are refused
// before anything is sent.
func credentials(ctx context.Context) ([]upstream.Credential, error) {
	id, ok := session.FromContext(ctx)
	if !ok {
		return nil, session.ErrUnauthorized
	}
	if id.Tenant() == "" {
		return nil, session.ErrForbidden
	}
	return []upstream.Credential{
		upstream.Bearer(id.UpstreamToken()),
		upstream.QueryParam(employerParam, id.SubjectID()),
	}, nil
}

func (b *Backend) read(ctx context.Context, resource string, query url.Values) (any, error) {
	path, err := b.resolver.Path(resource)
	if err != nil {
		return nil, err
	}
	creds, err := credentials(ctx)
	if err != nil {
		return nil, err
	}
	return b.client.Get(ctx, path, query, creds...)
}

func (b *Backend) readSub(ctx context.Context, resource, sub string) (any, error) {
	path, err := b.resolver.Path(resource)
	if err != nil {
		return nil, err
	}
	creds, err := credentials(ctx)
	if err != nil {
		return nil, err
	}
	return b.client.Get(ctx, strings.TrimRight(path, "/")+"/"+url.PathEscape(sub), nil, creds...)
}

func (b *Backend) action(ctx context.Context, name, id string, body any) error {
	path, ok := b.actions[name]
	if !ok || path == "" {
		return fmt.Errorf("%w: action %s", upstream.ErrEndpointUnresolved, name)
	}
	creds, err := credentials(ctx)
	if err != nil {
		return err
	}
	path = strings.ReplaceAll(path, "{id}", url.PathEscape(id))
	_, err = b.client.Post(ctx, path, body, creds...)
	return err
}
