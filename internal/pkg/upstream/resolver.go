package upstream

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
)

// Resolver picks, once, which of several candidate paths serves a logical
// resource on a backend that exposes it under different routes. The first
// candidate answering a GET with a JSON 2xx wins and is cached; requests then
// use the cached path and never retry discovery.
type Resolver struct {
	client     *Client
	candidates map[string][]string

	mu       sync.RWMutex
	resolved map[string]string
}

// NewResolver creates a resolver for the given resource -> candidate paths.
func NewResolver(client *Client, candidates map[string][]string) *Resolver {
	c := make(map[string][]string, len(candidates))
	for k, v := range candidates {
		c[k] = append([]string(nil), v...)
	}
	return &Resolver{
		client:     client,
		candidates: c,
		resolved:   make(map[string]string),
	}
}

// Resolve tries the candidates of every resource that is not resolved yet. It returns an error
// naming the resources left unresolved; resolved ones stay usable either way.
func (r *Resolver) Resolve(ctx context.Context) error {
	var missing []string
	for _, resource := range r.Unresolved() {
		path, ok := r.discover(ctx, resource)
		if !ok {
			missing = append(missing, resource)
			continue
		}
		r.mu.Lock()
		r.resolved[resource] = path
		r.mu.Unlock()
		slog.Info("Upstream endpoint resolved", "service", r.client.Name(), "resource", resource, "path", path)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrEndpointUnresolved, strings.Join(missing, ", "))
	}
	return nil
}

// Path returns the resolved path of a resource.
func (r *Resolver) Path(resource string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	path, ok := r.resolved[resource]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrEndpointUnresolved, resource)
	}
	return path, nil
}

// Unresolved lists resources without a working path, sorted.
func (r *Resolver) Unresolved() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []string
	for resource := range r.candidates {
		if _, ok := r.resolved[resource]; !ok {
			out = append(out, resource)
		}
	}
	sort.Strings(out)
	return out
}

// Snapshot returns a copy of the resolved paths.
func (r *Resolver) Snapshot() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]string, len(r.resolved))
	for k, v := range r.resolved {
		out[k] = v
	}
	return out
}

func (r *Resolver) discover(ctx context.Context, resource string) (string, bool) {
	for _, path := range r.candidates[resource] {
		payload, err := r.client.Get(ctx, path, nil)
		// A {"success": false} answer is still a JSON 2xx from a live route.
		// An empty 2xx proves nothing about the route.
		if (err == nil && payload != nil) || errors.Is(err, ErrRejected) {
			return path, true
		}
		if ctx.Err() != nil {
			return "", false
		}
		slog.Debug("Upstream endpoint candidate failed", "service", r.client.Name(), "resource", resource, "path", path, "error", err)
	}
	return "", false
}
