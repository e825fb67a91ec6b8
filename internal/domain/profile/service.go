package profile

import "context"

// ProfileService serves the profile of the seeker in the request context.
type ProfileService interface {
	List(ctx context.Context, resource string) (ListResponse, error)
	Create(ctx context.Context, resource string, body map[string]any) (ItemResponse, error)
	DeleteResume(ctx context.Context, resumeID string) error
}
