package portal

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/cmlabs-hris/career-gateway-go/internal/domain/profile"
	"github.com/cmlabs-hris/career-gateway-go/internal/domain/session"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/coerce"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/upstream"
)

const profileBase = "/api/seeker/profile/"

// profileAuth is the scheme each profile endpoint accepts.
var profileAuth = map[profile.Resource]authScheme{
	profile.ResourceEducation:    authBearer,
	profile.ResourceLanguages:    authBearer,
	profile.ResourceResumes:      authBearer,
	profile.ResourceApplications: authJobseekerQuery,
	profile.ResourceMatchingJobs: authJobseekerQuery,
}

type profileRepositoryImpl struct {
	client *upstream.Client
}

func NewProfileRepository(client *upstream.Client) profile.ProfileRepository {
	return &profileRepositoryImpl{client: client}
}

// List implements profile.ProfileRepository.
func (r *profileRepositoryImpl) List(ctx context.Context, id session.Identity, resource profile.Resource) ([]coerce.Object, error) {
	payload, err := r.client.Do(ctx, upstream.Request{
		Method:      http.MethodGet,
		Path:        profileBase + string(resource),
		Credentials: credentials(id, profileAuth[resource]),
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", resource, err)
	}
	items := coerce.Objects(payload)
	if items == nil {
		items = []coerce.Object{}
	}
	return items, nil
}

// Create implements profile.ProfileRepository. The seeker id is always set
// in the body as well since some endpoints read it from there.
func (r *profileRepositoryImpl) Create(ctx context.Context, id session.Identity, resource profile.Resource, body map[string]any) (coerce.Object, error) {
	data := make(map[string]any, len(body)+1)
	for k, v := range body {
		data[k] = v
	}
	data["jobseeker_id"] = id.JobseekerID()

	payload, err := r.client.Do(ctx, upstream.Request{
		Method:      http.MethodPost,
		Path:        profileBase + string(resource),
		Body:        data,
		Credentials: credentials(id, profileAuth[resource]),
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", resource, err)
	}
	item := coerce.Single(payload, "item", string(resource))
	if item == nil {
		item = coerce.Object{}
	}
	return item, nil
}

// DeleteResume implements profile.ProfileRepository.
func (r *profileRepositoryImpl) DeleteResume(ctx context.Context, id session.Identity, resumeID string) error {
	_, err := r.client.Do(ctx, upstream.Request{
		Method:      http.MethodDelete,
		Path:        profileBase + string(profile.ResourceResumes) + "/" + url.PathEscape(resumeID),
		Credentials: credentials(id, profileAuth[profile.ResourceResumes]),
	})
	if upstream.IsNotFound(err) {
		return profile.ErrResumeNotFound
	}
	if err != nil {
		return fmt.Errorf("delete resume %s: %w", resumeID, err)
	}
	return nil
}
