package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/career-gateway-go/internal/domain/profile"
	"github.com/cmlabs-hris/career-gateway-go/internal/domain/session"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/coerce"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/validator"
)

type ProfileServiceImpl struct {
	repo profile.ProfileRepository
}

func NewProfileService(repo profile.ProfileRepository) profile.ProfileService {
	return &ProfileServiceImpl{repo: repo}
}

// List implements profile.ProfileService.
func (s *ProfileServiceImpl) List(ctx context.Context, resource string) (profile.ListResponse, error) {
	id, res, err := s.resolve(ctx, resource)
	if err != nil {
		return profile.ListResponse{}, err
	}

	resp := profile.ListResponse{Resource: res, Items: []coerce.Object{}}
	items, err := s.repo.List(ctx, id, res)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return profile.ListResponse{}, ctxErr
		}
		slog.WarnContext(ctx, "Failed to list profile resource", "resource", res, "jobseeker_id", id.JobseekerID(), "error", err)
		resp.Degraded = true
		return resp, nil
	}
	resp.Items = items
	return resp, nil
}

// Create implements profile.ProfileService.
func (s *ProfileServiceImpl) Create(ctx context.Context, resource string, body map[string]any) (profile.ItemResponse, error) {
	id, res, err := s.resolve(ctx, resource)
	if err != nil {
		return profile.ItemResponse{}, err
	}
	if !res.Writable() {
		return profile.ItemResponse{}, profile.ErrReadOnlyResource
	}
	if len(body) == 0 {
		var errs validator.ValidationErrors
		errs.Add("body", "request body must not be empty")
		return profile.ItemResponse{}, errs
	}

	item, err := s.repo.Create(ctx, id, res, body)
	if err != nil {
		return profile.ItemResponse{}, fmt.Errorf("failed to create %s entry: %w", res, err)
	}
	slog.InfoContext(ctx, "Profile entry created", "resource", res, "jobseeker_id", id.JobseekerID())
	return profile.ItemResponse{Resource: res, Item: item}, nil
}

// DeleteResume implements profile.ProfileService.
func (s *ProfileServiceImpl) DeleteResume(ctx context.Context, resumeID string) error {
	id, _, err := s.resolve(ctx, string(profile.ResourceResumes))
	if err != nil {
		return err
	}
	if validator.IsEmpty(resumeID) {
		return profile.ErrResumeNotFound
	}

	if err := s.repo.DeleteResume(ctx, id, resumeID); err != nil {
		if errors.Is(err, profile.ErrResumeNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	slog.InfoContext(ctx, "Resume deleted", "resume_id", resumeID, "jobseeker_id", id.JobseekerID())
	return nil
}

func (s *ProfileServiceImpl) resolve(ctx context.Context, resource string) (session.Identity, profile.Resource, error) {
	id, ok := session.FromContext(ctx)
	if !ok {
		return session.Identity{}, "", session.ErrUnauthorized
	}
	if id.JobseekerID() == "" {
		return session.Identity{}, "", session.ErrForbidden
	}
	res, ok := profile.ParseResource(resource)
	if !ok {
		return session.Identity{}, "", profile.ErrUnknownResource
	}
	return id, res, nil
}
