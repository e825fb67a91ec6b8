package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/career-gateway-go/internal/domain/profile"
	"github.com/cmlabs-hris/career-gateway-go/internal/domain/session"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/coerce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockProfileRepo struct {
	mock.Mock
}

func (m *mockProfileRepo) List(ctx context.Context, id session.Identity, resource profile.Resource) ([]coerce.Object, error) {
	args := m.Called(ctx, id, resource)
	items, _ := args.Get(0).([]coerce.Object)
	return items, args.Error(1)
}

func (m *mockProfileRepo) Create(ctx context.Context, id session.Identity, resource profile.Resource, body map[string]any) (coerce.Object, error) {
	args := m.Called(ctx, id, resource, body)
	item, _ := args.Get(0).(coerce.Object)
	return item, args.Error(1)
}

func (m *mockProfileRepo) DeleteResume(ctx context.Context, id session.Identity, resumeID string) error {
	return m.Called(ctx, id, resumeID).Error(0)
}

var seeker = session.NewIdentity(session.Session{ID: "sess-1", Role: session.RoleSeeker, SubjectID: "42"})

func seekerContext() context.Context {
	return session.WithIdentity(context.Background(), seeker)
}

func TestList(t *testing.T) {
	repo := &mockProfileRepo{}
	ctx := seekerContext()
	repo.On("List", ctx, seeker, profile.ResourceEducation).Return([]coerce.Object{{"school": "ITB"}}, nil)
	repo.On("List", ctx, seeker, profile.ResourceApplications).Return(nil, errors.New("boom"))
	svc := NewProfileService(repo)

	resp, err := svc.List(ctx, "education")
	require.NoError(t, err)
	assert.Len(t, resp.Items, 1)
	assert.False(t, resp.Degraded)

	resp, err = svc.List(ctx, "applications")
	require.NoError(t, err)
	assert.True(t, resp.Degraded)
	assert.NotNil(t, resp.Items)

	_, err = svc.List(ctx, "salary")
	assert.ErrorIs(t, err, profile.ErrUnknownResource)
}

func TestList_RequiresSeeker(t *testing.T) {
	svc := NewProfileService(&mockProfileRepo{})
	employer := session.WithIdentity(context.Background(), session.NewIdentity(session.Session{Role: session.RoleEmployer, SubjectID: "7"}))

	_, err := svc.List(employer, "education")
	assert.ErrorIs(t, err, session.ErrForbidden)
	_, err = svc.List(context.Background(), "education")
	assert.ErrorIs(t, err, session.ErrUnauthorized)
}

func TestCreate(t *testing.T) {
	repo := &mockProfileRepo{}
	ctx := seekerContext()
	body := map[string]any{"language": "Indonesian"}
	repo.On("Create", ctx, seeker, profile.ResourceLanguages, body).Return(coerce.Object{"id": "9"}, nil)
	svc := NewProfileService(repo)

	resp, err := svc.Create(ctx, "languages", body)
	require.NoError(t, err)
	assert.Equal(t, "9", resp.Item["id"])

	_, err = svc.Create(ctx, "matching-jobs", body)
	assert.ErrorIs(t, err, profile.ErrReadOnlyResource)

	_, err = svc.Create(ctx, "languages", nil)
	assert.Error(t, err)
}

func TestDeleteResume(t *testing.T) {
	repo := &mockProfileRepo{}
	ctx := seekerContext()
	repo.On("DeleteResume", ctx, seeker, "r1").Return(nil)
	repo.On("DeleteResume", ctx, seeker, "r404").Return(profile.ErrResumeNotFound)
	svc := NewProfileService(repo)

	assert.NoError(t, svc.DeleteResume(ctx, "r1"))
	assert.ErrorIs(t, svc.DeleteResume(ctx, "r404"), profile.ErrResumeNotFound)
	repo.AssertExpectations(t)
}
