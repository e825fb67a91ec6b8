package content

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/career-gateway-go/internal/domain/content"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/coerce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockContentRepo struct {
	mock.Mock
}

func (m *mockContentRepo) List(ctx context.Context, kind content.Kind, q content.Query) (content.Page, error) {
	args := m.Called(ctx, kind, q)
	return args.Get(0).(content.Page), args.Error(1)
}

func TestList_AppliesPaginationDefaults(t *testing.T) {
	repo := &mockContentRepo{}
	ctx := context.Background()
	repo.On("List", ctx, content.KindCourses, content.Query{Page: 1, Limit: 10}).
		Return(content.Page{Items: []coerce.Object{{"id": 1}}, Total: 31}, nil)

	resp, err := NewContentService(repo).List(ctx, content.KindCourses, content.ListRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 10, resp.Limit)
	assert.Equal(t, int64(31), resp.Total)
	assert.False(t, resp.Degraded)
}

func TestList_CapsLimit(t *testing.T) {
	repo := &mockContentRepo{}
	ctx := context.Background()
	repo.On("List", ctx, content.KindBlogs, content.Query{Page: 3, Limit: content.MaxLimit, Category: "tips"}).
		Return(content.Page{Items: []coerce.Object{}}, nil)

	resp, err := NewContentService(repo).List(ctx, content.KindBlogs, content.ListRequest{Page: 3, Limit: 500, Category: "tips"})
	require.NoError(t, err)
	assert.Equal(t, content.MaxLimit, resp.Limit)
}

func TestList_DegradesOnBackendFailure(t *testing.T) {
	repo := &mockContentRepo{}
	ctx := context.Background()
	repo.On("List", ctx, content.KindBlogCategories, mock.Anything).Return(content.Page{}, errors.New("connection refused"))

	resp, err := NewContentService(repo).List(ctx, content.KindBlogCategories, content.ListRequest{})
	require.NoError(t, err)
	assert.True(t, resp.Degraded)
	assert.NotNil(t, resp.Items)
	assert.Empty(t, resp.Items)
}

func TestList_CancelledRequest(t *testing.T) {
	repo := &mockContentRepo{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repo.On("List", ctx, content.KindCourses, mock.Anything).Return(content.Page{}, context.Canceled)

	_, err := NewContentService(repo).List(ctx, content.KindCourses, content.ListRequest{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestList_InvalidRequest(t *testing.T) {
	_, err := NewContentService(&mockContentRepo{}).List(context.Background(), content.KindCourses, content.ListRequest{Page: -1})
	assert.Error(t, err)
}
