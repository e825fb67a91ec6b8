package leave

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/career-gateway-go/internal/domain/leave"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/i18n"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockLeaveRepo struct {
	mock.Mock
}

func (m *mockLeaveRepo) List(ctx context.Context, filter leave.Filter) ([]leave.LeaveRequest, error) {
	args := m.Called(ctx, filter)
	requests, _ := args.Get(0).([]leave.LeaveRequest)
	return requests, args.Error(1)
}

func (m *mockLeaveRepo) Approve(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockLeaveRepo) Reject(ctx context.Context, id string, reason string) error {
	return m.Called(ctx, id, reason).Error(0)
}

func init() {
	if err := i18n.Init("en"); err != nil {
		panic(err)
	}
}

func TestList_CountsAndLabels(t *testing.T) {
	repo := &mockLeaveRepo{}
	svc := NewLeaveService(repo)
	ctx := context.Background()

	repo.On("List", ctx, leave.Filter{}).Return([]leave.LeaveRequest{
		{ID: "1", Status: leave.StatusPending},
		{ID: "2", Status: leave.StatusPending},
		{ID: "3", Status: leave.StatusApproved},
	}, nil)

	resp, err := svc.List(ctx, leave.ListLeaveRequestsRequest{})
	require.NoError(t, err)
	assert.False(t, resp.Degraded)
	assert.Len(t, resp.Items, 3)
	assert.Equal(t, 2, resp.Counts[leave.StatusPending])
	assert.Equal(t, "Approved", resp.Items[2].StatusLabel)
}

func TestList_Degraded(t *testing.T) {
	repo := &mockLeaveRepo{}
	svc := NewLeaveService(repo)
	ctx := context.Background()
	repo.On("List", ctx, leave.Filter{Status: leave.StatusPending}).Return(nil, errors.New("boom"))

	resp, err := svc.List(ctx, leave.ListLeaveRequestsRequest{Status: "pending"})
	require.NoError(t, err)
	assert.True(t, resp.Degraded)
	assert.Empty(t, resp.Items)
}

func TestList_InvalidStatus(t *testing.T) {
	_, err := NewLeaveService(&mockLeaveRepo{}).List(context.Background(), leave.ListLeaveRequestsRequest{Status: "maybe"})
	assert.Error(t, err)
}

func TestApprove_RefetchesDecision(t *testing.T) {
	repo := &mockLeaveRepo{}
	svc := NewLeaveService(repo)
	ctx := context.Background()

	repo.On("List", ctx, leave.Filter{}).Return([]leave.LeaveRequest{{ID: "1", EmployeeName: "Ana", Status: leave.StatusPending}}, nil).Once()
	repo.On("Approve", ctx, "1").Return(nil)
	repo.On("List", ctx, leave.Filter{}).Return([]leave.LeaveRequest{{ID: "1", EmployeeName: "Ana", Status: leave.StatusApproved}}, nil).Once()

	resp, err := svc.Approve(ctx, leave.ApproveLeaveRequest{ID: "1"})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, resp.Status)
	assert.Equal(t, "Ana", resp.EmployeeName)
	assert.False(t, resp.Degraded)
	repo.AssertExpectations(t)
}

func TestApprove_AlreadyProcessed(t *testing.T) {
	repo := &mockLeaveRepo{}
	svc := NewLeaveService(repo)
	ctx := context.Background()
	repo.On("List", ctx, leave.Filter{}).Return([]leave.LeaveRequest{{ID: "1", Status: leave.StatusRejected}}, nil)

	_, err := svc.Approve(ctx, leave.ApproveLeaveRequest{ID: "1"})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
	repo.AssertNotCalled(t, "Approve", mock.Anything, mock.Anything)
}

func TestApprove_NotFound(t *testing.T) {
	repo := &mockLeaveRepo{}
	svc := NewLeaveService(repo)
	ctx := context.Background()
	repo.On("List", ctx, leave.Filter{}).Return([]leave.LeaveRequest{}, nil)

	_, err := svc.Approve(ctx, leave.ApproveLeaveRequest{ID: "1"})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestReject_RequiresReason(t *testing.T) {
	_, err := NewLeaveService(&mockLeaveRepo{}).Reject(context.Background(), leave.RejectLeaveRequest{ID: "1"})
	assert.Error(t, err)
}

func TestReject_BackendRejectionPassesThrough(t *testing.T) {
	repo := &mockLeaveRepo{}
	svc := NewLeaveService(repo)
	ctx := context.Background()

	repo.On("List", ctx, leave.Filter{}).Return(nil, errors.New("list down")).Once()
	repo.On("Reject", ctx, "1", "no cover").Return(&upstream.RejectedError{Service: "hrms", Message: "Quota locked"})

	_, err := svc.Reject(ctx, leave.RejectLeaveRequest{ID: "1", Reason: "no cover"})
	require.ErrorIs(t, err, upstream.ErrRejected)
	assert.Equal(t, "Quota locked", upstream.Message(err))
}

func TestReject_RefetchFailureReturnsExpected(t *testing.T) {
	repo := &mockLeaveRepo{}
	svc := NewLeaveService(repo)
	ctx := context.Background()

	repo.On("List", ctx, leave.Filter{}).Return([]leave.LeaveRequest{{ID: "1", Status: leave.StatusPending}}, nil).Once()
	repo.On("Reject", ctx, "1", "no cover").Return(nil)
	repo.On("List", ctx, leave.Filter{}).Return(nil, errors.New("list down")).Once()

	resp, err := svc.Reject(ctx, leave.RejectLeaveRequest{ID: "1", Reason: "no cover"})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, resp.Status)
	assert.Equal(t, "Rejected", resp.StatusLabel)
	assert.True(t, resp.Degraded, "an inferred status is flagged")
}

func TestApprove_MissingAfterDecisionIsDegraded(t *testing.T) {
	repo := &mockLeaveRepo{}
	svc := NewLeaveService(repo)
	ctx := context.Background()

	repo.On("List", ctx, leave.Filter{}).Return([]leave.LeaveRequest{{ID: "1", Status: leave.StatusPending}}, nil).Once()
	repo.On("Approve", ctx, "1").Return(nil)
	repo.On("List", ctx, leave.Filter{}).Return([]leave.LeaveRequest{}, nil).Once()

	resp, err := svc.Approve(ctx, leave.ApproveLeaveRequest{ID: "1"})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, resp.Status)
	assert.True(t, resp.Degraded)
}
