package hrms

import (
	"context"
	"fmt"
	"net/url"

	"github.com/cmlabs-hris/career-gateway-go/internal/config"
	"github.com/cmlabs-hris/career-gateway-go/internal/domain/leave"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/upstream"
)

const (
	actionLeaveApprove = "leave-approve"
	actionLeaveReject  = "leave-reject"
)

type leaveRequestRepositoryImpl struct {
	backend *Backend
}

func NewLeaveRequestRepository(backend *Backend) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{backend: backend}
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.Filter) ([]leave.LeaveRequest, error) {
	query := url.Values{}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}

	payload, err := r.backend.read(ctx, config.ResourceLeaveRequests, query)
	if err != nil {
		return nil, fmt.Errorf("list leave requests: %w", err)
	}

	requests := leave.NormalizeAll(payload, r.backend.loc)
	if filter.Status == "" {
		return requests, nil
	}
	out := requests[:0]
	for _, lr := range requests {
		if lr.Status == filter.Status {
			out = append(out, lr)
		}
	}
	return out, nil
}

// Approve implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Approve(ctx context.Context, id string) error {
	return r.decide(ctx, actionLeaveApprove, id, map[string]any{"status": leave.StatusApproved})
}

// Reject implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Reject(ctx context.Context, id string, reason string) error {
	return r.decide(ctx, actionLeaveReject, id, map[string]any{"status": leave.StatusRejected, "reason": reason})
}

func (r *leaveRequestRepositoryImpl) decide(ctx context.Context, action, id string, body map[string]any) error {
	err := r.backend.action(ctx, action, id, body)
	if upstream.IsNotFound(err) {
		return leave.ErrLeaveRequestNotFound
	}
	if err != nil {
		return fmt.Errorf("%s %s: %w", action, id, err)
	}
	return nil
}
