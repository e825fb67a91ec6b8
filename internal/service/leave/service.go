package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/career-gateway-go/internal/domain/leave"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/i18n"
)

type LeaveServiceImpl struct {
	repo leave.LeaveRequestRepository
}

func NewLeaveService(repo leave.LeaveRequestRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		repo: repo,
	}
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, req leave.ListLeaveRequestsRequest) (leave.ListLeaveRequestsResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.ListLeaveRequestsResponse{}, err
	}

	resp := leave.ListLeaveRequestsResponse{
		Items:  []leave.LeaveRequestResponse{},
		Counts: map[leave.Status]int{},
	}

	requests, err := s.repo.List(ctx, leave.Filter{Status: leave.Status(req.Status)})
	if err != nil {
		slog.WarnContext(ctx, "Failed to list leave requests", "status", req.Status, "error", err)
		resp.Degraded = true
		return resp, nil
	}

	for _, r := range requests {
		resp.Items = append(resp.Items, toResponse(ctx, r))
		resp.Counts[r.Status]++
	}
	return resp, nil
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, req leave.ApproveLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if err := s.ensurePending(ctx, req.ID); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if err := s.repo.Approve(ctx, req.ID); err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to approve leave request: %w", err)
	}
	slog.InfoContext(ctx, "Leave request approved", "leave_request_id", req.ID)

	return s.refetch(ctx, req.ID, leave.StatusApproved)
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, req leave.RejectLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if err := s.ensurePending(ctx, req.ID); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if err := s.repo.Reject(ctx, req.ID, req.Reason); err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to reject leave request: %w", err)
	}
	slog.InfoContext(ctx, "Leave request rejected", "leave_request_id", req.ID)

	return s.refetch(ctx, req.ID, leave.StatusRejected)
}

// ensurePending refuses to decide a request that was already decided. When
// the list cannot be read the backend is left to judge.
func (s *LeaveServiceImpl) ensurePending(ctx context.Context, id string) error {
	requests, err := s.repo.List(ctx, leave.Filter{})
	if err != nil {
		slog.WarnContext(ctx, "Failed to check leave request before deciding", "leave_request_id", id, "error", err)
		return nil
	}
	r, ok := find(requests, id)
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	if !r.IsPending() {
		return leave.ErrLeaveRequestAlreadyProcessed
	}
	return nil
}

// refetch reads the decided request back. If the backend cannot be read the
// expected outcome is returned.
func (s *LeaveServiceImpl) refetch(ctx context.Context, id string, expected leave.Status) (leave.LeaveRequestResponse, error) {
	requests, err := s.repo.List(ctx, leave.Filter{})
	if err == nil {
		if r, ok := find(requests, id); ok {
			return toResponse(ctx, r), nil
		}
		err = errors.New("decided request missing from listing")
	}
	slog.WarnContext(ctx, "Failed to refetch leave request", "leave_request_id", id, "error", err)
	return leave.LeaveRequestResponse{ID: id, Status: expected, StatusLabel: statusLabel(ctx, expected), Degraded: true}, nil
}

func find(requests []leave.LeaveRequest, id string) (leave.LeaveRequest, bool) {
	for _, r := range requests {
		if r.ID == id {
			return r, true
		}
	}
	return leave.LeaveRequest{}, false
}

func statusLabel(ctx context.Context, status leave.Status) string {
	return i18n.T(ctx, "leave."+string(status))
}

func toResponse(ctx context.Context, r leave.LeaveRequest) leave.LeaveRequestResponse {
	return leave.LeaveRequestResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		Type:         r.Type,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Status:       r.Status,
		StatusLabel:  statusLabel(ctx, r.Status),
		Reason:       r.Reason,
	}
}
