package leave

import (
	"context"
)

// Filter narrows a leave request listing. An empty Status means any.
type Filter struct {
	Status Status
}

// LeaveRequestRepository reads and decides leave requests held by the HRMS
// backend. Returned requests are already normalized.
type LeaveRequestRepository interface {
	List(ctx context.Context, filter Filter) ([]LeaveRequest, error)
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, id string, reason string) error
}
