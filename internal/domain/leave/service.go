package leave

import "context"

// LeaveService lists and decides leave requests on behalf of an employer.
type LeaveService interface {
	List(ctx context.Context, req ListLeaveRequestsRequest) (ListLeaveRequestsResponse, error)

	// Approve and Reject forward the decision and return the refetched request
	Approve(ctx context.Context, req ApproveLeaveRequest) (LeaveRequestResponse, error)
	Reject(ctx context.Context, req RejectLeaveRequest) (LeaveRequestResponse, error)
}
