package leave

// Status of a leave request.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// LeaveRequest is the read-only copy of an HRMS leave request.
type LeaveRequest struct {
	ID           string
	EmployeeID   int64
	EmployeeName string
	Type         string
	StartDate    string // YYYY-MM-DD
	EndDate      string // YYYY-MM-DD
	Status       Status
	Reason       string
}

// IsPending reports whether the request can still be approved or rejected.
func (r LeaveRequest) IsPending() bool {
	return r.Status == StatusPending
}
