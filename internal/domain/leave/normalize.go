package leave

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/coerce"
)

const (
	UnknownEmployee = "Unknown Employee"
	UnknownType     = "Leave"
)

var (
	idKeys         = []string{"id", "leave_id", "leaveId", "request_id"}
	employeeIDKeys = []string{"employeeId", "employee_id", "emp_id"}
	nameKeys       = []string{"employeeName", "employee_name", "name"}
	typeKeys       = []string{"type", "leave_type", "leaveType", "leave_type_name"}
	startKeys      = []string{"startDate", "start_date", "from", "from_date"}
	endKeys        = []string{"endDate", "end_date", "to", "to_date"}
	statusKeys     = []string{"status", "approval_status"}
	reasonKeys     = []string{"reason", "notes", "description"}
)

// Normalize converts one raw leave request. The status defaults to pending
// and the end date to the start date.
func Normalize(raw coerce.Object, loc *time.Location) LeaveRequest {
	r := LeaveRequest{
		ID:           coerce.String(coerce.First(raw, idKeys...)),
		EmployeeID:   coerce.ID(coerce.First(raw, employeeIDKeys...)),
		EmployeeName: UnknownEmployee,
		Type:         UnknownType,
		StartDate:    coerce.Date(coerce.First(raw, startKeys...), loc),
		EndDate:      coerce.Date(coerce.First(raw, endKeys...), loc),
		Status:       ParseStatus(coerce.String(coerce.First(raw, statusKeys...))),
		Reason:       coerce.String(coerce.First(raw, reasonKeys...)),
	}

	if v := coerce.First(raw, nameKeys...); v != nil {
		r.EmployeeName = nestedName(v, UnknownEmployee)
	} else if emp, ok := raw["employee"].(coerce.Object); ok {
		r.EmployeeName = coerce.StringOr(coerce.First(emp, "name", "full_name"), UnknownEmployee)
		if r.EmployeeID == 0 {
			r.EmployeeID = coerce.ID(emp["id"])
		}
	}
	if v := coerce.First(raw, typeKeys...); v != nil {
		r.Type = nestedName(v, UnknownType)
	}
	if r.EndDate == "" {
		r.EndDate = r.StartDate
	}
	return r
}

// NormalizeAll converts a decoded payload (bare array or envelope). It never
// fails; entries without an id are dropped since they cannot be decided.
func NormalizeAll(payload any, loc *time.Location) []LeaveRequest {
	objs := coerce.Objects(payload)
	out := make([]LeaveRequest, 0, len(objs))
	for _, obj := range objs {
		r := Normalize(obj, loc)
		if r.ID == "" {
			continue
		}
		out = append(out, r)
	}
	return out
}

// ParseStatus maps backend spellings onto Status. Unknown values are pending.
func ParseStatus(s string) Status {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "approved", "approve", "accepted":
		return StatusApproved
	case "rejected", "reject", "declined", "denied":
		return StatusRejected
	default:
		return StatusPending
	}
}

func nestedName(v any, fallback string) string {
	if obj, ok := v.(coerce.Object); ok {
		return coerce.StringOr(coerce.First(obj, "name", "full_name", "title"), fallback)
	}
	return coerce.StringOr(v, fallback)
}
