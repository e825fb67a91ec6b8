package attendance

import (
	"context"
)

// Action is a time-tracking mutation forwarded to the HRMS backend.
type Action string

const (
	ActionClockIn    Action = "clock-in"
	ActionClockOut   Action = "clock-out"
	ActionBreakStart Action = "break-start"
	ActionBreakEnd   Action = "break-end"
)

// SessionFilter narrows a session listing. Zero values mean "any".
type SessionFilter struct {
	EmployeeID int64
	Date       string // YYYY-MM-DD
}

// RecordFilter narrows an attendance record listing. Zero values mean "any".
type RecordFilter struct {
	EmployeeID int64
	From       string // YYYY-MM-DD, inclusive
	To         string // YYYY-MM-DD, inclusive
}

// SessionRepository reads and mutates time-tracking sessions held by the HRMS
// backend. Returned sessions are already normalized.
type SessionRepository interface {
	ListSessions(ctx context.Context, filter SessionFilter) ([]TimeTrackingSession, error)

	// PerformAction forwards a clock or break action. The backend is the sole
	// source of truth; callers refetch afterwards.
	PerformAction(ctx context.Context, employeeID int64, action Action) error
}

// RecordRepository reads attendance records held by the HRMS backend.
type RecordRepository interface {
	ListRecords(ctx context.Context, filter RecordFilter) ([]AttendanceRecord, error)
}
