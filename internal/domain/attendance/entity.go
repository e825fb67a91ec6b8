package attendance

// Status is the badge shown for an employee on the HR dashboard.
type Status string

const (
	StatusClockedIn  Status = "clocked-in"
	StatusClockedOut Status = "clocked-out"
	StatusOnBreak    Status = "on-break"
	StatusOnLeave    Status = "on-leave"
)

// RecordStatus is the status the HRMS backend attaches to an attendance record.
type RecordStatus string

const (
	RecordPresent RecordStatus = "present"
	RecordAbsent  RecordStatus = "absent"
	RecordLate    RecordStatus = "late"
	RecordLeave   RecordStatus = "leave"
)

// TimeTrackingSession is one clock-in to clock-out interval. Timestamp fields
// hold whatever the backend sent ("09:00", RFC3339, ...); empty means absent.
// Hour totals are trusted as provided and never recomputed from timestamps.
type TimeTrackingSession struct {
	EmployeeID     int64
	Date           string // YYYY-MM-DD, local timezone
	ClockInTime    string
	ClockOutTime   string
	BreakStartTime string
	BreakEndTime   string
	TotalWorkHours float64
	OvertimeHours  float64
}

// IsActive reports whether the session has not been clocked out yet.
func (s TimeTrackingSession) IsActive() bool {
	return s.ClockOutTime == ""
}

// OnBreak reports whether a break was started and not ended.
func (s TimeTrackingSession) OnBreak() bool {
	return s.BreakStartTime != "" && s.BreakEndTime == ""
}

// AttendanceRecord is the per-day attendance entry kept by the HRMS backend.
type AttendanceRecord struct {
	EmployeeID int64
	Date       string // YYYY-MM-DD
	Status     RecordStatus
	CheckIn    string
	CheckOut   string
	Notes      string
}

// DailyTotals holds summed hours for one employee on one day.
type DailyTotals struct {
	TotalWorkHours     float64
	TotalOvertimeHours float64
}

// DailySummary is the canonical attendance day of an employee: the sessions and
// the attendance record of that date, the status derived from them and the
// summed totals.
//
// Status is on-leave only when Record says leave; otherwise it is derived from
// the active session. Totals are always the sum of Sessions.
type DailySummary struct {
	EmployeeID int64
	Date       string
	Status     Status
	Record     *AttendanceRecord
	Sessions   []TimeTrackingSession
	Totals     DailyTotals
}

// HistoryWindow selects attendance records for display. From and To are
// inclusive YYYY-MM-DD bounds; an empty bound is open.
type HistoryWindow struct {
	From  string
	To    string
	Limit int
}
