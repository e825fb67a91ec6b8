package attendance

// ClassifyStatus derives the badge of an employee from their active session.
// A nil session means the employee is clocked out. on-leave is never derived
// here; it only comes from the attendance record (see ResolveStatus).
func ClassifyStatus(session *TimeTrackingSession) Status {
	switch {
	case session == nil:
		return StatusClockedOut
	case session.ClockOutTime != "":
		return StatusClockedOut
	case session.OnBreak():
		return StatusOnBreak
	default:
		return StatusClockedIn
	}
}

// ActiveSession returns the active session of an employee, or nil. When the
// backend reports several active sessions the one with the latest clock-in
// wins, ties going to the later entry.
func ActiveSession(sessions []TimeTrackingSession, employeeID int64) *TimeTrackingSession {
	var active *TimeTrackingSession
	for i := range sessions {
		s := &sessions[i]
		if s.EmployeeID != employeeID || !s.IsActive() {
			continue
		}
		if active == nil || laterOrEqual(s, active) {
			active = s
		}
	}
	if active == nil {
		return nil
	}
	found := *active
	return &found
}

func laterOrEqual(a, b *TimeTrackingSession) bool {
	if a.Date != b.Date {
		return a.Date > b.Date
	}
	return a.ClockInTime >= b.ClockInTime
}

// ResolveStatus combines both attendance representations: a leave record for
// the day yields on-leave, otherwise the status is classified from the active
// session.
func ResolveStatus(sessions []TimeTrackingSession, record *AttendanceRecord, employeeID int64) Status {
	if record != nil && record.EmployeeID == employeeID && record.Status == RecordLeave {
		return StatusOnLeave
	}
	return ClassifyStatus(ActiveSession(sessions, employeeID))
}
