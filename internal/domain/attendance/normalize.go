package attendance

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/coerce"
)

// Field aliases seen across HRMS endpoints, in lookup order.
var (
	employeeIDKeys = []string{"employeeId", "employee_id", "emp_id", "empId", "user_id"}
	dateKeys       = []string{"date", "work_date", "attendance_date"}
	clockInKeys    = []string{"clockInTime", "clock_in_time", "clock_in", "clockIn"}
	clockOutKeys   = []string{"clockOutTime", "clock_out_time", "clock_out", "clockOut"}
	breakStartKeys = []string{"breakStartTime", "break_start_time", "break_start", "breakStart"}
	breakEndKeys   = []string{"breakEndTime", "break_end_time", "break_end", "breakEnd"}
	workHoursKeys  = []string{"totalWorkHours", "total_work_hours", "total_hours", "work_hours", "hours"}
	overtimeKeys   = []string{"overtimeHours", "overtime_hours", "overtime"}
	statusKeys     = []string{"status", "attendance_status"}
	checkInKeys    = []string{"checkIn", "check_in", "check_in_time", "clock_in"}
	checkOutKeys   = []string{"checkOut", "check_out", "check_out_time", "clock_out"}
	notesKeys      = []string{"notes", "note", "remarks"}
)

// NormalizeSession converts one raw session object. Missing numbers become 0
// and missing strings "". The date falls back to the clock-in timestamp when
// the backend omits it.
func NormalizeSession(raw coerce.Object, loc *time.Location) TimeTrackingSession {
	s := TimeTrackingSession{
		EmployeeID:     coerce.ID(coerce.First(raw, employeeIDKeys...)),
		Date:           coerce.Date(coerce.First(raw, dateKeys...), loc),
		ClockInTime:    coerce.String(coerce.First(raw, clockInKeys...)),
		ClockOutTime:   coerce.String(coerce.First(raw, clockOutKeys...)),
		BreakStartTime: coerce.String(coerce.First(raw, breakStartKeys...)),
		BreakEndTime:   coerce.String(coerce.First(raw, breakEndKeys...)),
		TotalWorkHours: coerce.Number(coerce.First(raw, workHoursKeys...)),
		OvertimeHours:  coerce.Number(coerce.First(raw, overtimeKeys...)),
	}
	if s.Date == "" {
		s.Date = coerce.Date(s.ClockInTime, loc)
	}
	return s
}

// NormalizeSessions converts a decoded payload (bare array or envelope) into
// sessions. It never fails; entries that are not objects are skipped.
func NormalizeSessions(payload any, loc *time.Location) []TimeTrackingSession {
	objs := coerce.Objects(payload)
	out := make([]TimeTrackingSession, 0, len(objs))
	for _, obj := range objs {
		out = append(out, NormalizeSession(obj, loc))
	}
	return out
}

// NormalizeRecord converts one raw attendance record. An empty status is
// read as absent; unknown statuses are kept lowercased.
func NormalizeRecord(raw coerce.Object, loc *time.Location) AttendanceRecord {
	r := AttendanceRecord{
		EmployeeID: coerce.ID(coerce.First(raw, employeeIDKeys...)),
		Date:       coerce.Date(coerce.First(raw, dateKeys...), loc),
		Status:     parseRecordStatus(coerce.String(coerce.First(raw, statusKeys...))),
		CheckIn:    coerce.String(coerce.First(raw, checkInKeys...)),
		CheckOut:   coerce.String(coerce.First(raw, checkOutKeys...)),
		Notes:      coerce.String(coerce.First(raw, notesKeys...)),
	}
	if r.Date == "" {
		r.Date = coerce.Date(r.CheckIn, loc)
	}
	return r
}

// NormalizeRecords converts a decoded payload into attendance records.
func NormalizeRecords(payload any, loc *time.Location) []AttendanceRecord {
	objs := coerce.Objects(payload)
	out := make([]AttendanceRecord, 0, len(objs))
	for _, obj := range objs {
		out = append(out, NormalizeRecord(obj, loc))
	}
	return out
}

func parseRecordStatus(s string) RecordStatus {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return RecordAbsent
	case "leave", "on-leave", "on_leave", "on leave":
		return RecordLeave
	default:
		return RecordStatus(s)
	}
}
