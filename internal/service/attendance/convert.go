package attendance

import (
	"context"

	"github.com/cmlabs-hris/career-gateway-go/internal/domain/attendance"
	"github.com/cmlabs-hris/career-gateway-go/internal/domain/employee"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/i18n"
)

const hoursDecimals = 2

func statusLabel(ctx context.Context, status attendance.Status) string {
	return label(ctx, "status."+string(status), string(status))
}

func recordLabel(ctx context.Context, status attendance.RecordStatus) string {
	return label(ctx, "record."+string(status), string(status))
}

// label translates id, falling back to raw for values without a message.
func label(ctx context.Context, id, raw string) string {
	if msg := i18n.T(ctx, id); msg != id {
		return msg
	}
	return raw
}

func toSessionResponse(s *attendance.TimeTrackingSession) *attendance.SessionResponse {
	if s == nil {
		return nil
	}
	return &attendance.SessionResponse{
		EmployeeID:     s.EmployeeID,
		Date:           s.Date,
		ClockInTime:    s.ClockInTime,
		ClockOutTime:   s.ClockOutTime,
		BreakStartTime: s.BreakStartTime,
		BreakEndTime:   s.BreakEndTime,
		TotalWorkHours: s.TotalWorkHours,
		OvertimeHours:  s.OvertimeHours,
		IsActive:       s.IsActive(),
	}
}

func toRecordResponses(ctx context.Context, records []attendance.AttendanceRecord) []attendance.AttendanceRecordResponse {
	out := make([]attendance.AttendanceRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, attendance.AttendanceRecordResponse{
			EmployeeID:  r.EmployeeID,
			Date:        r.Date,
			Status:      string(r.Status),
			StatusLabel: recordLabel(ctx, r.Status),
			CheckIn:     r.CheckIn,
			CheckOut:    r.CheckOut,
			Notes:       r.Notes,
		})
	}
	return out
}

func toDailyTotalsResponse(employeeID int64, date string, totals attendance.DailyTotals, degraded bool) attendance.DailyTotalsResponse {
	return attendance.DailyTotalsResponse{
		EmployeeID:                employeeID,
		Date:                      date,
		TotalWorkHours:            totals.TotalWorkHours,
		TotalOvertimeHours:        totals.TotalOvertimeHours,
		TotalWorkHoursDisplay:     attendance.FormatHours(totals.TotalWorkHours, hoursDecimals),
		TotalOvertimeHoursDisplay: attendance.FormatHours(totals.TotalOvertimeHours, hoursDecimals),
		Degraded:                  degraded,
	}
}

func toEmployeeInfo(e employee.Employee) attendance.EmployeeInfo {
	return attendance.EmployeeInfo{
		ID:            e.ID,
		Name:          e.Name,
		Email:         e.Email,
		DepartmentID:  e.DepartmentID,
		DesignationID: e.DesignationID,
		EmpType:       e.EmpType,
		Image:         e.Image,
	}
}
