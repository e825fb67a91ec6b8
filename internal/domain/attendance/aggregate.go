package attendance

import (
	"math"
	"strconv"
)

// AggregateDaily sums work and overtime hours of the sessions matching the
// employee and date. The result does not depend on input order beyond float
// rounding and is {0, 0} when nothing matches.
func AggregateDaily(sessions []TimeTrackingSession, employeeID int64, date string) DailyTotals {
	var totals DailyTotals
	for _, s := range sessions {
		if s.EmployeeID != employeeID || s.Date != date {
			continue
		}
		totals.TotalWorkHours += finite(s.TotalWorkHours)
		totals.TotalOvertimeHours += finite(s.OvertimeHours)
	}
	return totals
}

// SessionsOn returns the sessions of one employee on one date, in input order.
func SessionsOn(sessions []TimeTrackingSession, employeeID int64, date string) []TimeTrackingSession {
	out := make([]TimeTrackingSession, 0)
	for _, s := range sessions {
		if s.EmployeeID == employeeID && s.Date == date {
			out = append(out, s)
		}
	}
	return out
}

// RecordOn returns the attendance record of one employee on one date.
func RecordOn(records []AttendanceRecord, employeeID int64, date string) *AttendanceRecord {
	for i := range records {
		if records[i].EmployeeID == employeeID && records[i].Date == date {
			r := records[i]
			return &r
		}
	}
	return nil
}

// BuildDailySummary assembles the attendance day of an employee.
func BuildDailySummary(sessions []TimeTrackingSession, records []AttendanceRecord, employeeID int64, date string) DailySummary {
	day := SessionsOn(sessions, employeeID, date)
	record := RecordOn(records, employeeID, date)
	return DailySummary{
		EmployeeID: employeeID,
		Date:       date,
		Status:     ResolveStatus(sessions, record, employeeID),
		Record:     record,
		Sessions:   day,
		Totals:     AggregateDaily(day, employeeID, date),
	}
}

// FormatHours renders hours with a fixed number of decimals. Rounding happens
// only here, never in the aggregates.
func FormatHours(v float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return strconv.FormatFloat(finite(v), 'f', decimals, 64)
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
