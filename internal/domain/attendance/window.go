package attendance

import (
	"sort"
	"time"
)

const dateLayout = "2006-01-02"

// LastNDays returns the window covering today and the n-1 days before it in
// loc, limited to n records.
func LastNDays(now time.Time, loc *time.Location, n int) HistoryWindow {
	if n <= 0 {
		n = DefaultHistoryDays
	}
	if loc == nil {
		loc = time.Local
	}
	today := now.In(loc)
	return HistoryWindow{
		From:  today.AddDate(0, 0, -(n - 1)).Format(dateLayout),
		To:    today.Format(dateLayout),
		Limit: n,
	}
}

// Today formats the current date in loc.
func Today(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return now.In(loc).Format(dateLayout)
}

// WindowHistory keeps the records whose date falls inside the window, sorts
// them by date descending and truncates to the window limit (no limit when it
// is not positive). Dates are zero-padded ISO strings, so string order is date
// order. The input slice is not modified.
func WindowHistory(records []AttendanceRecord, window HistoryWindow) []AttendanceRecord {
	out := make([]AttendanceRecord, 0, len(records))
	for _, r := range records {
		if r.Date == "" {
			continue
		}
		if window.From != "" && r.Date < window.From {
			continue
		}
		if window.To != "" && r.Date > window.To {
			continue
		}
		out = append(out, r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})

	if window.Limit > 0 && len(out) > window.Limit {
		out = out[:window.Limit]
	}
	return out
}

// RecordsFor filters records down to one employee.
func RecordsFor(records []AttendanceRecord, employeeID int64) []AttendanceRecord {
	out := make([]AttendanceRecord, 0)
	for _, r := range records {
		if r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out
}
