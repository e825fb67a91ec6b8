package attendance

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateDaily_SingleSession(t *testing.T) {
	sessions := []TimeTrackingSession{
		{EmployeeID: 1, Date: "2024-01-22", ClockInTime: "09:00", ClockOutTime: "17:30", TotalWorkHours: 8.0, OvertimeHours: 0},
	}

	got := AggregateDaily(sessions, 1, "2024-01-22")

	assert.Equal(t, DailyTotals{TotalWorkHours: 8.0, TotalOvertimeHours: 0}, got)
}

func TestAggregateDaily_EmptyMatch(t *testing.T) {
	sessions := []TimeTrackingSession{
		{EmployeeID: 2, Date: "2024-01-22", TotalWorkHours: 8},
		{EmployeeID: 1, Date: "2024-01-21", TotalWorkHours: 8},
	}

	for _, input := range [][]TimeTrackingSession{nil, {}, sessions} {
		got := AggregateDaily(input, 1, "2024-01-22")
		assert.Equal(t, DailyTotals{}, got)
		assert.False(t, math.IsNaN(got.TotalWorkHours))
		assert.False(t, math.IsNaN(got.TotalOvertimeHours))
	}
}

func TestAggregateDaily_IgnoresNonFinite(t *testing.T) {
	sessions := []TimeTrackingSession{
		{EmployeeID: 1, Date: "2024-01-22", TotalWorkHours: math.NaN(), OvertimeHours: math.Inf(1)},
		{EmployeeID: 1, Date: "2024-01-22", TotalWorkHours: 4, OvertimeHours: 1},
	}

	got := AggregateDaily(sessions, 1, "2024-01-22")

	assert.Equal(t, DailyTotals{TotalWorkHours: 4, TotalOvertimeHours: 1}, got)
}

func TestAggregateDaily_OrderIndependent(t *testing.T) {
	sessions := []TimeTrackingSession{
		{EmployeeID: 1, Date: "2024-01-22", TotalWorkHours: 3.25, OvertimeHours: 0},
		{EmployeeID: 1, Date: "2024-01-22", TotalWorkHours: 4.1, OvertimeHours: 0.3},
		{EmployeeID: 2, Date: "2024-01-22", TotalWorkHours: 9, OvertimeHours: 1},
		{EmployeeID: 1, Date: "2024-01-22", TotalWorkHours: 1.7, OvertimeHours: 1.15},
		{EmployeeID: 1, Date: "2024-01-23", TotalWorkHours: 8, OvertimeHours: 2},
	}
	want := AggregateDaily(sessions, 1, "2024-01-22")

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		shuffled := append([]TimeTrackingSession(nil), sessions...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := AggregateDaily(shuffled, 1, "2024-01-22")
		assert.InDelta(t, want.TotalWorkHours, got.TotalWorkHours, 1e-9)
		assert.InDelta(t, want.TotalOvertimeHours, got.TotalOvertimeHours, 1e-9)
	}
	assert.InDelta(t, 9.05, want.TotalWorkHours, 1e-9)
	assert.InDelta(t, 1.45, want.TotalOvertimeHours, 1e-9)
}

func TestBuildDailySummary(t *testing.T) {
	sessions := []TimeTrackingSession{
		{EmployeeID: 1, Date: "2024-01-22", ClockInTime: "08:00", ClockOutTime: "12:00", TotalWorkHours: 4},
		{EmployeeID: 1, Date: "2024-01-22", ClockInTime: "13:00", TotalWorkHours: 2.5, OvertimeHours: 0.5},
		{EmployeeID: 1, Date: "2024-01-21", ClockInTime: "08:00", ClockOutTime: "16:00", TotalWorkHours: 8},
	}
	records := []AttendanceRecord{
		{EmployeeID: 1, Date: "2024-01-22", Status: RecordPresent},
	}

	day := BuildDailySummary(sessions, records, 1, "2024-01-22")

	assert.Equal(t, StatusClockedIn, day.Status)
	assert.Len(t, day.Sessions, 2)
	assert.Equal(t, DailyTotals{TotalWorkHours: 6.5, TotalOvertimeHours: 0.5}, day.Totals)
	if assert.NotNil(t, day.Record) {
		assert.Equal(t, RecordPresent, day.Record.Status)
	}
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "8.00", FormatHours(8, 2))
	assert.Equal(t, "7.5", FormatHours(7.45, 1))
	assert.Equal(t, "0.00", FormatHours(math.NaN(), 2))
	assert.Equal(t, "3", FormatHours(3.2, -1))
}
