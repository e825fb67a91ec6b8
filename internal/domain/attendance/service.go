package attendance

import (
	"context"
)

// AttendanceService defines the employer-side time tracking operations
type AttendanceService interface {
	// ListStatuses returns the status badge of every employee for a date (default today)
	ListStatuses(ctx context.Context, date string) (EmployeeStatusListResponse, error)

	// GetEmployeeDetail returns what the employee details modal shows
	GetEmployeeDetail(ctx context.Context, employeeID int64) (EmployeeDetailResponse, error)

	// GetDailyTotals sums work and overtime hours for an employee on a date
	GetDailyTotals(ctx context.Context, req DailyTotalsRequest) (DailyTotalsResponse, error)

	// GetHistory returns the windowed attendance history of an employee
	GetHistory(ctx context.Context, req HistoryRequest) (HistoryResponse, error)

	// ExportHistory writes the windowed history to an xlsx workbook and returns its URL
	ExportHistory(ctx context.Context, req HistoryRequest) (ExportResponse, error)

	// PerformAction forwards clock-in/out and break-start/end, then refetches
	PerformAction(ctx context.Context, req ActionRequest) (ActionResponse, error)
}
