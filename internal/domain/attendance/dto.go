package attendance

import (
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/validator"
)

// ========================================
// REQUESTS
// ========================================

type DailyTotalsRequest struct {
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date"` // YYYY-MM-DD, default today
}

func (r *DailyTotalsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs.Add("employee_id", "employee_id must be a positive number")
	}
	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs.Add("date", "date must be in YYYY-MM-DD format")
		}
	}

	return errs.Err()
}

const (
	DefaultHistoryDays = 5
	MaxHistoryLimit    = 31
)

type HistoryRequest struct {
	EmployeeID int64  `json:"employee_id"`
	From       string `json:"from,omitempty"` // YYYY-MM-DD, default today minus Days-1
	To         string `json:"to,omitempty"`   // YYYY-MM-DD, default today
	Limit      int    `json:"limit,omitempty"`
}

func (r *HistoryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs.Add("employee_id", "employee_id must be a positive number")
	}
	if r.From != "" {
		if _, ok := validator.IsValidDate(r.From); !ok {
			errs.Add("from", "from must be in YYYY-MM-DD format")
		}
	}
	if r.To != "" {
		if _, ok := validator.IsValidDate(r.To); !ok {
			errs.Add("to", "to must be in YYYY-MM-DD format")
		}
	}
	if len(errs) == 0 && !validator.IsValidDateRange(r.From, r.To) {
		errs.Add("from", "from must not be after to")
	}

	if r.Limit < 0 {
		errs.Add("limit", "limit must be a positive number")
	}
	if r.Limit == 0 {
		r.Limit = DefaultHistoryDays
	}
	if r.Limit > MaxHistoryLimit {
		r.Limit = MaxHistoryLimit
	}

	return errs.Err()
}

type ActionRequest struct {
	EmployeeID int64  `json:"employee_id"`
	Action     Action `json:"action"`
}

func (r *ActionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs.Add("employee_id", "employee_id must be a positive number")
	}
	switch r.Action {
	case ActionClockIn, ActionClockOut, ActionBreakStart, ActionBreakEnd:
	default:
		errs.Add("action", "action must be one of clock-in, clock-out, break-start, break-end")
	}

	return errs.Err()
}

// ========================================
// RESPONSES
// ========================================

type SessionResponse struct {
	EmployeeID     int64   `json:"employee_id"`
	Date           string  `json:"date"`
	ClockInTime    string  `json:"clock_in_time,omitempty"`
	ClockOutTime   string  `json:"clock_out_time,omitempty"`
	BreakStartTime string  `json:"break_start_time,omitempty"`
	BreakEndTime   string  `json:"break_end_time,omitempty"`
	TotalWorkHours float64 `json:"total_work_hours"`
	OvertimeHours  float64 `json:"overtime_hours"`
	IsActive       bool    `json:"is_active"`
}

type AttendanceRecordResponse struct {
	EmployeeID  int64  `json:"employee_id"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
	CheckIn     string `json:"check_in,omitempty"`
	CheckOut    string `json:"check_out,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

type DailyTotalsResponse struct {
	EmployeeID                int64   `json:"employee_id"`
	Date                      string  `json:"date"`
	TotalWorkHours            float64 `json:"total_work_hours"`
	TotalOvertimeHours        float64 `json:"total_overtime_hours"`
	TotalWorkHoursDisplay     string  `json:"total_work_hours_display"`
	TotalOvertimeHoursDisplay string  `json:"total_overtime_hours_display"`
	Degraded                  bool    `json:"degraded,omitempty"`
}

type EmployeeStatusResponse struct {
	EmployeeID  int64            `json:"employee_id"`
	Name        string           `json:"name"`
	Image       string           `json:"image,omitempty"`
	Status      Status           `json:"status"`
	StatusLabel string           `json:"status_label"`
	Session     *SessionResponse `json:"session,omitempty"`
}

type EmployeeStatusListResponse struct {
	Date     string                   `json:"date"`
	Items    []EmployeeStatusResponse `json:"items"`
	Counts   map[Status]int           `json:"counts"`
	Degraded bool                     `json:"degraded"`
}

type EmployeeInfo struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	DepartmentID  int64  `json:"department_id"`
	DesignationID int64  `json:"designation_id"`
	EmpType       string `json:"emp_type"`
	Image         string `json:"image,omitempty"`
}

type EmployeeDetailResponse struct {
	Employee      EmployeeInfo               `json:"employee"`
	Status        Status                     `json:"status"`
	StatusLabel   string                     `json:"status_label"`
	ActiveSession *SessionResponse           `json:"active_session,omitempty"`
	Today         DailyTotalsResponse        `json:"today"`
	History       []AttendanceRecordResponse `json:"history"`
	Degraded      bool                       `json:"degraded"`
}

type HistoryResponse struct {
	EmployeeID int64                      `json:"employee_id"`
	From       string                     `json:"from"`
	To         string                     `json:"to"`
	Records    []AttendanceRecordResponse `json:"records"`
	Degraded   bool                       `json:"degraded"`
}

type ExportResponse struct {
	FileName string `json:"file_name"`
	URL      string `json:"url"`
	Rows     int    `json:"rows"`
}

type ActionResponse struct {
	EmployeeID  int64               `json:"employee_id"`
	Action      Action              `json:"action"`
	Status      Status              `json:"status"`
	StatusLabel string              `json:"status_label"`
	Today       DailyTotalsResponse `json:"today"`
	// Degraded marks a status inferred from the action because the backend
	// could not be read back.
	Degraded bool `json:"degraded,omitempty"`
}

// StatusEvent is published on the realtime stream after an action.
type StatusEvent struct {
	EmployeeID int64  `json:"employee_id"`
	Action     Action `json:"action"`
	Status     Status `json:"status"`
	Date       string `json:"date"`
	At         string `json:"at"`
}
