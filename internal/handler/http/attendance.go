package http

import (
	"net/http"

	"github.com/cmlabs-hris/career-gateway-go/internal/domain/attendance"
	"github.com/cmlabs-hris/career-gateway-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ListStatuses(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	GetDailyTotals(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	ExportHistory(w http.ResponseWriter, r *http.Request)

	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	BreakStart(w http.ResponseWriter, r *http.Request)
	BreakEnd(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// ListStatuses handles GET /hr/attendance/statuses?date=
func (h *attendanceHandlerImpl) ListStatuses(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.ListStatuses(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployee handles GET /hr/employees/{id}
func (h *attendanceHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDParam(r)
	if !ok {
		response.BadRequest(w, "Invalid employee ID", nil)
		return
	}

	result, err := h.attendanceService.GetEmployeeDetail(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDailyTotals handles GET /hr/employees/{id}/daily?date=
func (h *attendanceHandlerImpl) GetDailyTotals(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDParam(r)
	if !ok {
		response.BadRequest(w, "Invalid employee ID", nil)
		return
	}

	result, err := h.attendanceService.GetDailyTotals(r.Context(), attendance.DailyTotalsRequest{
		EmployeeID: employeeID,
		Date:       r.URL.Query().Get("date"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetHistory handles GET /hr/employees/{id}/history?from=&to=&limit=
func (h *attendanceHandlerImpl) GetHistory(w http.ResponseWriter, r *http.Request) {
	req, ok := historyRequest(w, r)
	if !ok {
		return
	}

	result, err := h.attendanceService.GetHistory(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportHistory handles GET /hr/employees/{id}/history/export
func (h *attendanceHandlerImpl) ExportHistory(w http.ResponseWriter, r *http.Request) {
	req, ok := historyRequest(w, r)
	if !ok {
		return
	}

	result, err := h.attendanceService.ExportHistory(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func historyRequest(w http.ResponseWriter, r *http.Request) (attendance.HistoryRequest, bool) {
	employeeID, ok := employeeIDParam(r)
	if !ok {
		response.BadRequest(w, "Invalid employee ID", nil)
		return attendance.HistoryRequest{}, false
	}
	q := r.URL.Query()
	return attendance.HistoryRequest{
		EmployeeID: employeeID,
		From:       q.Get("from"),
		To:         q.Get("to"),
		Limit:      getIntQueryParam(r, "limit", 0),
	}, true
}

// ClockIn handles POST /hr/employees/{id}/clock-in
func (h *attendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	h.perform(w, r, attendance.ActionClockIn)
}

// ClockOut handles POST /hr/employees/{id}/clock-out
func (h *attendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	h.perform(w, r, attendance.ActionClockOut)
}

// BreakStart handles POST /hr/employees/{id}/break-start
func (h *attendanceHandlerImpl) BreakStart(w http.ResponseWriter, r *http.Request) {
	h.perform(w, r, attendance.ActionBreakStart)
}

// BreakEnd handles POST /hr/employees/{id}/break-end
func (h *attendanceHandlerImpl) BreakEnd(w http.ResponseWriter, r *http.Request) {
	h.perform(w, r, attendance.ActionBreakEnd)
}

func (h *attendanceHandlerImpl) perform(w http.ResponseWriter, r *http.Request, action attendance.Action) {
	employeeID, ok := employeeIDParam(r)
	if !ok {
		response.BadRequest(w, "Invalid employee ID", nil)
		return
	}

	result, err := h.attendanceService.PerformAction(r.Context(), attendance.ActionRequest{
		EmployeeID: employeeID,
		Action:     action,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Action recorded", result)
}
