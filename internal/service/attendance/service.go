package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/cmlabs-hris/career-gateway-go/internal/domain/attendance"
	"github.com/cmlabs-hris/career-gateway-go/internal/domain/employee"
	"github.com/cmlabs-hris/career-gateway-go/internal/domain/session"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/sse"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/storage"
	"golang.org/x/sync/errgroup"
)

// EventStatusChanged is published on the tenant topic after a clock action.
const EventStatusChanged = "attendance.status"

const dateLayout = "2006-01-02"

type AttendanceServiceImpl struct {
	sessions  attendance.SessionRepository
	records   attendance.RecordRepository
	employees employee.EmployeeRepository
	hub       *sse.Hub
	files     storage.FileStorage
	loc       *time.Location
	now       func() time.Time
}

func NewAttendanceService(
	sessionRepo attendance.SessionRepository,
	recordRepo attendance.RecordRepository,
	employeeRepo employee.EmployeeRepository,
	hub *sse.Hub,
	files storage.FileStorage,
	loc *time.Location,
) attendance.AttendanceService {
	if loc == nil {
		loc = time.Local
	}
	return &AttendanceServiceImpl{
		sessions:  sessionRepo,
		records:   recordRepo,
		employees: employeeRepo,
		hub:       hub,
		files:     files,
		loc:       loc,
		now:       time.Now,
	}
}

func (s *AttendanceServiceImpl) today() string {
	return attendance.Today(s.now(), s.loc)
}

// ListStatuses implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListStatuses(ctx context.Context, date string) (attendance.EmployeeStatusListResponse, error) {
	if date == "" {
		date = s.today()
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		return attendance.EmployeeStatusListResponse{}, attendance.ErrInvalidDate
	}

	resp := attendance.EmployeeStatusListResponse{
		Date:   date,
		Items:  []attendance.EmployeeStatusResponse{},
		Counts: map[attendance.Status]int{},
	}

	// The three reads are independent. Each failure is logged where it
	// happens and the first one marks the list degraded.
	var (
		g         errgroup.Group
		employees []employee.Employee
		sessions  []attendance.TimeTrackingSession
		records   []attendance.AttendanceRecord
	)
	g.Go(func() error {
		var err error
		if employees, err = s.employees.List(ctx); err != nil {
			slog.WarnContext(ctx, "Failed to list employees", "error", err)
			return fmt.Errorf("list employees: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		// No date filter: a session opened the day before and still running
		// is active today, the same way the employee detail sees it.
		var err error
		if sessions, err = s.sessions.ListSessions(ctx, attendance.SessionFilter{}); err != nil {
			slog.WarnContext(ctx, "Failed to list time-tracking sessions", "error", err)
			return fmt.Errorf("list sessions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if records, err = s.records.ListRecords(ctx, attendance.RecordFilter{From: date, To: date}); err != nil {
			slog.WarnContext(ctx, "Failed to list attendance records", "date", date, "error", err)
			return fmt.Errorf("list records: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		resp.Degraded = true
	}

	if employees == nil {
		employees = employeesSeenIn(relevantSessions(sessions, date), records)
	}

	for _, emp := range employees {
		active := attendance.ActiveSession(sessions, emp.ID)
		status := attendance.ResolveStatus(sessions, attendance.RecordOn(records, emp.ID, date), emp.ID)
		resp.Items = append(resp.Items, attendance.EmployeeStatusResponse{
			EmployeeID:  emp.ID,
			Name:        emp.Name,
			Image:       emp.Image,
			Status:      status,
			StatusLabel: statusLabel(ctx, status),
			Session:     toSessionResponse(active),
		})
		resp.Counts[status]++
	}

	return resp, nil
}

// relevantSessions keeps the sessions dated on date plus every active one.
func relevantSessions(sessions []attendance.TimeTrackingSession, date string) []attendance.TimeTrackingSession {
	var out []attendance.TimeTrackingSession
	for _, ss := range sessions {
		if ss.Date == date || ss.IsActive() {
			out = append(out, ss)
		}
	}
	return out
}

// employeesSeenIn stands in for the employee list when it cannot be fetched.
func employeesSeenIn(sessions []attendance.TimeTrackingSession, records []attendance.AttendanceRecord) []employee.Employee {
	seen := map[int64]bool{}
	var out []employee.Employee
	add := func(id int64) {
		if id == 0 || seen[id] {
			return
		}
		seen[id] = true
		out = append(out, employee.Employee{ID: id, Name: employee.UnknownName})
	}
	for _, ss := range sessions {
		add(ss.EmployeeID)
	}
	for _, r := range records {
		add(r.EmployeeID)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// GetEmployeeDetail implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetEmployeeDetail(ctx context.Context, employeeID int64) (attendance.EmployeeDetailResponse, error) {
	if employeeID <= 0 {
		return attendance.EmployeeDetailResponse{}, attendance.ErrEmployeeNotFound
	}

	now := s.now()
	today := attendance.Today(now, s.loc)
	window := attendance.LastNDays(now, s.loc, attendance.DefaultHistoryDays)

	var resp attendance.EmployeeDetailResponse

	emp, err := s.employees.GetByID(ctx, employeeID)
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		return attendance.EmployeeDetailResponse{}, attendance.ErrEmployeeNotFound
	}
	if err != nil {
		slog.WarnContext(ctx, "Failed to get employee", "employee_id", employeeID, "error", err)
		emp = employee.Employee{ID: employeeID, Name: employee.UnknownName}
		resp.Degraded = true
	}
	resp.Employee = toEmployeeInfo(emp)

	sessions, sessionsErr := s.sessions.ListSessions(ctx, attendance.SessionFilter{EmployeeID: employeeID})
	if sessionsErr != nil {
		slog.WarnContext(ctx, "Failed to list time-tracking sessions", "employee_id", employeeID, "error", sessionsErr)
		resp.Degraded = true
	}
	records, err := s.records.ListRecords(ctx, attendance.RecordFilter{EmployeeID: employeeID, From: window.From, To: window.To})
	if err != nil {
		slog.WarnContext(ctx, "Failed to list attendance records", "employee_id", employeeID, "error", err)
		resp.Degraded = true
	}

	summary := attendance.BuildDailySummary(sessions, records, employeeID, today)
	resp.Status = attendance.ResolveStatus(sessions, summary.Record, employeeID)
	resp.StatusLabel = statusLabel(ctx, resp.Status)
	resp.ActiveSession = toSessionResponse(attendance.ActiveSession(sessions, employeeID))
	resp.Today = toDailyTotalsResponse(employeeID, today, summary.Totals, sessionsErr != nil)
	resp.History = toRecordResponses(ctx, attendance.WindowHistory(attendance.RecordsFor(records, employeeID), window))

	return resp, nil
}

// GetDailyTotals implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetDailyTotals(ctx context.Context, req attendance.DailyTotalsRequest) (attendance.DailyTotalsResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DailyTotalsResponse{}, err
	}
	if req.Date == "" {
		req.Date = s.today()
	}

	sessions, err := s.sessions.ListSessions(ctx, attendance.SessionFilter{EmployeeID: req.EmployeeID, Date: req.Date})
	if err != nil {
		slog.WarnContext(ctx, "Failed to list time-tracking sessions", "employee_id", req.EmployeeID, "date", req.Date, "error", err)
		return toDailyTotalsResponse(req.EmployeeID, req.Date, attendance.DailyTotals{}, true), nil
	}

	totals := attendance.AggregateDaily(sessions, req.EmployeeID, req.Date)
	return toDailyTotalsResponse(req.EmployeeID, req.Date, totals, false), nil
}

// historyWindow fills the defaults of a validated history request: to is
// today and from reaches back limit-1 days from to.
func (s *AttendanceServiceImpl) historyWindow(req attendance.HistoryRequest) attendance.HistoryWindow {
	window := attendance.HistoryWindow{From: req.From, To: req.To, Limit: req.Limit}
	if window.To == "" {
		window.To = s.today()
	}
	if window.From == "" {
		to, err := time.ParseInLocation(dateLayout, window.To, s.loc)
		if err != nil {
			to = s.now().In(s.loc)
		}
		window.From = to.AddDate(0, 0, -(req.Limit - 1)).Format(dateLayout)
	}
	return window
}

// GetHistory implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetHistory(ctx context.Context, req attendance.HistoryRequest) (attendance.HistoryResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.HistoryResponse{}, err
	}
	window := s.historyWindow(req)

	resp := attendance.HistoryResponse{
		EmployeeID: req.EmployeeID,
		From:       window.From,
		To:         window.To,
		Records:    []attendance.AttendanceRecordResponse{},
	}

	records, err := s.records.ListRecords(ctx, attendance.RecordFilter{EmployeeID: req.EmployeeID, From: window.From, To: window.To})
	if err != nil {
		slog.WarnContext(ctx, "Failed to list attendance records", "employee_id", req.EmployeeID, "error", err)
		resp.Degraded = true
		return resp, nil
	}

	resp.Records = toRecordResponses(ctx, attendance.WindowHistory(attendance.RecordsFor(records, req.EmployeeID), window))
	return resp, nil
}

// PerformAction implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) PerformAction(ctx context.Context, req attendance.ActionRequest) (attendance.ActionResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ActionResponse{}, err
	}

	if err := s.sessions.PerformAction(ctx, req.EmployeeID, req.Action); err != nil {
		return attendance.ActionResponse{}, fmt.Errorf("failed to %s: %w", req.Action, err)
	}

	now := s.now()
	today := attendance.Today(now, s.loc)
	resp := attendance.ActionResponse{EmployeeID: req.EmployeeID, Action: req.Action}

	// the backend is the source of truth: read the outcome back
	sessions, err := s.sessions.ListSessions(ctx, attendance.SessionFilter{EmployeeID: req.EmployeeID})
	if err != nil {
		slog.WarnContext(ctx, "Failed to refetch sessions after action", "employee_id", req.EmployeeID, "action", req.Action, "error", err)
		resp.Status = expectedStatus(req.Action)
		resp.Degraded = true
		resp.Today = toDailyTotalsResponse(req.EmployeeID, today, attendance.DailyTotals{}, true)
	} else {
		records, err := s.records.ListRecords(ctx, attendance.RecordFilter{EmployeeID: req.EmployeeID, From: today, To: today})
		if err != nil {
			slog.WarnContext(ctx, "Failed to refetch attendance after action", "employee_id", req.EmployeeID, "error", err)
			resp.Degraded = true
		}
		resp.Status = attendance.ResolveStatus(sessions, attendance.RecordOn(records, req.EmployeeID, today), req.EmployeeID)
		resp.Today = toDailyTotalsResponse(req.EmployeeID, today, attendance.AggregateDaily(sessions, req.EmployeeID, today), false)
	}
	resp.StatusLabel = statusLabel(ctx, resp.Status)

	s.publish(ctx, attendance.StatusEvent{
		EmployeeID: req.EmployeeID,
		Action:     req.Action,
		Status:     resp.Status,
		Date:       today,
		At:         now.In(s.loc).Format(time.RFC3339),
	})

	slog.InfoContext(ctx, "Attendance action forwarded", "employee_id", req.EmployeeID, "action", req.Action, "status", resp.Status)
	return resp, nil
}

func (s *AttendanceServiceImpl) publish(ctx context.Context, event attendance.StatusEvent) {
	if s.hub == nil {
		return
	}
	id, ok := session.FromContext(ctx)
	if !ok || id.Tenant() == "" {
		return
	}
	s.hub.Publish(id.Tenant(), EventStatusChanged, event)
}

// expectedStatus is the status an action leads to, used when the refetch fails.
func expectedStatus(action attendance.Action) attendance.Status {
	switch action {
	case attendance.ActionClockIn, attendance.ActionBreakEnd:
		return attendance.StatusClockedIn
	case attendance.ActionBreakStart:
		return attendance.StatusOnBreak
	default:
		return attendance.StatusClockedOut
	}
}
