package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/career-gateway-go/internal/domain/attendance"
	"github.com/cmlabs-hris/career-gateway-go/internal/domain/employee"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/i18n"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/spreadsheet"
	"github.com/google/uuid"
)

// ExportHistory implements attendance.AttendanceService. Unlike the read
// operations it fails instead of exporting partial data.
func (s *AttendanceServiceImpl) ExportHistory(ctx context.Context, req attendance.HistoryRequest) (attendance.ExportResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ExportResponse{}, err
	}
	if s.files == nil {
		return attendance.ExportResponse{}, errors.New("file storage is not configured")
	}
	window := s.historyWindow(req)

	name := employee.UnknownName
	emp, err := s.employees.GetByID(ctx, req.EmployeeID)
	switch {
	case errors.Is(err, employee.ErrEmployeeNotFound):
		return attendance.ExportResponse{}, attendance.ErrEmployeeNotFound
	case err != nil:
		slog.WarnContext(ctx, "Failed to get employee for export", "employee_id", req.EmployeeID, "error", err)
	default:
		name = emp.Name
	}

	records, err := s.records.ListRecords(ctx, attendance.RecordFilter{EmployeeID: req.EmployeeID, From: window.From, To: window.To})
	if err != nil {
		return attendance.ExportResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}
	history := attendance.WindowHistory(attendance.RecordsFor(records, req.EmployeeID), window)

	table := spreadsheet.Table{
		Title: i18n.T(ctx, "export.sheet_title", map[string]any{"Name": name}),
		Headers: []string{
			i18n.T(ctx, "export.date"),
			i18n.T(ctx, "export.status"),
			i18n.T(ctx, "export.check_in"),
			i18n.T(ctx, "export.check_out"),
			i18n.T(ctx, "export.notes"),
		},
		Widths: []float64{14, 16, 22, 22, 40},
	}
	for _, r := range history {
		table.Rows = append(table.Rows, []any{r.Date, recordLabel(ctx, r.Status), r.CheckIn, r.CheckOut, r.Notes})
	}

	buf, err := spreadsheet.Render(table)
	if err != nil {
		return attendance.ExportResponse{}, fmt.Errorf("failed to render export: %w", err)
	}

	fileName := fmt.Sprintf("attendance-%d-%s-%s.xlsx", req.EmployeeID, window.From, window.To)
	key, err := s.files.Save(ctx, buf, fmt.Sprintf("exports/attendance/%s/%s", uuid.NewString(), fileName))
	if err != nil {
		return attendance.ExportResponse{}, fmt.Errorf("failed to store export: %w", err)
	}

	return attendance.ExportResponse{
		FileName: fileName,
		URL:      s.files.URL(key),
		Rows:     len(history),
	}, nil
}
