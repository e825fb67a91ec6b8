package hrms

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/cmlabs-hris/career-gateway-go/internal/config"
	"github.com/cmlabs-hris/career-gateway-go/internal/domain/attendance"
)

type recordRepositoryImpl struct {
	backend *Backend
}

func NewRecordRepository(backend *Backend) attendance.RecordRepository {
	return &recordRepositoryImpl{backend: backend}
}

// ListRecords implements attendance.RecordRepository.
func (r *recordRepositoryImpl) ListRecords(ctx context.Context, filter attendance.RecordFilter) ([]attendance.AttendanceRecord, error) {
	query := url.Values{}
	if filter.EmployeeID > 0 {
		query.Set("employee_id", strconv.FormatInt(filter.EmployeeID, 10))
	}
	if filter.From != "" {
		query.Set("start_date", filter.From)
	}
	if filter.To != "" {
		query.Set("end_date", filter.To)
	}

	payload, err := r.backend.read(ctx, config.ResourceAttendance, query)
	if err != nil {
		return nil, fmt.Errorf("list attendance records: %w", err)
	}

	records := attendance.NormalizeRecords(payload, r.backend.loc)
	if filter.EmployeeID > 0 {
		records = attendance.RecordsFor(records, filter.EmployeeID)
	}
	out := records[:0:0]
	for _, rec := range records {
		if filter.From != "" && rec.Date < filter.From {
			continue
		}
		if filter.To != "" && rec.Date > filter.To {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}
