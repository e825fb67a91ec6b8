package hrms

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/cmlabs-hris/career-gateway-go/internal/config"
	"github.com/cmlabs-hris/career-gateway-go/internal/domain/attendance"
)

type sessionRepositoryImpl struct {
	backend *Backend
}

func NewSessionRepository(backend *Backend) attendance.SessionRepository {
	return &sessionRepositoryImpl{backend: backend}
}

// ListSessions implements attendance.SessionRepository. Filters are sent as
// query parameters and applied again locally since not every deployment
// honours them.
func (r *sessionRepositoryImpl) ListSessions(ctx context.Context, filter attendance.SessionFilter) ([]attendance.TimeTrackingSession, error) {
	query := url.Values{}
	if filter.EmployeeID > 0 {
		query.Set("employee_id", strconv.FormatInt(filter.EmployeeID, 10))
	}
	if filter.Date != "" {
		query.Set("date", filter.Date)
	}

	payload, err := r.backend.read(ctx, config.ResourceSessions, query)
	if err != nil {
		return nil, fmt.Errorf("list time-tracking sessions: %w", err)
	}

	sessions := attendance.NormalizeSessions(payload, r.backend.loc)
	out := sessions[:0]
	for _, s := range sessions {
		if filter.EmployeeID > 0 && s.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Date != "" && s.Date != filter.Date {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

// PerformAction implements attendance.SessionRepository.
func (r *sessionRepositoryImpl) PerformAction(ctx context.Context, employeeID int64, action attendance.Action) error {
	body := map[string]any{"employee_id": employeeID}
	if err := r.backend.action(ctx, string(action), strconv.FormatInt(employeeID, 10), body); err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}
	return nil
}
