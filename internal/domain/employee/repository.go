package employee

import "context"

// EmployeeRepository reads employees from the HRMS backend. Returned employees
// are already normalized.
type EmployeeRepository interface {
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
}
