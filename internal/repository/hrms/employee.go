package hrms

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cmlabs-hris/career-gateway-go/internal/config"
	"github.com/cmlabs-hris/career-gateway-go/internal/domain/employee"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/coerce"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/upstream"
)

type employeeRepositoryImpl struct {
	backend *Backend
}

func NewEmployeeRepository(backend *Backend) employee.EmployeeRepository {
	return &employeeRepositoryImpl{backend: backend}
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	payload, err := r.backend.read(ctx, config.ResourceEmployees, nil)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return employee.NormalizeAll(payload), nil
}

// GetByID implements employee.EmployeeRepository. Deployments without a
// detail route are served from the list.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	payload, err := r.backend.readSub(ctx, config.ResourceEmployees, strconv.FormatInt(id, 10))
	if err == nil {
		if e := employee.Normalize(coerce.Single(payload, "employee")); e.ID == id {
			return e, nil
		}
	} else if !upstream.IsNotFound(err) {
		return employee.Employee{}, fmt.Errorf("get employee %d: %w", id, err)
	}

	all, err := r.List(ctx)
	if err != nil {
		return employee.Employee{}, err
	}
	for _, e := range all {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}
