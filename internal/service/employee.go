package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"github.com/MoroniPereira/TIME-SHEET/internal/model"
)

// EmployeeService defines employee-management operations. The backend keeps
// two path prefixes (/employee for CRUD, /employees for status and filtered
// listings); both are part of the wire contract and preserved here.
type EmployeeService interface {
	// List returns all employees.
	List(ctx context.Context) ([]model.Employee, error)
	// Create registers a new employee.
	Create(ctx context.Context, in model.CreateEmployee) (model.Employee, error)
	// Update replaces an employee record.
	Update(ctx context.Context, in model.UpdateEmployee) (model.Employee, error)
	// Deactivate disables an employee. Records are never hard-deleted through
	// the API.
	Deactivate(ctx context.Context, id int64) error
	// ToggleStatus flips the active flag.
	ToggleStatus(ctx context.Context, id int64, active bool) (model.Employee, error)
	// ListByDepartment returns employees of one department.
	ListByDepartment(ctx context.Context, department string) ([]model.Employee, error)
	// ListActive returns employees with an active status.
	ListActive(ctx context.Context) ([]model.Employee, error)
	// ListInactive returns employees with an inactive status.
	ListInactive(ctx context.Context) ([]model.Employee, error)
}

type EmployeeServiceImpl struct {
	api Transport
	log *zap.Logger
}

// NewEmployeeService constructs the employee facade.
func NewEmployeeService(api Transport, log *zap.Logger) *EmployeeServiceImpl {
	if log == nil {
		log = zap.NewNop()
	}
	return &EmployeeServiceImpl{api: api, log: log}
}

func (s *EmployeeServiceImpl) List(ctx context.Context) ([]model.Employee, error) {
	var out []model.Employee
	if err := s.api.Get(ctx, "/employee", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, in model.CreateEmployee) (model.Employee, error) {
	if in.FullName == "" || in.Email == "" {
		return model.Employee{}, errors.New("validation: empty fullName/email")
	}
	var out model.Employee
	if err := s.api.Post(ctx, "/employee", in, &out); err != nil {
		s.log.Warn("create employee failed", zap.String("email", in.Email), zap.Error(err))
		return model.Employee{}, err
	}
	return out, nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, in model.UpdateEmployee) (model.Employee, error) {
	if in.ID <= 0 {
		return model.Employee{}, errors.New("validation: missing id")
	}
	var out model.Employee
	if err := s.api.Put(ctx, fmt.Sprintf("/employee/%d", in.ID), in, &out); err != nil {
		s.log.Warn("update employee failed", zap.Int64("id", in.ID), zap.Error(err))
		return model.Employee{}, err
	}
	return out, nil
}

func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, id int64) error {
	if id <= 0 {
		return errors.New("validation: missing id")
	}
	return s.api.Delete(ctx, fmt.Sprintf("/employee/%d", id), nil)
}

func (s *EmployeeServiceImpl) ToggleStatus(ctx context.Context, id int64, active bool) (model.Employee, error) {
	if id <= 0 {
		return model.Employee{}, errors.New("validation: missing id")
	}
	var out model.Employee
	body := map[string]bool{"active": active}
	if err := s.api.Patch(ctx, fmt.Sprintf("/employees/%d/status", id), body, &out); err != nil {
		s.log.Warn("toggle status failed", zap.Int64("id", id), zap.Bool("active", active), zap.Error(err))
		return model.Employee{}, err
	}
	return out, nil
}

func (s *EmployeeServiceImpl) ListByDepartment(ctx context.Context, department string) ([]model.Employee, error) {
	if department == "" {
		return nil, errors.New("validation: empty department")
	}
	var out []model.Employee
	path := "/employees?department=" + url.QueryEscape(department)
	if err := s.api.Get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *EmployeeServiceImpl) ListActive(ctx context.Context) ([]model.Employee, error) {
	return s.listByActive(ctx, true)
}

func (s *EmployeeServiceImpl) ListInactive(ctx context.Context) ([]model.Employee, error) {
	return s.listByActive(ctx, false)
}

func (s *EmployeeServiceImpl) listByActive(ctx context.Context, active bool) ([]model.Employee, error) {
	var out []model.Employee
	if err := s.api.Get(ctx, fmt.Sprintf("/employees?active=%t", active), &out); err != nil {
		return nil, err
	}
	return out, nil
}
