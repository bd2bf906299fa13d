package services

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/alimgiray/timecard/internal/domain/workinghours"
	"github.com/alimgiray/timecard/internal/models"
	"github.com/alimgiray/timecard/internal/repositories"
	"github.com/google/uuid"
)

type EmployeeService struct {
	employeeRepo *repositories.EmployeeRepository
}

func NewEmployeeService(employeeRepo *repositories.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo}
}

// Create registers a new employee
func (s *EmployeeService) Create(name, email string) (*models.Employee, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return nil, fmt.Errorf("%w: name is required", workinghours.ErrInvalidArgument)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email %q", workinghours.ErrMalformedInput, email)
	}

	existing, err := s.employeeRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmployeeExists
	}

	employee := models.NewEmployee(name, email)
	if err := s.employeeRepo.Create(employee); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrEmployeeExists
		}
		return nil, err
	}
	return employee, nil
}

// Get retrieves an employee by ID
func (s *EmployeeService) Get(id string) (*models.Employee, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrEmployeeNotFound
	}

	employee, err := s.employeeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}
	return employee, nil
}

// List returns every employee
func (s *EmployeeService) List() ([]*models.Employee, error) {
	return s.employeeRepo.GetAll()
}

// Delete removes an employee together with their attendance
func (s *EmployeeService) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.employeeRepo.Delete(id)
}
