package repositories

import (
	"database/sql"
	"fmt"

	"github.com/alimgiray/timecard/internal/models"
)

type EmployeeRepository struct {
	db *sql.DB
}

func NewEmployeeRepository(db *sql.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create creates a new employee
func (r *EmployeeRepository) Create(employee *models.Employee) error {
	query := `
		INSERT INTO employees (id, name, email, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query, employee.ID, employee.Name, employee.Email, employee.CreatedAt, employee.UpdatedAt)
	if err != nil {
		return wrapInsertError("employee", err)
	}
	return nil
}

// GetByID retrieves an employee by ID, or nil if none exists
func (r *EmployeeRepository) GetByID(id string) (*models.Employee, error) {
	query := `
		SELECT id, name, email, created_at, updated_at
		FROM employees WHERE id = ?
	`
	return r.scanOne(r.db.QueryRow(query, id))
}

// GetByEmail retrieves an employee by email, or nil if none exists
func (r *EmployeeRepository) GetByEmail(email string) (*models.Employee, error) {
	query := `
		SELECT id, name, email, created_at, updated_at
		FROM employees WHERE email = ?
	`
	return r.scanOne(r.db.QueryRow(query, email))
}

// GetAll retrieves all employees ordered by name
func (r *EmployeeRepository) GetAll() ([]*models.Employee, error) {
	query := `
		SELECT id, name, email, created_at, updated_at
		FROM employees
		ORDER BY name, email
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error listing employees: %w", err)
	}
	defer rows.Close()

	var employees []*models.Employee
	for rows.Next() {
		employee := &models.Employee{}
		if err := rows.Scan(&employee.ID, &employee.Name, &employee.Email, &employee.CreatedAt, &employee.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning employee: %w", err)
		}
		employees = append(employees, employee)
	}

	return employees, rows.Err()
}

// Delete deletes an employee and, through the foreign key, their attendance records
func (r *EmployeeRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("error deleting employee: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *EmployeeRepository) scanOne(row *sql.Row) (*models.Employee, error) {
	employee := &models.Employee{}
	err := row.Scan(&employee.ID, &employee.Name, &employee.Email, &employee.CreatedAt, &employee.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting employee: %w", err)
	}
	return employee, nil
}
