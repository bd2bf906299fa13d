package repositories

import (
	"database/sql"
	"fmt"

	"github.com/alimgiray/timecard/internal/models"
)

const attendanceColumns = `id, employee_id, work_date, opening_time, closing_time,
		       remote_adjustment_hours, working_hours, created_at, updated_at`

type AttendanceRepository struct {
	db *sql.DB
}

func NewAttendanceRepository(db *sql.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Create creates a new attendance record
func (r *AttendanceRepository) Create(record *models.AttendanceRecord) error {
	query := `
		INSERT INTO attendance_records (
			id, employee_id, work_date, opening_time, closing_time,
			remote_adjustment_hours, working_hours, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		record.ID, record.EmployeeID, record.WorkDate, record.OpeningTime, record.ClosingTime,
		record.RemoteAdjustmentHours, record.WorkingHours, record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		return wrapInsertError("attendance record", err)
	}
	return nil
}

// Update updates the times and totals of an attendance record
func (r *AttendanceRepository) Update(record *models.AttendanceRecord) error {
	query := `
		UPDATE attendance_records
		SET opening_time = ?, closing_time = ?, remote_adjustment_hours = ?,
		    working_hours = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.Exec(query,
		record.OpeningTime, record.ClosingTime, record.RemoteAdjustmentHours,
		record.WorkingHours, record.UpdatedAt, record.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating attendance record: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("no attendance record found with id %s", record.ID)
	}
	return nil
}

// GetByID retrieves an attendance record by ID, or nil if none exists
func (r *AttendanceRepository) GetByID(id string) (*models.AttendanceRecord, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE id = ?`
	return scanAttendanceRecord(r.db.QueryRow(query, id))
}

// GetByEmployeeAndDate retrieves the record of an employee on a work date, or nil if none exists
func (r *AttendanceRepository) GetByEmployeeAndDate(employeeID, workDate string) (*models.AttendanceRecord, error) {
	query := `SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = ? AND work_date = ?`
	return scanAttendanceRecord(r.db.QueryRow(query, employeeID, workDate))
}

// GetByEmployeeAndPeriod retrieves an employee's records with from <= work_date <= to
func (r *AttendanceRepository) GetByEmployeeAndPeriod(employeeID, from, to string) ([]*models.AttendanceRecord, error) {
	query := `SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = ? AND work_date >= ? AND work_date <= ?
		ORDER BY work_date`
	return r.query(query, employeeID, from, to)
}

// GetByPeriod retrieves all records with from <= work_date <= to
func (r *AttendanceRepository) GetByPeriod(from, to string) ([]*models.AttendanceRecord, error) {
	query := `SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE work_date >= ? AND work_date <= ?
		ORDER BY employee_id, work_date`
	return r.query(query, from, to)
}

// Delete deletes an attendance record
func (r *AttendanceRepository) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM attendance_records WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("error deleting attendance record: %w", err)
	}
	return nil
}

func (r *AttendanceRepository) query(query string, args ...interface{}) ([]*models.AttendanceRecord, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying attendance records: %w", err)
	}
	defer rows.Close()

	var records []*models.AttendanceRecord
	for rows.Next() {
		record, err := scanAttendanceRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAttendanceRecord(row rowScanner) (*models.AttendanceRecord, error) {
	record := &models.AttendanceRecord{}
	err := row.Scan(
		&record.ID, &record.EmployeeID, &record.WorkDate, &record.OpeningTime, &record.ClosingTime,
		&record.RemoteAdjustmentHours, &record.WorkingHours, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning attendance record: %w", err)
	}
	return record, nil
}
