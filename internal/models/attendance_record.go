package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkDateLayout is the storage layout of AttendanceRecord.WorkDate
const WorkDateLayout = "2006-01-02"

// AttendanceRecord holds the persisted raw values of one employee's work session on one day.
// The domain value objects are reconstructed from these fields.
type AttendanceRecord struct {
	ID                    string    `json:"id"`
	EmployeeID            string    `json:"employee_id"`
	WorkDate              string    `json:"work_date"`
	OpeningTime           string    `json:"opening_time"`
	ClosingTime           *string   `json:"closing_time"`
	RemoteAdjustmentHours string    `json:"remote_adjustment_hours"`
	WorkingHours          *string   `json:"working_hours"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// NewAttendanceRecord creates an open record (no closing yet) with a generated UUID
func NewAttendanceRecord(employeeID, workDate, openingTime string) *AttendanceRecord {
	now := time.Now()
	return &AttendanceRecord{
		ID:                    uuid.New().String(),
		EmployeeID:            employeeID,
		WorkDate:              workDate,
		OpeningTime:           openingTime,
		RemoteAdjustmentHours: "0",
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

// IsOpen checks if the employee has clocked in but not out
func (r *AttendanceRecord) IsOpen() bool {
	return r.ClosingTime == nil
}

// Close stores the closing values of the session
func (r *AttendanceRecord) Close(closingTime, remoteAdjustmentHours, workingHours string) {
	r.ClosingTime = &closingTime
	r.RemoteAdjustmentHours = remoteAdjustmentHours
	r.WorkingHours = &workingHours
	r.UpdatedAt = time.Now()
}
