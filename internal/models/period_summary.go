package models

import "github.com/alimgiray/timecard/internal/domain/workinghours"

// PeriodSummary is the accumulated working hours of one employee over a date range
type PeriodSummary struct {
	EmployeeID   string
	EmployeeName string
	From         string
	To           string
	Days         int
	OpenDays     int
	Total        workinghours.WorkingHours
}

// AttendanceView is an attendance record rendered for presentation
type AttendanceView struct {
	ID                    string  `json:"id"`
	EmployeeID            string  `json:"employee_id"`
	WorkDate              string  `json:"work_date"`
	OpeningTime           string  `json:"opening_time"`
	ClosingTime           *string `json:"closing_time,omitempty"`
	RemoteAdjustmentHours string  `json:"remote_adjustment_hours"`
	WorkingHours          *string `json:"working_hours,omitempty"`
}
