package services

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeExists   = errors.New("employee with this email already exists")
	ErrRecordNotFound   = errors.New("attendance record not found")
	ErrAlreadyClockedIn = errors.New("employee already clocked in today")
	ErrNotClockedIn     = errors.New("employee has no open attendance today")
	ErrJobNotFound      = errors.New("job not found")
	ErrReportNotReady   = errors.New("report is not ready")
	ErrTooManyJobs      = errors.New("too many report jobs are pending")
)
