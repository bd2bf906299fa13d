package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alimgiray/timecard/internal/domain/workinghours"
	"github.com/alimgiray/timecard/internal/models"
	"github.com/alimgiray/timecard/internal/repositories"
	"github.com/alimgiray/timecard/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type AttendanceService struct {
	employeeRepo   *repositories.EmployeeRepository
	attendanceRepo *repositories.AttendanceRepository
	clock          workinghours.TimeSource
	adjustment     workinghours.AdjustmentRange
}

func NewAttendanceService(
	employeeRepo *repositories.EmployeeRepository,
	attendanceRepo *repositories.AttendanceRepository,
	clock workinghours.TimeSource,
	adjustment workinghours.AdjustmentRange,
) *AttendanceService {
	return &AttendanceService{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		clock:          clock,
		adjustment:     adjustment,
	}
}

// ClockIn records the opening time of today's session
func (s *AttendanceService) ClockIn(employeeID string) (*models.AttendanceRecord, error) {
	if err := s.requireEmployee(employeeID); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	workDate := now.Format(models.WorkDateLayout)

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(employeeID, workDate)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyClockedIn
	}

	opening := workinghours.RecordOpeningTime(workinghours.FixedTime(now))
	record := models.NewAttendanceRecord(employeeID, workDate, opening.Value().Storage())
	if err := s.attendanceRepo.Create(record); err != nil {
		// a concurrent clock-in won the insert
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrAlreadyClockedIn
		}
		return nil, err
	}

	logger.WithEmployee(employeeID).WithFields(logrus.Fields{
		"work_date": workDate,
		"opening":   opening.String(),
	}).Info("Clocked in")

	return record, nil
}

// ClockOut records the closing time of today's session and derives its working hours.
// An empty remoteAdjustment means no adjustment.
func (s *AttendanceService) ClockOut(employeeID, remoteAdjustment string) (*models.AttendanceRecord, error) {
	if err := s.requireEmployee(employeeID); err != nil {
		return nil, err
	}

	adjustment, err := s.parseAdjustment(remoteAdjustment)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	workDate := now.Format(models.WorkDateLayout)
	record, err := s.attendanceRepo.GetByEmployeeAndDate(employeeID, workDate)
	if err != nil {
		return nil, err
	}
	if record == nil || !record.IsOpen() {
		return nil, ErrNotClockedIn
	}

	opening, err := workinghours.ReconstructOpeningTime(record.OpeningTime)
	if err != nil {
		return nil, err
	}
	closing := workinghours.RecordClosingTime(workinghours.FixedTime(now))

	worked, err := workinghours.WorkingHoursFrom(opening, closing, adjustment)
	if err != nil {
		return nil, err
	}

	record.Close(closing.Value().Storage(), adjustment.Value().String(), worked.Value().String())
	if err := s.attendanceRepo.Update(record); err != nil {
		return nil, err
	}

	logger.WithEmployee(employeeID).WithFields(logrus.Fields{
		"work_date":     workDate,
		"closing":       closing.String(),
		"working_hours": worked.String(),
	}).Info("Clocked out")

	return record, nil
}

// RecordManual stores a complete session for a given date, replacing any existing record.
// Used for corrections and imports.
func (s *AttendanceService) RecordManual(employeeID, workDate, openingRaw, closingRaw, remoteAdjustment string) (*models.AttendanceRecord, error) {
	if err := s.requireEmployee(employeeID); err != nil {
		return nil, err
	}
	if _, err := parseWorkDate(workDate); err != nil {
		return nil, err
	}

	opening, err := workinghours.ReconstructOpeningTime(openingRaw)
	if err != nil {
		return nil, err
	}
	closing, err := workinghours.ReconstructClosingTime(closingRaw)
	if err != nil {
		return nil, err
	}
	adjustment, err := s.parseAdjustment(remoteAdjustment)
	if err != nil {
		return nil, err
	}

	worked, err := workinghours.WorkingHoursFrom(opening, closing, adjustment)
	if err != nil {
		return nil, err
	}

	record, err := s.attendanceRepo.GetByEmployeeAndDate(employeeID, workDate)
	if err != nil {
		return nil, err
	}

	isNew := record == nil
	if isNew {
		record = models.NewAttendanceRecord(employeeID, workDate, opening.Value().Storage())
	} else {
		record.OpeningTime = opening.Value().Storage()
	}
	record.Close(closing.Value().Storage(), adjustment.Value().String(), worked.Value().String())

	if isNew {
		err = s.attendanceRepo.Create(record)
	} else {
		err = s.attendanceRepo.Update(record)
	}
	if err != nil {
		return nil, err
	}

	logger.WithEmployee(employeeID).WithFields(logrus.Fields{
		"work_date":     workDate,
		"working_hours": worked.String(),
		"created":       isNew,
	}).Info("Recorded attendance manually")

	return record, nil
}

// GetRecord retrieves a single attendance record
func (s *AttendanceService) GetRecord(id string) (*models.AttendanceRecord, error) {
	record, err := s.attendanceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}
	return record, nil
}

// ListRecords returns an employee's records within an inclusive date range
func (s *AttendanceService) ListRecords(employeeID, from, to string) ([]*models.AttendanceRecord, error) {
	if err := s.requireEmployee(employeeID); err != nil {
		return nil, err
	}
	if err := validatePeriod(from, to); err != nil {
		return nil, err
	}
	return s.attendanceRepo.GetByEmployeeAndPeriod(employeeID, from, to)
}

// PeriodTotal adds up an employee's stored daily totals over an inclusive date range.
// Sessions that are still open do not count towards the total.
func (s *AttendanceService) PeriodTotal(employeeID, from, to string) (*models.PeriodSummary, error) {
	employee, err := s.getEmployee(employeeID)
	if err != nil {
		return nil, err
	}

	records, err := s.ListRecords(employeeID, from, to)
	if err != nil {
		return nil, err
	}

	summary, err := Summarize(records)
	if err != nil {
		return nil, err
	}
	summary.EmployeeID = employee.ID
	summary.EmployeeName = employee.Name
	summary.From = from
	summary.To = to
	return summary, nil
}

// Summarize accumulates the working hours of records
func Summarize(records []*models.AttendanceRecord) (*models.PeriodSummary, error) {
	summary := &models.PeriodSummary{Total: workinghours.ZeroWorkingHours()}
	for _, record := range records {
		if record.IsOpen() || record.WorkingHours == nil {
			summary.OpenDays++
			continue
		}
		daily, err := workinghours.ParseWorkingHours(*record.WorkingHours)
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", record.ID, err)
		}
		summary.Total = summary.Total.Add(daily)
		summary.Days++
	}
	return summary, nil
}

// View renders a record's times as "HH:MM" and its hours with two decimals
func (s *AttendanceService) View(record *models.AttendanceRecord) (*models.AttendanceView, error) {
	opening, err := workinghours.ReconstructOpeningTime(record.OpeningTime)
	if err != nil {
		return nil, err
	}
	// Stored adjustments were validated when recorded; the configured range may have changed since.
	adjustment, err := decimal.NewFromString(record.RemoteAdjustmentHours)
	if err != nil {
		return nil, fmt.Errorf("%w: stored remote adjustment %q is not a decimal",
			workinghours.ErrMalformedInput, record.RemoteAdjustmentHours)
	}

	view := &models.AttendanceView{
		ID:                    record.ID,
		EmployeeID:            record.EmployeeID,
		WorkDate:              record.WorkDate,
		OpeningTime:           opening.String(),
		RemoteAdjustmentHours: adjustment.StringFixed(2),
	}

	if record.ClosingTime != nil {
		closing, err := workinghours.ReconstructClosingTime(*record.ClosingTime)
		if err != nil {
			return nil, err
		}
		rendered := closing.String()
		view.ClosingTime = &rendered
	}
	if record.WorkingHours != nil {
		worked, err := workinghours.ParseWorkingHours(*record.WorkingHours)
		if err != nil {
			return nil, err
		}
		rendered := worked.String()
		view.WorkingHours = &rendered
	}

	return view, nil
}

func (s *AttendanceService) parseAdjustment(raw string) (workinghours.RemoteAdjustmentHours, error) {
	if strings.TrimSpace(raw) == "" {
		raw = "0"
	}
	return s.adjustment.Parse(raw)
}

func (s *AttendanceService) requireEmployee(employeeID string) error {
	_, err := s.getEmployee(employeeID)
	return err
}

func (s *AttendanceService) getEmployee(employeeID string) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetByID(employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}
	return employee, nil
}
