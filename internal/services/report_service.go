package services

import (
	"fmt"
	"io"

	"github.com/alimgiray/timecard/internal/models"
	"github.com/alimgiray/timecard/internal/repositories"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Summary"
	recordsSheet = "Records"
)

type ReportService struct {
	employeeRepo      *repositories.EmployeeRepository
	attendanceRepo    *repositories.AttendanceRepository
	attendanceService *AttendanceService
}

func NewReportService(
	employeeRepo *repositories.EmployeeRepository,
	attendanceRepo *repositories.AttendanceRepository,
	attendanceService *AttendanceService,
) *ReportService {
	return &ReportService{
		employeeRepo:      employeeRepo,
		attendanceRepo:    attendanceRepo,
		attendanceService: attendanceService,
	}
}

// BuildPeriodReport summarizes every employee's working hours over an inclusive date range.
// Employees without attendance in the period are listed with a zero total.
func (s *ReportService) BuildPeriodReport(from, to string) ([]*models.PeriodSummary, error) {
	if err := validatePeriod(from, to); err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.GetAll()
	if err != nil {
		return nil, err
	}
	records, err := s.attendanceRepo.GetByPeriod(from, to)
	if err != nil {
		return nil, err
	}

	byEmployee := make(map[string][]*models.AttendanceRecord)
	for _, record := range records {
		byEmployee[record.EmployeeID] = append(byEmployee[record.EmployeeID], record)
	}

	summaries := make([]*models.PeriodSummary, 0, len(employees))
	for _, employee := range employees {
		summary, err := Summarize(byEmployee[employee.ID])
		if err != nil {
			return nil, err
		}
		summary.EmployeeID = employee.ID
		summary.EmployeeName = employee.Name
		summary.From = from
		summary.To = to
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// WriteWorkbook renders the period report as an .xlsx workbook with a per-employee
// summary sheet and a sheet listing every record
func (s *ReportService) WriteWorkbook(w io.Writer, from, to string) error {
	summaries, err := s.BuildPeriodReport(from, to)
	if err != nil {
		return err
	}
	records, err := s.attendanceRepo.GetByPeriod(from, to)
	if err != nil {
		return err
	}

	names := make(map[string]string, len(summaries))
	for _, summary := range summaries {
		names[summary.EmployeeID] = summary.EmployeeName
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("error naming summary sheet: %w", err)
	}
	if _, err := f.NewSheet(recordsSheet); err != nil {
		return fmt.Errorf("error creating records sheet: %w", err)
	}

	if err := writeRow(f, summarySheet, 1, "Employee", "From", "To", "Days", "Open days", "Working hours"); err != nil {
		return err
	}
	for i, summary := range summaries {
		err := writeRow(f, summarySheet, i+2,
			summary.EmployeeName, summary.From, summary.To,
			summary.Days, summary.OpenDays, summary.Total.String(),
		)
		if err != nil {
			return err
		}
	}

	if err := writeRow(f, recordsSheet, 1, "Employee", "Date", "Opening", "Closing", "Remote adjustment", "Working hours"); err != nil {
		return err
	}
	for i, record := range records {
		view, err := s.attendanceService.View(record)
		if err != nil {
			return fmt.Errorf("error rendering record %s: %w", record.ID, err)
		}
		err = writeRow(f, recordsSheet, i+2,
			names[record.EmployeeID], view.WorkDate, view.OpeningTime,
			valueOrEmpty(view.ClosingTime), view.RemoteAdjustmentHours, valueOrEmpty(view.WorkingHours),
		)
		if err != nil {
			return err
		}
	}

	return f.Write(w)
}

func writeRow(f *excelize.File, sheet string, row int, values ...interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("error writing %s row %d: %w", sheet, row, err)
	}
	return nil
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
