package services

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/alimgiray/timecard/internal/domain/workinghours"
	"github.com/alimgiray/timecard/internal/models"
	"github.com/alimgiray/timecard/internal/repositories"
	"github.com/alimgiray/timecard/internal/testutil"
	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fixture struct {
	fake       clockwork.FakeClock
	location   *time.Location
	employees  *EmployeeService
	attendance *AttendanceService
	reports    *ReportService
	jobs       *JobService
}

// newFixture starts the clock at 09:00 Tokyo time on Monday 2024-04-01
func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.NewTestDB(t)
	tokyo, err := workinghours.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	fake := clockwork.NewFakeClockAt(time.Date(2024, time.April, 1, 9, 0, 0, 0, tokyo))

	employeeRepo := repositories.NewEmployeeRepository(db)
	attendanceRepo := repositories.NewAttendanceRepository(db)
	jobRepo := repositories.NewJobRepository(db)

	attendance := NewAttendanceService(employeeRepo, attendanceRepo, workinghours.NewClock(fake, tokyo), workinghours.DefaultAdjustmentRange)

	return &fixture{
		fake:       fake,
		location:   tokyo,
		employees:  NewEmployeeService(employeeRepo),
		attendance: attendance,
		reports:    NewReportService(employeeRepo, attendanceRepo, attendance),
		jobs:       NewJobService(jobRepo),
	}
}

func (f *fixture) employee(t *testing.T, name, email string) *models.Employee {
	t.Helper()
	e, err := f.employees.Create(name, email)
	require.NoError(t, err)
	return e
}

func TestEmployeeService(t *testing.T) {
	f := newFixture(t)

	alice := f.employee(t, "  Alice ", "Alice@Example.com")
	assert.Equal(t, "Alice", alice.Name)
	assert.Equal(t, "alice@example.com", alice.Email)

	_, err := f.employees.Create("Alice Again", "alice@example.com")
	assert.ErrorIs(t, err, ErrEmployeeExists)

	_, err = f.employees.Create("", "nobody@example.com")
	assert.ErrorIs(t, err, workinghours.ErrInvalidArgument)

	_, err = f.employees.Create("Nobody", "not-an-email")
	assert.ErrorIs(t, err, workinghours.ErrMalformedInput)

	_, err = f.employees.Get("not-a-uuid")
	assert.ErrorIs(t, err, ErrEmployeeNotFound)

	all, err := f.employees.List()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, f.employees.Delete(alice.ID))
	assert.ErrorIs(t, f.employees.Delete(alice.ID), ErrEmployeeNotFound)
}

func TestClockInAndOut(t *testing.T) {
	f := newFixture(t)
	alice := f.employee(t, "Alice", "alice@example.com")

	record, err := f.attendance.ClockIn(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-04-01", record.WorkDate)
	assert.True(t, record.IsOpen())

	_, err = f.attendance.ClockIn(alice.ID)
	assert.ErrorIs(t, err, ErrAlreadyClockedIn)

	f.fake.Advance(8*time.Hour + 30*time.Minute)

	closed, err := f.attendance.ClockOut(alice.ID, "0.5")
	require.NoError(t, err)
	assert.False(t, closed.IsOpen())

	view, err := f.attendance.View(closed)
	require.NoError(t, err)
	assert.Equal(t, "09:00", view.OpeningTime)
	require.NotNil(t, view.ClosingTime)
	assert.Equal(t, "17:30", *view.ClosingTime)
	assert.Equal(t, "0.50", view.RemoteAdjustmentHours)
	require.NotNil(t, view.WorkingHours)
	assert.Equal(t, "9.00", *view.WorkingHours)

	_, err = f.attendance.ClockOut(alice.ID, "")
	assert.ErrorIs(t, err, ErrNotClockedIn)
}

func TestConcurrentClockInsConflict(t *testing.T) {
	f := newFixture(t)
	alice := f.employee(t, "Alice", "alice@example.com")

	const attempts = 8
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.attendance.ClockIn(alice.ID)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, ErrAlreadyClockedIn)
	}
	assert.Equal(t, 1, succeeded)
}

func TestClockOutValidation(t *testing.T) {
	f := newFixture(t)
	alice := f.employee(t, "Alice", "alice@example.com")

	_, err := f.attendance.ClockOut(alice.ID, "")
	assert.ErrorIs(t, err, ErrNotClockedIn)

	_, err = f.attendance.ClockIn(alice.ID)
	require.NoError(t, err)

	_, err = f.attendance.ClockOut(alice.ID, "8.01")
	assert.ErrorIs(t, err, workinghours.ErrInvalidArgument)

	_, err = f.attendance.ClockOut(alice.ID, "lots")
	assert.ErrorIs(t, err, workinghours.ErrMalformedInput)

	// the failed attempts leave the session open
	f.fake.Advance(8 * time.Hour)
	closed, err := f.attendance.ClockOut(alice.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "8", *closed.WorkingHours)

	_, err = f.attendance.ClockIn("00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestClockOutAfterMidnightIsNotAnOpenSession(t *testing.T) {
	f := newFixture(t)
	alice := f.employee(t, "Alice", "alice@example.com")

	f.fake.Advance(14 * time.Hour) // 23:00
	_, err := f.attendance.ClockIn(alice.ID)
	require.NoError(t, err)

	f.fake.Advance(2 * time.Hour) // 01:00 next day
	_, err = f.attendance.ClockOut(alice.ID, "")
	assert.ErrorIs(t, err, ErrNotClockedIn)
}

func TestRecordManual(t *testing.T) {
	f := newFixture(t)
	alice := f.employee(t, "Alice", "alice@example.com")

	record, err := f.attendance.RecordManual(alice.ID, "2024-03-29", "09:00", "17:00", "0")
	require.NoError(t, err)
	assert.Equal(t, "8", *record.WorkingHours)

	updated, err := f.attendance.RecordManual(alice.ID, "2024-03-29", "10:00", "17:45", "1.5")
	require.NoError(t, err)
	assert.Equal(t, record.ID, updated.ID)

	stored, err := f.attendance.GetRecord(record.ID)
	require.NoError(t, err)
	view, err := f.attendance.View(stored)
	require.NoError(t, err)
	assert.Equal(t, "10:00", view.OpeningTime)
	assert.Equal(t, "9.25", *view.WorkingHours)

	tests := []struct {
		name    string
		date    string
		opening string
		closing string
		adjust  string
		wantErr error
	}{
		{"opening after closing", "2024-03-28", "10:00", "09:00", "0", workinghours.ErrInvalidArgument},
		{"adjustment out of range", "2024-03-28", "09:00", "17:00", "-0.01", workinghours.ErrInvalidArgument},
		{"bad opening", "2024-03-28", "nine", "17:00", "0", workinghours.ErrMalformedInput},
		{"bad closing", "2024-03-28", "09:00", "5pm", "0", workinghours.ErrMalformedInput},
		{"bad date", "28/03/2024", "09:00", "17:00", "0", workinghours.ErrMalformedInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.attendance.RecordManual(alice.ID, tt.date, tt.opening, tt.closing, tt.adjust)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err = f.attendance.GetRecord("missing")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestPeriodTotal(t *testing.T) {
	f := newFixture(t)
	alice := f.employee(t, "Alice", "alice@example.com")

	_, err := f.attendance.RecordManual(alice.ID, "2024-03-28", "09:00", "17:00", "0")
	require.NoError(t, err)
	_, err = f.attendance.RecordManual(alice.ID, "2024-03-29", "09:00", "17:30", "0.5")
	require.NoError(t, err)
	_, err = f.attendance.RecordManual(alice.ID, "2024-03-30", "10:00", "10:20", "0")
	require.NoError(t, err)
	_, err = f.attendance.ClockIn(alice.ID) // open on 2024-04-01
	require.NoError(t, err)

	summary, err := f.attendance.PeriodTotal(alice.ID, "2024-03-01", "2024-04-30")
	require.NoError(t, err)
	assert.Equal(t, "Alice", summary.EmployeeName)
	assert.Equal(t, 3, summary.Days)
	assert.Equal(t, 1, summary.OpenDays)
	// 8 + 9 + 1/3
	assert.Equal(t, "17.33", summary.Total.String())

	expected := decimal.NewFromInt(17).Add(decimal.NewFromInt(20).DivRound(decimal.NewFromInt(60), 16))
	assert.True(t, summary.Total.Value().Equal(expected), "got %s", summary.Total.Value())

	narrow, err := f.attendance.PeriodTotal(alice.ID, "2024-03-29", "2024-03-29")
	require.NoError(t, err)
	assert.Equal(t, "9.00", narrow.Total.String())

	_, err = f.attendance.PeriodTotal(alice.ID, "2024-04-30", "2024-03-01")
	assert.ErrorIs(t, err, workinghours.ErrInvalidArgument)
}

func TestCustomAdjustmentRange(t *testing.T) {
	f := newFixture(t)
	alice := f.employee(t, "Alice", "alice@example.com")

	narrow, err := workinghours.NewAdjustmentRange(decimal.Zero, decimal.NewFromInt(2))
	require.NoError(t, err)
	f.attendance.adjustment = narrow

	_, err = f.attendance.RecordManual(alice.ID, "2024-03-29", "09:00", "17:00", "3")
	assert.ErrorIs(t, err, workinghours.ErrInvalidArgument)

	_, err = f.attendance.RecordManual(alice.ID, "2024-03-29", "09:00", "17:00", "2")
	assert.NoError(t, err)
}

func TestNarrowedRangeKeepsStoredRecordsReadable(t *testing.T) {
	f := newFixture(t)
	alice := f.employee(t, "Alice", "alice@example.com")

	record, err := f.attendance.RecordManual(alice.ID, "2024-03-29", "09:00", "17:00", "6")
	require.NoError(t, err)

	narrow, err := workinghours.NewAdjustmentRange(decimal.Zero, decimal.NewFromInt(4))
	require.NoError(t, err)
	f.attendance.adjustment = narrow

	view, err := f.attendance.View(record)
	require.NoError(t, err)
	assert.Equal(t, "6.00", view.RemoteAdjustmentHours)
	assert.Equal(t, "14.00", *view.WorkingHours)

	total, err := f.attendance.PeriodTotal(alice.ID, "2024-03-01", "2024-03-31")
	require.NoError(t, err)
	assert.Equal(t, "14.00", total.Total.String())

	var buf bytes.Buffer
	require.NoError(t, f.reports.WriteWorkbook(&buf, "2024-03-01", "2024-03-31"))
	book, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer book.Close()
	adjustment, err := book.GetCellValue(recordsSheet, "E2")
	require.NoError(t, err)
	assert.Equal(t, "6.00", adjustment)

	// new input still has to fit the narrowed range
	_, err = f.attendance.RecordManual(alice.ID, "2024-03-29", "09:00", "17:00", "6")
	assert.ErrorIs(t, err, workinghours.ErrInvalidArgument)
}

func TestReportWorkbook(t *testing.T) {
	f := newFixture(t)
	alice := f.employee(t, "Alice", "alice@example.com")
	f.employee(t, "Bob", "bob@example.com")

	_, err := f.attendance.RecordManual(alice.ID, "2024-03-28", "09:00", "17:00", "0")
	require.NoError(t, err)
	_, err = f.attendance.RecordManual(alice.ID, "2024-03-29", "09:00", "17:45", "0")
	require.NoError(t, err)

	summaries, err := f.reports.BuildPeriodReport("2024-03-01", "2024-03-31")
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "16.75", summaries[0].Total.String())
	assert.Equal(t, "0.00", summaries[1].Total.String())

	var buf bytes.Buffer
	require.NoError(t, f.reports.WriteWorkbook(&buf, "2024-03-01", "2024-03-31"))

	book, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer book.Close()

	name, err := book.GetCellValue(summarySheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Alice", name)

	total, err := book.GetCellValue(summarySheet, "F2")
	require.NoError(t, err)
	assert.Equal(t, "16.75", total)

	rows, err := book.GetRows(recordsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Alice", "2024-03-29", "09:00", "17:45", "0.00", "8.75"}, rows[2])

	_, err = f.reports.BuildPeriodReport("2024-03-31", "2024-03-01")
	assert.ErrorIs(t, err, workinghours.ErrInvalidArgument)
}

func TestJobService(t *testing.T) {
	f := newFixture(t)

	job, err := f.jobs.CreateReportJob("2024-03-01", "2024-03-31")
	require.NoError(t, err)
	assert.True(t, job.IsPending())

	_, err = f.jobs.GetReportFile(job.ID)
	assert.ErrorIs(t, err, ErrReportNotReady)

	_, err = f.jobs.GetJob("missing")
	assert.ErrorIs(t, err, ErrJobNotFound)

	_, err = f.jobs.CreateReportJob("2024-03-31", "2024-03-01")
	assert.ErrorIs(t, err, workinghours.ErrInvalidArgument)

	for i := 1; i < maxActiveReportJobs; i++ {
		_, err := f.jobs.CreateReportJob("2024-03-01", "2024-03-31")
		require.NoError(t, err)
	}
	_, err = f.jobs.CreateReportJob("2024-03-01", "2024-03-31")
	assert.ErrorIs(t, err, ErrTooManyJobs)

	recent, err := f.jobs.ListRecent(5)
	require.NoError(t, err)
	assert.Len(t, recent, 5)
}

func TestSchedulerEnqueueMonthToDate(t *testing.T) {
	f := newFixture(t)
	f.fake.Advance(14 * 24 * time.Hour) // 2024-04-15

	scheduler := NewSchedulerService(f.jobs, f.fake, f.location, 23)
	job, err := scheduler.EnqueueMonthToDate()
	require.NoError(t, err)

	params, err := job.ReportParams()
	require.NoError(t, err)
	assert.Equal(t, "2024-04-01", params.From)
	assert.Equal(t, "2024-04-15", params.To)
}

func TestSchedulerStartStop(t *testing.T) {
	f := newFixture(t)

	bad := NewSchedulerService(f.jobs, f.fake, f.location, 24)
	assert.Error(t, bad.StartScheduler())

	scheduler := NewSchedulerService(f.jobs, f.fake, f.location, 23)
	require.NoError(t, scheduler.StartScheduler())
	assert.NoError(t, scheduler.StopScheduler())
}
