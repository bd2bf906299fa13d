package repositories

import (
	"testing"
	"time"

	"github.com/alimgiray/timecard/internal/models"
	"github.com/alimgiray/timecard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeRepository(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewEmployeeRepository(db)

	alice := models.NewEmployee("Alice", "alice@example.com")
	bob := models.NewEmployee("Bob", "bob@example.com")
	require.NoError(t, repo.Create(alice))
	require.NoError(t, repo.Create(bob))

	t.Run("duplicate email is rejected", func(t *testing.T) {
		err := repo.Create(models.NewEmployee("Alice Two", "alice@example.com"))
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("get by id and email", func(t *testing.T) {
		got, err := repo.GetByID(alice.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Alice", got.Name)

		got, err = repo.GetByEmail("bob@example.com")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, bob.ID, got.ID)
	})

	t.Run("missing employee is nil", func(t *testing.T) {
		got, err := repo.GetByID("missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("list is ordered by name", func(t *testing.T) {
		all, err := repo.GetAll()
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "Alice", all[0].Name)
		assert.Equal(t, "Bob", all[1].Name)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(bob.ID))
		got, err := repo.GetByID(bob.ID)
		require.NoError(t, err)
		assert.Nil(t, got)

		assert.Error(t, repo.Delete(bob.ID))
	})
}

func TestAttendanceRepository(t *testing.T) {
	db := testutil.NewTestDB(t)
	employees := NewEmployeeRepository(db)
	repo := NewAttendanceRepository(db)

	employee := models.NewEmployee("Alice", "alice@example.com")
	require.NoError(t, employees.Create(employee))

	monday := models.NewAttendanceRecord(employee.ID, "2024-04-01", "09:00:00")
	require.NoError(t, repo.Create(monday))

	t.Run("one record per employee and day", func(t *testing.T) {
		dup := models.NewAttendanceRecord(employee.ID, "2024-04-01", "10:00:00")
		assert.ErrorIs(t, repo.Create(dup), ErrDuplicate)
	})

	t.Run("open record round trip", func(t *testing.T) {
		got, err := repo.GetByEmployeeAndDate(employee.ID, "2024-04-01")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, got.IsOpen())
		assert.Nil(t, got.WorkingHours)
		assert.Equal(t, "09:00:00", got.OpeningTime)
		assert.WithinDuration(t, monday.CreatedAt, got.CreatedAt, time.Second)
	})

	t.Run("close and update", func(t *testing.T) {
		monday.Close("17:30:00", "0.5", "9")
		require.NoError(t, repo.Update(monday))

		got, err := repo.GetByID(monday.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.False(t, got.IsOpen())
		assert.Equal(t, "17:30:00", *got.ClosingTime)
		assert.Equal(t, "0.5", got.RemoteAdjustmentHours)
		assert.Equal(t, "9", *got.WorkingHours)
	})

	t.Run("update of missing record fails", func(t *testing.T) {
		ghost := models.NewAttendanceRecord(employee.ID, "2024-04-09", "09:00:00")
		assert.Error(t, repo.Update(ghost))
	})

	t.Run("period queries are inclusive", func(t *testing.T) {
		require.NoError(t, repo.Create(models.NewAttendanceRecord(employee.ID, "2024-04-02", "09:00:00")))
		require.NoError(t, repo.Create(models.NewAttendanceRecord(employee.ID, "2024-05-01", "09:00:00")))

		records, err := repo.GetByEmployeeAndPeriod(employee.ID, "2024-04-01", "2024-04-30")
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "2024-04-01", records[0].WorkDate)
		assert.Equal(t, "2024-04-02", records[1].WorkDate)

		all, err := repo.GetByPeriod("2024-04-02", "2024-05-01")
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("records follow their employee on delete", func(t *testing.T) {
		require.NoError(t, employees.Delete(employee.ID))
		got, err := repo.GetByID(monday.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestJobRepository(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewJobRepository(db)

	first, err := models.NewReportJob("2024-04-01", "2024-04-30")
	require.NoError(t, err)
	require.NoError(t, repo.Create(first))

	second, err := models.NewReportJob("2024-05-01", "2024-05-31")
	require.NoError(t, err)
	second.CreatedAt = first.CreatedAt.Add(time.Second)
	require.NoError(t, repo.Create(second))

	active, err := repo.CountActive(models.JobTypeReport)
	require.NoError(t, err)
	assert.Equal(t, 2, active)

	claimed, err := repo.ClaimNextPendingJob(models.JobTypeReport, "report-1")
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, first.ID, claimed.ID)
	assert.True(t, claimed.IsInProgress())

	stored, err := repo.GetByID(first.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, models.JobStatusInProgress, stored.Status)
	require.NotNil(t, stored.WorkerID)
	assert.Equal(t, "report-1", *stored.WorkerID)

	claimed.MarkCompleted("/reports/a.xlsx")
	require.NoError(t, repo.Update(claimed))

	stored, err = repo.GetByID(first.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsCompleted())
	require.NotNil(t, stored.OutputPath)
	assert.Equal(t, "/reports/a.xlsx", *stored.OutputPath)

	next, err := repo.ClaimNextPendingJob(models.JobTypeReport, "report-2")
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, second.ID, next.ID)

	none, err := repo.ClaimNextPendingJob(models.JobTypeReport, "report-1")
	require.NoError(t, err)
	assert.Nil(t, none)

	recent, err := repo.GetRecent(models.JobTypeReport, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, second.ID, recent[0].ID)

	missing, err := repo.GetByID("missing")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
