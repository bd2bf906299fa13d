package repositories

import (
	"database/sql"
	"sync"
	"time"

	"github.com/alimgiray/timecard/internal/models"
)

const jobColumns = `id, job_type, status, params, output_path, error_message, worker_id,
		       started_at, completed_at, created_at, updated_at`

// JobRepository handles database operations for jobs
type JobRepository struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

// Create creates a new job
func (r *JobRepository) Create(job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	query := `
		INSERT INTO jobs (id, job_type, status, params, output_path, error_message, worker_id,
		                  started_at, completed_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		job.ID,
		job.JobType,
		job.Status,
		job.Params,
		job.OutputPath,
		job.ErrorMessage,
		job.WorkerID,
		job.StartedAt,
		job.CompletedAt,
		job.CreatedAt,
		job.UpdatedAt,
	)
	return err
}

// GetByID retrieves a job by ID, or nil if none exists
func (r *JobRepository) GetByID(id string) (*models.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = ?`

	job, err := scanJob(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return job, err
}

// GetRecent retrieves the most recently created jobs of a type
func (r *JobRepository) GetRecent(jobType models.JobType, limit int) ([]*models.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := `SELECT ` + jobColumns + `
		FROM jobs
		WHERE job_type = ?
		ORDER BY created_at DESC
		LIMIT ?`

	rows, err := r.db.Query(query, jobType, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []*models.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// CountActive counts pending and in-progress jobs of a type
func (r *JobRepository) CountActive(jobType models.JobType) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int
	err := r.db.QueryRow(
		`SELECT COUNT(*) FROM jobs WHERE job_type = ? AND status IN (?, ?)`,
		jobType, models.JobStatusPending, models.JobStatusInProgress,
	).Scan(&count)
	return count, err
}

// ClaimNextPendingJob takes the oldest pending job of a type (FIFO) and marks it
// in-progress for workerID. Returns nil when no job is pending.
func (r *JobRepository) ClaimNextPendingJob(jobType models.JobType, workerID string) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Use a transaction to ensure atomicity
	tx, err := r.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	query := `SELECT ` + jobColumns + `
		FROM jobs
		WHERE status = ? AND job_type = ?
		ORDER BY created_at ASC
		LIMIT 1`

	job, err := scanJob(tx.QueryRow(query, models.JobStatusPending, jobType))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	job.MarkStarted(workerID)
	_, err = tx.Exec(`
		UPDATE jobs
		SET status = ?, worker_id = ?, started_at = ?, updated_at = ?
		WHERE id = ?
	`, job.Status, job.WorkerID, job.StartedAt, job.UpdatedAt, job.ID)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	return job, nil
}

// Update updates a job
func (r *JobRepository) Update(job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	query := `
		UPDATE jobs
		SET status = ?, params = ?, output_path = ?, error_message = ?, worker_id = ?,
		    started_at = ?, completed_at = ?, updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		job.Status,
		job.Params,
		job.OutputPath,
		job.ErrorMessage,
		job.WorkerID,
		job.StartedAt,
		job.CompletedAt,
		time.Now(),
		job.ID,
	)
	return err
}

func scanJob(row rowScanner) (*models.Job, error) {
	job := &models.Job{}
	err := row.Scan(
		&job.ID,
		&job.JobType,
		&job.Status,
		&job.Params,
		&job.OutputPath,
		&job.ErrorMessage,
		&job.WorkerID,
		&job.StartedAt,
		&job.CompletedAt,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return job, nil
}
