package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// JobType represents the type of job
type JobType string

const (
	JobTypeReport JobType = "report"
)

// JobStatus represents the status of a job
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusInProgress JobStatus = "in-progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// ReportParams is the period a report job covers
type ReportParams struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Job represents a background job
type Job struct {
	ID           string     `json:"id"`
	JobType      JobType    `json:"job_type"`
	Status       JobStatus  `json:"status"`
	Params       string     `json:"params"`
	OutputPath   *string    `json:"output_path"`
	ErrorMessage *string    `json:"error_message"`
	WorkerID     *string    `json:"worker_id"`
	StartedAt    *time.Time `json:"started_at"`
	CompletedAt  *time.Time `json:"completed_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// NewReportJob creates a pending report job for the given period
func NewReportJob(from, to string) (*Job, error) {
	params, err := json.Marshal(ReportParams{From: from, To: to})
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return &Job{
		ID:        uuid.New().String(),
		JobType:   JobTypeReport,
		Status:    JobStatusPending,
		Params:    string(params),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ReportParams decodes the period of a report job
func (j *Job) ReportParams() (ReportParams, error) {
	var p ReportParams
	err := json.Unmarshal([]byte(j.Params), &p)
	return p, err
}

// IsPending checks if the job is pending
func (j *Job) IsPending() bool {
	return j.Status == JobStatusPending
}

// IsInProgress checks if the job is in progress
func (j *Job) IsInProgress() bool {
	return j.Status == JobStatusInProgress
}

// IsCompleted checks if the job is completed
func (j *Job) IsCompleted() bool {
	return j.Status == JobStatusCompleted
}

// IsFailed checks if the job is failed
func (j *Job) IsFailed() bool {
	return j.Status == JobStatusFailed
}

// MarkStarted marks the job as started by workerID
func (j *Job) MarkStarted(workerID string) {
	now := time.Now()
	j.Status = JobStatusInProgress
	j.WorkerID = &workerID
	j.StartedAt = &now
	j.UpdatedAt = now
}

// MarkCompleted marks the job as completed with its output file
func (j *Job) MarkCompleted(outputPath string) {
	now := time.Now()
	j.Status = JobStatusCompleted
	j.OutputPath = &outputPath
	j.CompletedAt = &now
	j.UpdatedAt = now
}

// MarkFailed marks the job as failed
func (j *Job) MarkFailed(message string) {
	now := time.Now()
	j.Status = JobStatusFailed
	j.ErrorMessage = &message
	j.CompletedAt = &now
	j.UpdatedAt = now
}
