package services

import (
	"fmt"

	"github.com/alimgiray/timecard/internal/models"
	"github.com/alimgiray/timecard/internal/repositories"
)

const maxActiveReportJobs = 10

// JobService handles job creation and management
type JobService struct {
	jobRepo *repositories.JobRepository
}

// NewJobService creates a new job service
func NewJobService(jobRepo *repositories.JobRepository) *JobService {
	return &JobService{jobRepo: jobRepo}
}

// CreateReportJob queues a workbook export for an inclusive date range
func (s *JobService) CreateReportJob(from, to string) (*models.Job, error) {
	if err := validatePeriod(from, to); err != nil {
		return nil, err
	}

	active, err := s.jobRepo.CountActive(models.JobTypeReport)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing jobs: %w", err)
	}
	if active >= maxActiveReportJobs {
		return nil, ErrTooManyJobs
	}

	job, err := models.NewReportJob(from, to)
	if err != nil {
		return nil, err
	}
	if err := s.jobRepo.Create(job); err != nil {
		return nil, fmt.Errorf("failed to create report job: %w", err)
	}

	return job, nil
}

// GetJob retrieves a job by ID
func (s *JobService) GetJob(id string) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}
	return job, nil
}

// GetReportFile returns the output path of a completed report job
func (s *JobService) GetReportFile(id string) (string, error) {
	job, err := s.GetJob(id)
	if err != nil {
		return "", err
	}
	if !job.IsCompleted() || job.OutputPath == nil {
		return "", ErrReportNotReady
	}
	return *job.OutputPath, nil
}

// ListRecent returns the latest report jobs
func (s *JobService) ListRecent(limit int) ([]*models.Job, error) {
	return s.jobRepo.GetRecent(models.JobTypeReport, limit)
}
