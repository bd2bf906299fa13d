package workers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alimgiray/timecard/internal/models"
	"github.com/alimgiray/timecard/internal/repositories"
	"github.com/alimgiray/timecard/internal/services"
	"github.com/alimgiray/timecard/pkg/logger"
)

// ReportWorker renders queued report jobs into .xlsx files
type ReportWorker struct {
	*BaseWorker
	jobRepo       *repositories.JobRepository
	reportService *services.ReportService
	outputDir     string
	pollInterval  time.Duration
}

// NewReportWorker creates a new report worker
func NewReportWorker(workerID string, jobRepo *repositories.JobRepository, reportService *services.ReportService, outputDir string) *ReportWorker {
	return &ReportWorker{
		BaseWorker:    NewBaseWorker(workerID, models.JobTypeReport),
		jobRepo:       jobRepo,
		reportService: reportService,
		outputDir:     outputDir,
		pollInterval:  10 * time.Second,
	}
}

// Start begins the report worker process
func (w *ReportWorker) Start(ctx context.Context) error {
	w.setRunning(true)
	defer w.setRunning(false)
	logger.WithJob("", w.WorkerID).Info("Report worker started")

	for {
		select {
		case <-ctx.Done():
			logger.WithJob("", w.WorkerID).Info("Report worker stopping due to context cancellation")
			return ctx.Err()
		case <-w.StopChan:
			logger.WithJob("", w.WorkerID).Info("Report worker stopping")
			return nil
		default:
		}

		processed, err := w.ProcessNext()
		if err != nil {
			logger.WithJob("", w.WorkerID).WithError(err).Error("Error getting report job")
		}
		if processed {
			continue
		}

		// No jobs available, wait before polling again
		select {
		case <-ctx.Done():
		case <-w.StopChan:
		case <-time.After(w.pollInterval):
		}
	}
}

// ProcessNext claims and renders one pending report job. It reports whether a job was found.
func (w *ReportWorker) ProcessNext() (bool, error) {
	job, err := w.jobRepo.ClaimNextPendingJob(models.JobTypeReport, w.WorkerID)
	if err != nil {
		return false, err
	}
	if job == nil {
		return false, nil
	}

	log := logger.WithJob(job.ID, w.WorkerID)
	log.Info("Processing report job")

	path, err := w.render(job)
	if err != nil {
		log.WithError(err).Error("Report job failed")
		job.MarkFailed(err.Error())
	} else {
		log.WithField("path", path).Info("Report job completed")
		job.MarkCompleted(path)
	}

	if err := w.jobRepo.Update(job); err != nil {
		return true, fmt.Errorf("error updating job %s: %w", job.ID, err)
	}
	return true, nil
}

func (w *ReportWorker) render(job *models.Job) (string, error) {
	params, err := job.ReportParams()
	if err != nil {
		return "", fmt.Errorf("invalid report parameters: %w", err)
	}

	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return "", fmt.Errorf("error creating report directory: %w", err)
	}

	path := filepath.Join(w.outputDir, job.ID+".xlsx")
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("error creating report file: %w", err)
	}

	if err := w.reportService.WriteWorkbook(file, params.From, params.To); err != nil {
		file.Close()
		os.Remove(path)
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("error closing report file: %w", err)
	}

	return path, nil
}
