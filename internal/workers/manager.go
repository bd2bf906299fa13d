package workers

import (
	"context"
	"fmt"
	"sync"

	"github.com/alimgiray/timecard/internal/repositories"
	"github.com/alimgiray/timecard/internal/services"
	"github.com/alimgiray/timecard/pkg/logger"
)

// WorkerManager manages the background workers
type WorkerManager struct {
	workers       []Worker
	jobRepo       *repositories.JobRepository
	reportService *services.ReportService
	reportDir     string
	wg            sync.WaitGroup
	ctx           context.Context
	cancel        context.CancelFunc
}

// NewWorkerManager creates a new worker manager
func NewWorkerManager(jobRepo *repositories.JobRepository, reportService *services.ReportService, reportDir string) *WorkerManager {
	ctx, cancel := context.WithCancel(context.Background())
	return &WorkerManager{
		workers:       make([]Worker, 0),
		jobRepo:       jobRepo,
		reportService: reportService,
		reportDir:     reportDir,
		ctx:           ctx,
		cancel:        cancel,
	}
}

// StartAll starts reportWorkers report workers
func (wm *WorkerManager) StartAll(reportWorkers int) error {
	if reportWorkers < 1 {
		logger.Warnf("Invalid report worker count %d, using 1", reportWorkers)
		reportWorkers = 1
	}

	for i := 0; i < reportWorkers; i++ {
		worker := NewReportWorker(fmt.Sprintf("report-%d", i+1), wm.jobRepo, wm.reportService, wm.reportDir)
		wm.workers = append(wm.workers, worker)
		wm.startWorker(worker)
	}

	logger.Infof("Started %d total workers", len(wm.workers))
	return nil
}

// StopAll gracefully stops all workers
func (wm *WorkerManager) StopAll() error {
	logger.Info("Stopping all workers...")

	// Cancel the context to signal all workers to stop
	wm.cancel()

	for _, worker := range wm.workers {
		if err := worker.Stop(); err != nil {
			logger.Errorf("Error stopping worker %s: %v", worker.GetWorkerID(), err)
		}
	}

	wm.wg.Wait()

	logger.Info("All workers stopped")
	return nil
}

// startWorker starts a single worker in a goroutine
func (wm *WorkerManager) startWorker(worker Worker) {
	wm.wg.Add(1)
	go func() {
		defer wm.wg.Done()
		if err := worker.Start(wm.ctx); err != nil && err != context.Canceled {
			logger.Errorf("Worker %s stopped with error: %v", worker.GetWorkerID(), err)
		}
	}()
}

// GetWorkerStatus returns whether each worker is running
func (wm *WorkerManager) GetWorkerStatus() map[string]bool {
	status := make(map[string]bool)
	for _, worker := range wm.workers {
		status[worker.GetWorkerID()] = worker.IsRunning()
	}
	return status
}
