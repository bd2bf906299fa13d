package services

import (
	"fmt"
	"time"

	"github.com/alimgiray/timecard/internal/models"
	"github.com/alimgiray/timecard/pkg/logger"
	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
)

type SchedulerService struct {
	jobService *JobService
	clock      clockwork.Clock
	location   *time.Location
	hour       int
	scheduler  gocron.Scheduler
}

func NewSchedulerService(jobService *JobService, clock clockwork.Clock, location *time.Location, hour int) *SchedulerService {
	return &SchedulerService{
		jobService: jobService,
		clock:      clock,
		location:   location,
		hour:       hour,
	}
}

// StartScheduler queues a month-to-date report every day at the configured hour
func (s *SchedulerService) StartScheduler() error {
	if s.hour < 0 || s.hour > 23 {
		return fmt.Errorf("report hour must be between 0 and 23, got %d", s.hour)
	}

	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(s.location),
		gocron.WithClock(s.clock),
	)
	if err != nil {
		return fmt.Errorf("error creating scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(uint(s.hour), 0, 0))),
		gocron.NewTask(func() {
			if _, err := s.EnqueueMonthToDate(); err != nil {
				logger.WithError(err).Error("Error scheduling month-to-date report")
			}
		}),
		gocron.WithName("month-to-date-report"),
	)
	if err != nil {
		return fmt.Errorf("error registering report job: %w", err)
	}

	s.scheduler = scheduler
	s.scheduler.Start()
	logger.Infof("Report scheduler started, daily at %02d:00 %s", s.hour, s.location)
	return nil
}

// StopScheduler stops the scheduler if it is running
func (s *SchedulerService) StopScheduler() error {
	if s.scheduler == nil {
		return nil
	}
	return s.scheduler.Shutdown()
}

// EnqueueMonthToDate queues a report from the first of the current month up to today
func (s *SchedulerService) EnqueueMonthToDate() (*models.Job, error) {
	now := s.clock.Now().In(s.location)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.location)

	job, err := s.jobService.CreateReportJob(
		first.Format(models.WorkDateLayout),
		now.Format(models.WorkDateLayout),
	)
	if err != nil {
		return nil, err
	}

	logger.WithField("job_id", job.ID).Info("Scheduled month-to-date report")
	return job, nil
}
