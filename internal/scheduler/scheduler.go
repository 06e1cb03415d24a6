package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"inmogestion-backend/internal/jobs"
	"inmogestion-backend/internal/logger"
)

// Scheduler manages cron job scheduling.
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a scheduler with UTC timezone and seconds precision.
func NewScheduler(jobRunner *jobs.JobRunner) *Scheduler {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	s.registerJobs()
	return s
}

func (s *Scheduler) registerJobs() {
	cfg := s.jobs.Config().Scheduler

	_, err := s.cron.AddFunc(cfg.SendVisitReminders, s.jobs.SendVisitReminders)
	if err != nil {
		logger.Error("Failed to register SendVisitReminders job", "error", err)
	}

	_, err = s.cron.AddFunc(cfg.ExpireStaleVisits, s.jobs.ExpireStaleVisits)
	if err != nil {
		logger.Error("Failed to register ExpireStaleVisits job", "error", err)
	}
}

// Start begins the cron scheduler in its own goroutine.
func (s *Scheduler) Start() {
	logger.Info("Starting job scheduler")
	s.cron.Start()
}

// Stop halts the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	logger.Info("Stopping job scheduler")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Job scheduler stopped")
}
