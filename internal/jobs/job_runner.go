package jobs

import (
	"inmogestion-backend/internal/config"
	"inmogestion-backend/internal/logger"
	"inmogestion-backend/internal/repository"
	"inmogestion-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs.
type JobRunner struct {
	userRepo    repository.UserRepository
	listingRepo repository.ListingRepository
	visitRepo   repository.VisitRepository
	email       service.EmailService
	config      *config.Config
}

func NewJobRunner(
	userRepo repository.UserRepository,
	listingRepo repository.ListingRepository,
	visitRepo repository.VisitRepository,
	email service.EmailService,
	cfg *config.Config,
) *JobRunner {
	return &JobRunner{
		userRepo:    userRepo,
		listingRepo: listingRepo,
		visitRepo:   visitRepo,
		email:       email,
		config:      cfg,
	}
}

// Config exposes the loaded configuration for schedule registration.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery so a bad record
// cannot take the scheduler down.
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllDailyJobs runs every daily job in sequence, for manual execution.
func (jr *JobRunner) RunAllDailyJobs() {
	jr.SendVisitReminders()
	jr.ExpireStaleVisits()
}
