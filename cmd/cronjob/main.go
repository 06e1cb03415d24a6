package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"inmogestion-backend/internal/config"
	"inmogestion-backend/internal/jobs"
	"inmogestion-backend/internal/logger"
	"inmogestion-backend/internal/repository"
	"inmogestion-backend/internal/repository/postgres"
	"inmogestion-backend/internal/repository/sheet"
	"inmogestion-backend/internal/rowstore"
	"inmogestion-backend/internal/scheduler"
	"inmogestion-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'send-visit-reminders', 'expire-stale-visits', 'all-daily')")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting InmoGestión cronjob runner...", "log_level", cfg.Log.Level)

	userRepo, listingRepo, visitRepo, closeStore, err := openStore(cfg)
	if err != nil {
		logger.Error("Failed to open datastore", "error", err)
		log.Fatalf("Failed to open datastore: %v", err)
	}
	defer closeStore()

	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.From, cfg.Email.FromName)
	jobRunner := jobs.NewJobRunner(userRepo, listingRepo, visitRepo, emailSvc, cfg)

	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "send-visit-reminders":
		jobRunner.SendVisitReminders()
	case "expire-stale-visits":
		jobRunner.ExpireStaleVisits()
	case "all-daily":
		jobRunner.RunAllDailyJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
	}
}

func openStore(cfg *config.Config) (repository.UserRepository, repository.ListingRepository, repository.VisitRepository, func(), error) {
	switch cfg.Persistence.Backend {
	case "postgres":
		logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
		db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
		if err != nil {
			return nil, nil, nil, nil, err
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, nil, nil, nil, err
		}
		store := postgres.NewStore(db)
		return store.UserRepository, store.ListingRepository, store.VisitRepository, func() { db.Close() }, nil

	default: // "rowstore"
		logger.Info("Opening row store", "path", cfg.Persistence.BoltPath)
		rs, err := rowstore.NewBoltStore(cfg.Persistence.BoltPath)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		store := sheet.NewStore(rs)
		return store.UserRepository, store.ListingRepository, store.VisitRepository, func() { rs.Close() }, nil
	}
}
