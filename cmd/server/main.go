package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	httpapi "inmogestion-backend/internal/api/http"
	"inmogestion-backend/internal/config"
	"inmogestion-backend/internal/logger"
	"inmogestion-backend/internal/repository"
	"inmogestion-backend/internal/repository/postgres"
	"inmogestion-backend/internal/repository/sheet"
	"inmogestion-backend/internal/rowstore"
	"inmogestion-backend/internal/security"
	"inmogestion-backend/internal/service"
	"inmogestion-backend/internal/storage"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	flag.Parse()

	// .env is optional; real deployments set environment variables directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting InmoGestión backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Persistence configuration", "backend", cfg.Persistence.Backend)

	userRepo, listingRepo, visitRepo, closeStore, err := openStore(cfg)
	if err != nil {
		logger.Error("Failed to open datastore", "error", err)
		log.Fatalf("Failed to open datastore: %v", err)
	}
	defer closeStore()

	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	fileStore, err := storage.NewLocalStore(cfg.Storage.BaseURL, cfg.Storage.UploadDir, cfg.Storage.MaxFileSize<<20)
	if err != nil {
		logger.Error("Failed to initialize file storage", "error", err)
		log.Fatalf("Failed to initialize file storage: %v", err)
	}

	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.From, cfg.Email.FromName)
	authSvc := service.NewAuthService(userRepo, tokenManager, emailSvc)
	listingSvc := service.NewListingService(listingRepo)
	visitSvc := service.NewVisitService(visitRepo, listingRepo, userRepo, emailSvc)

	router := httpapi.NewRouter(tokenManager, authSvc, listingSvc, visitSvc, fileStore)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}

// openStore builds the repositories for the configured persistence backend.
func openStore(cfg *config.Config) (repository.UserRepository, repository.ListingRepository, repository.VisitRepository, func(), error) {
	switch cfg.Persistence.Backend {
	case "postgres":
		logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database)
		db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
		if err != nil {
			return nil, nil, nil, nil, err
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, nil, nil, nil, err
		}
		logger.Info("Database connection established")
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
