package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"locmaq-backend/internal/config"
	"locmaq-backend/internal/jobs"
	"locmaq-backend/internal/logger"
	"locmaq-backend/internal/repository/postgres"
	"locmaq-backend/internal/scheduler"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific sweep once and exit (e.g., 'retry-sweep', 'cleanup-sweep', 'all')")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Locmaq Sweeper...", "log_level", cfg.Log.Level)

	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	jobRunner := jobs.NewJobRunner(
		store.QuoteRepository,
		store.NotificationRepository,
		store.RetryRepository,
		store,
		cfg,
	)

	if *runOnce != "" {
		logger.Info("Running sweep once", "sweep", *runOnce)
		runSweepOnce(jobRunner, *runOnce)
		logger.Info("Sweep execution completed", "sweep", *runOnce)
		return
	}

	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	logger.Info("Sweep scheduler is running. Press Ctrl+C to stop.")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down sweep scheduler...")
	cronScheduler.Stop()
	logger.Info("Sweep scheduler stopped. Goodbye!")
}

// runSweepOnce runs a specific sweep once and exits
func runSweepOnce(jobRunner *jobs.JobRunner, sweepName string) {
	switch sweepName {
	case "retry-sweep":
		jobRunner.RunRetrySweep()
	case "cleanup-sweep":
		jobRunner.RunCleanupSweep()
	case "all":
		jobRunner.RunAllSweeps()
	default:
		logger.Error("Unknown sweep name", "sweep", sweepName)
		fmt.Printf("Available sweeps:\n")
		fmt.Printf("  - retry-sweep\n")
		fmt.Printf("  - cleanup-sweep\n")
		fmt.Printf("  - all\n")
		os.Exit(1)
	}
}
