package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"hvz-backend/internal/config"
	"hvz-backend/internal/jobs"
	"hvz-backend/internal/logger"
	"hvz-backend/internal/repository/postgres"
	"hvz-backend/internal/scheduler"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.Bool("run-once", false, "Run all jobs once and exit")
	flag.Parse()

	// Load .env if present, then configuration
	_ = godotenv.Load()
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting HvZ Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection, retrying while the database comes up
	ctx := context.Background()
	_, err = backoff.Retry(ctx, func() (struct{}, error) {
		return struct{}{}, db.PingContext(ctx)
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxElapsedTime(30*time.Second))
	if err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize job runner
	store := postgres.NewStore(db)
	jobRunner := jobs.NewJobRunner(db, store, cfg)

	if *runOnce {
		jobRunner.RunAll()
		return
	}

	// Run as a daemon under the cron scheduler
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("Received shutdown signal", "signal", sig.String())
	sched.Stop()
}
