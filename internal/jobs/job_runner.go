package jobs

import (
	"locmaq-backend/internal/config"
	"locmaq-backend/internal/logger"
	"locmaq-backend/internal/repository"
)

// JobRunner coordinates all scheduled sweeps
type JobRunner struct {
	quoteRepo repository.QuoteRepository
	noteRepo  repository.NotificationRepository
	retryRepo repository.RetryRepository
	batches   repository.BatchWriter
	config    *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(
	quoteRepo repository.QuoteRepository,
	noteRepo repository.NotificationRepository,
	retryRepo repository.RetryRepository,
	batches repository.BatchWriter,
	cfg *config.Config,
) *JobRunner {
	return &JobRunner{
		quoteRepo: quoteRepo,
		noteRepo:  noteRepo,
		retryRepo: retryRepo,
		batches:   batches,
		config:    cfg,
	}
}

// Config exposes the loaded configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
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

// RunAllSweeps runs every sweep once (for manual execution)
func (jr *JobRunner) RunAllSweeps() {
	jr.RunRetrySweep()
	jr.RunCleanupSweep()
}
