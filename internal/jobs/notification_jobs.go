package jobs

import (
	"context"
	"errors"
	"time"

	"locmaq-backend/internal/domain"
	"locmaq-backend/internal/logger"
	"locmaq-backend/internal/service"
)

// SweepResult summarizes one sweep invocation for observability.
type SweepResult struct {
	Success   bool   `json:"success"`
	Processed int32  `json:"processed,omitempty"`
	Abandoned int32  `json:"abandoned,omitempty"`
	Cleaned   int32  `json:"cleaned,omitempty"`
	Error     string `json:"error,omitempty"`
}

// RunRetrySweep is the cron entry point for the notification retry sweep.
func (jr *JobRunner) RunRetrySweep() {
	jr.runWithRecovery("RetrySweep", func() {
		result := jr.RetrySweep(context.Background())
		if !result.Success {
			logger.Error("Retry sweep failed", "processed", result.Processed, "error", result.Error)
			return
		}
		logger.Info("Retry sweep finished", "processed", result.Processed, "abandoned", result.Abandoned)
	})
}

// RetrySweep reattempts notification writes recorded in the retry table.
//
// Records are processed strictly sequentially, in arrival order. Each record
// resolves to one of three outcomes: the quote is gone (retry deleted, no
// notification), the notification is synthesized from the quote's current
// status (insert plus retry delete, one unit), or the attempt fails (retry
// count incremented; the increment that reaches the ceiling moves the record
// to the dead-letter table instead). Units are committed in groups of at most
// BatchSize; a commit failure abandons the remainder of this invocation and
// the surviving records are re-selected next run.
func (jr *JobRunner) RetrySweep(ctx context.Context) SweepResult {
	records, err := jr.retryRepo.ListPending(ctx, domain.MaxNotificationRetries)
	if err != nil {
		return SweepResult{Error: err.Error()}
	}

	batchSize := jr.config.Sweep.BatchSize
	batch := jr.batches.NewBatch()
	var processed, abandoned int32

	for i := range records {
		rec := records[i]

		quote, err := jr.quoteRepo.GetByID(ctx, rec.QuoteID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			// Quote was removed; the notification is moot.
			batch.DeleteRetry(rec.ID)
		case err != nil:
			rec.RetryCount++
			rec.LastError = err.Error()
			now := time.Now()
			rec.LastRetry = &now
			if rec.RetryCount >= domain.MaxNotificationRetries {
				batch.MoveToDeadLetter(&rec)
				abandoned++
				logger.Warn("Notification retry abandoned",
					"retry_id", rec.ID, "quote_id", rec.QuoteID, "last_error", rec.LastError)
			} else {
				batch.UpdateRetry(&rec)
			}
		default:
			note := service.DeriveNotification(quote, quote.Status)
			batch.CreateNotification(note)
			batch.DeleteRetry(rec.ID)
		}

		processed++
		if processed%batchSize == 0 {
			if err := batch.Commit(ctx); err != nil {
				return SweepResult{Processed: processed, Abandoned: abandoned, Error: err.Error()}
			}
			batch = jr.batches.NewBatch()
		}
	}

	if err := batch.Commit(ctx); err != nil {
		return SweepResult{Processed: processed, Abandoned: abandoned, Error: err.Error()}
	}
	return SweepResult{Success: true, Processed: processed, Abandoned: abandoned}
}

// RunCleanupSweep is the cron entry point for the notification cleanup sweep.
func (jr *JobRunner) RunCleanupSweep() {
	jr.runWithRecovery("CleanupSweep", func() {
		result := jr.CleanupSweep(context.Background())
		if !result.Success {
			logger.Error("Cleanup sweep failed", "cleaned", result.Cleaned, "error", result.Error)
			return
		}
		logger.Info("Cleanup sweep finished", "cleaned", result.Cleaned)
	})
}

// CleanupSweep deletes notifications strictly older than the retention
// window. Age is the only criterion; read state is ignored.
func (jr *JobRunner) CleanupSweep(ctx context.Context) SweepResult {
	retention := time.Duration(jr.config.Sweep.RetentionDays) * 24 * time.Hour
	cutoff := time.Now().Add(-retention)

	ids, err := jr.noteRepo.ListIDsOlderThan(ctx, cutoff)
	if err != nil {
		return SweepResult{Error: err.Error()}
	}

	batchSize := jr.config.Sweep.BatchSize
	batch := jr.batches.NewBatch()
	var cleaned int32

	for _, id := range ids {
		batch.DeleteNotification(id)
		cleaned++
		if cleaned%batchSize == 0 {
			if err := batch.Commit(ctx); err != nil {
				return SweepResult{Cleaned: cleaned, Error: err.Error()}
			}
			batch = jr.batches.NewBatch()
		}
	}

	if err := batch.Commit(ctx); err != nil {
		return SweepResult{Cleaned: cleaned, Error: err.Error()}
	}
	return SweepResult{Success: true, Cleaned: cleaned}
}
