package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleOrderJob    *StaleOrderJob
	lowStockAlertJob *LowStockAlertJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the query and command handlers as dependencies to wire up the job
// execution.
func NewJobManager(
	staleOrdersHandler queries.GetStalePendingOrdersQueryHandler,
	cancelHandler commands.CancelOrderCommandHandler,
	lowStockHandler queries.GetLowStockItemsQueryHandler,
	staleOrderTTL time.Duration,
	lowStockThreshold int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleOrderJob:    NewStaleOrderJob(staleOrdersHandler, cancelHandler, staleOrderTTL, logger),
		lowStockAlertJob: NewLowStockAlertJob(lowStockHandler, lowStockThreshold, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleOrderJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale order job: %w", err)
	}

	if err := jm.lowStockAlertJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.staleOrderJob.Stop()
		return fmt.Errorf("failed to start low stock alert job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.lowStockAlertJob.Stop()
	jm.staleOrderJob.Stop()
}
