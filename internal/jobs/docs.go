// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping the ordering service needs.
//
// # Available Jobs
//
// 1. StaleOrderJob - Runs every minute to cancel pending orders older than the configured TTL
// 2. LowStockAlertJob - Runs every minute to report items at or below the stock threshold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(staleOrdersHandler, cancelHandler, lowStockHandler,
//		30*time.Minute, 5, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Both jobs use the cron expression "0 * * * * *" which means they run at
// the start of every minute. Housekeeping has no real-time requirement.
//
// # Error Handling
//
//   - The stale order job ignores cancellation races: an order that moved to
//     processing between the query and the cancel is left alone
//   - The low stock alert job logs query failures and keeps running
//   - Failed job starts will stop any already running jobs
package jobs
