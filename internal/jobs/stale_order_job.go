package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// StaleOrderJob cancels pending orders that were never picked up by the
// kitchen. Runs every minute; each stale order goes through the regular
// cancellation flow, so its stock comes back and its lines are removed.
type StaleOrderJob struct {
	queryHandler  queries.GetStalePendingOrdersQueryHandler
	cancelHandler commands.CancelOrderCommandHandler
	ttl           time.Duration
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewStaleOrderJob creates a job that auto-cancels pending orders older
// than ttl.
func NewStaleOrderJob(
	queryHandler queries.GetStalePendingOrdersQueryHandler,
	cancelHandler commands.CancelOrderCommandHandler,
	ttl time.Duration,
	logger *slog.Logger,
) *StaleOrderJob {
	return &StaleOrderJob{
		queryHandler:  queryHandler,
		cancelHandler: cancelHandler,
		ttl:           ttl,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With("component", "stale_order_job"),
	}
}

// Start begins the stale order job to run every minute.
func (j *StaleOrderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		j.run(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Stale order job started (running every minute)", "ttl", j.ttl)
	return nil
}

// Stop stops the stale order job.
func (j *StaleOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order job stopped")
}

func (j *StaleOrderJob) run(ctx context.Context) {
	query, err := queries.NewGetStalePendingOrdersQuery(j.ttl)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale order job misconfigured", "error", err)
		return
	}

	staleOrders, err := j.queryHandler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to find stale orders", "error", err)
		return
	}

	for _, stale := range staleOrders {
		cmd, cmdErr := commands.NewCancelOrderCommand(stale.ID)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build cancel command",
				"order_id", stale.ID, "error", cmdErr)
			continue
		}

		if err = j.cancelHandler.Handle(ctx, cmd); err != nil {
			// A concurrent transition between the query and the cancel is
			// an expected race, not a failure.
			if errors.Is(err, order.ErrInvalidStatusTransition) {
				continue
			}
			j.logger.ErrorContext(ctx, "Failed to cancel stale order",
				"order_id", stale.ID, "error", err)
			continue
		}

		j.logger.InfoContext(ctx, "Cancelled stale pending order",
			"order_id", stale.ID, "created_at", stale.CreatedAt)
	}
}
