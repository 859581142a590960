package jobs

import (
	"context"
	"log/slog"

	"ordering/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// LowStockAlertJob surfaces catalog items that are running out. Runs every
// minute and logs a warning per depleted item so operators can restock
// before orders start failing on insufficient stock.
type LowStockAlertJob struct {
	queryHandler queries.GetLowStockItemsQueryHandler
	threshold    int
	cron         *cron.Cron
	logger       *slog.Logger
}

// NewLowStockAlertJob creates a job that reports items at or below the
// given stock threshold.
func NewLowStockAlertJob(
	queryHandler queries.GetLowStockItemsQueryHandler,
	threshold int,
	logger *slog.Logger,
) *LowStockAlertJob {
	return &LowStockAlertJob{
		queryHandler: queryHandler,
		threshold:    threshold,
		cron:         cron.New(cron.WithSeconds()),
		logger:       logger.With("component", "low_stock_alert_job"),
	}
}

// Start begins the low stock alert job to run every minute.
func (j *LowStockAlertJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		j.run(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Low stock alert job started (running every minute)", "threshold", j.threshold)
	return nil
}

// Stop stops the low stock alert job.
func (j *LowStockAlertJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock alert job stopped")
}

func (j *LowStockAlertJob) run(ctx context.Context) {
	query, err := queries.NewGetLowStockItemsQuery(j.threshold)
	if err != nil {
		j.logger.ErrorContext(ctx, "Low stock alert job misconfigured", "error", err)
		return
	}

	items, err := j.queryHandler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to find low stock items", "error", err)
		return
	}

	for _, depleted := range items {
		j.logger.WarnContext(ctx, "Item is running low on stock",
			"item_id", depleted.ID, "name", depleted.Name, "stock", depleted.Stock)
	}
}
