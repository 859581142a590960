package queries

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStalePendingOrdersQueryHandler finds pending orders whose creation
// time has fallen behind the configured age cutoff.
type GetStalePendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetStalePendingOrdersQueryHandler creates a handler for stale order
// queries. Requires a GORM database connection for query execution.
func NewGetStalePendingOrdersQueryHandler(db *gorm.DB) GetStalePendingOrdersQueryHandler {
	return GetStalePendingOrdersQueryHandler{db: db}
}

// Handle executes the query. The cutoff is computed against the clock at
// call time; oldest orders come first so repeated runs drain the backlog
// in age order.
func (h GetStalePendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetStalePendingOrdersQuery,
) ([]GetStalePendingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().Add(-query.OlderThan())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			created_at
		FROM orders
		WHERE status = ? AND created_at < ?
		ORDER BY created_at
	`, order.Pending.String(), cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetStalePendingOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetStalePendingOrdersQueryResponse
		var id uuid.UUID

		err = rows.Scan(&id, &resp.CreatedAt)
		if err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
