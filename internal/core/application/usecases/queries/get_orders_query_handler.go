package queries

import (
	"context"

	"ordering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists order headers from the database, newest
// first. The line count is aggregated in SQL so the list never loads line
// rows.
//
// Example:
//
//	handler := NewGetOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, NewGetOrdersQuery())
//	if err != nil {
//	    log.Printf("Failed to list orders: %v", err)
//	    return err
//	}
//
//	fmt.Printf("%d orders\n", len(orders))
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query. With a status filter only matching orders are
// returned; either way results are sorted by creation time, newest first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT
			o.id,
			o.customer_name,
			o.table_number,
			o.status,
			o.total_price,
			COUNT(ol.id)
		FROM orders o
		LEFT JOIN order_items ol ON ol.order_id = o.id
	`
	args := make([]any, 0, 1)
	if status, ok := query.Status(); ok {
		stmt += ` WHERE o.status = ?`
		args = append(args, status.String())
	}
	stmt += `
		GROUP BY o.id, o.customer_name, o.table_number, o.status, o.total_price, o.created_at
		ORDER BY o.created_at DESC
	`

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetOrdersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.CustomerName,
			&resp.TableNumber,
			&resp.Status,
			&resp.TotalPriceCents,
			&resp.LineCount,
		)
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
