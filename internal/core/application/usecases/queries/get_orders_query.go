package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves order headers, newest first, optionally filtered
// by lifecycle status.
//
// Example:
//
//	query := NewGetOrdersQuery()                              // all orders
//	filtered, _ := NewGetOrdersQueryInStatus(order.Pending)   // pending only
//
//	handler := NewGetOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	_ = filtered
type GetOrdersQuery struct {
	status    order.Status
	hasFilter bool

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query that retrieves all orders.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewGetOrdersQueryInStatus creates a query restricted to one status.
func NewGetOrdersQueryInStatus(status order.Status) (GetOrdersQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		status:    status,
		hasFilter: true,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Status returns the status filter and whether one was set.
func (q GetOrdersQuery) Status() (order.Status, bool) {
	return q.status, q.hasFilter
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// GetOrdersQueryResponse represents one order header in the list read
// model. Line details are served by GetOrderQuery.
type GetOrdersQueryResponse struct {
	ID              kernel.UUID
	CustomerName    string
	TableNumber     string
	Status          string
	TotalPriceCents int64
	LineCount       int
}
