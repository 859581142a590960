package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates:
// the header row plus the owned line rows.
type OrderRepository interface {
	// Add persists a new order aggregate, header and lines together.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its lines by identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatus applies a compare-and-swap status update: the write
	// succeeds only if the stored status still equals from. A stale or
	// missing row leaves storage unchanged and returns
	// order.ErrInvalidStatusTransition or a not-found error.
	UpdateStatus(ctx context.Context, id kernel.UUID, from, to order.Status) error

	// DeleteLines removes all line rows of an order. Used exclusively by
	// the cancellation compensating transaction, after stock restoration.
	DeleteLines(ctx context.Context, id kernel.UUID) error

	// GetAllInStatus retrieves all orders currently in the given status.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
