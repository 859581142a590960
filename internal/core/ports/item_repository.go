package ports

import (
	"context"

	"ordering/internal/core/domain/model/item"
	"ordering/internal/core/domain/model/kernel"
)

// ItemRepository defines the persistence contract for catalog items as the
// ordering engine sees them: lookup plus atomic stock adjustment.
type ItemRepository interface {
	// Add persists a new catalog item.
	Add(ctx context.Context, aggregate *item.Item) error

	// Get retrieves an item by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*item.Item, error)

	// DecrementStock atomically reduces stock by quantity, but only if the
	// current stock is at least quantity. The check and the write are a
	// single conditional statement, never a read followed by a write, so
	// concurrent decrements against the same item cannot over-commit.
	// Returns item.ErrInsufficientStock if the condition failed.
	DecrementStock(ctx context.Context, id kernel.UUID, quantity int) error

	// IncrementStock unconditionally increases stock by quantity. Used by
	// the cancellation compensating transaction; the caller must invoke it
	// at most once per cancelled line.
	IncrementStock(ctx context.Context, id kernel.UUID, quantity int) error
}
