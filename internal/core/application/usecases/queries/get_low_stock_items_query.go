package queries

import (
	"errors"
	"math"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetLowStockItemsQueryIsNotConstructed = errors.New(
		"GetLowStockItemsQuery must be created via NewGetLowStockItemsQuery constructor",
	)
)

// GetLowStockItemsQuery retrieves catalog items whose stock has dropped to
// or below a threshold. The low-stock alert job uses it to surface items
// that need restocking.
type GetLowStockItemsQuery struct {
	threshold int

	guard guard.ConstructorGuard
}

// NewGetLowStockItemsQuery creates a query for items at or below the given
// stock threshold. The threshold must not be negative.
func NewGetLowStockItemsQuery(threshold int) (GetLowStockItemsQuery, error) {
	if threshold < 0 {
		return GetLowStockItemsQuery{}, errs.NewValueIsOutOfRangeError("threshold", threshold, 0, math.MaxInt)
	}

	return GetLowStockItemsQuery{
		threshold: threshold,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Threshold returns the inclusive stock threshold.
func (q GetLowStockItemsQuery) Threshold() int {
	return q.threshold
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetLowStockItemsQueryIsNotConstructed if validation fails.
func (q GetLowStockItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockItemsQueryIsNotConstructed)
}

// GetLowStockItemsQueryResponse represents one item running low on stock.
type GetLowStockItemsQueryResponse struct {
	ID    kernel.UUID
	Name  string
	Stock int
}
