package queries

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetStalePendingOrdersQueryIsNotConstructed = errors.New(
		"GetStalePendingOrdersQuery must be created via NewGetStalePendingOrdersQuery constructor",
	)
)

// GetStalePendingOrdersQuery retrieves pending orders that were created
// longer than the given age ago. The auto-cancel job feeds these ids into
// the cancellation flow so abandoned orders release their stock.
type GetStalePendingOrdersQuery struct {
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewGetStalePendingOrdersQuery creates a query for pending orders older
// than the given duration. The duration must be positive.
func NewGetStalePendingOrdersQuery(olderThan time.Duration) (GetStalePendingOrdersQuery, error) {
	if olderThan <= 0 {
		return GetStalePendingOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("olderThan",
			fmt.Errorf("%s is not greater than 0", olderThan))
	}

	return GetStalePendingOrdersQuery{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// OlderThan returns the minimum age of the pending orders to retrieve.
func (q GetStalePendingOrdersQuery) OlderThan() time.Duration {
	return q.olderThan
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStalePendingOrdersQueryIsNotConstructed if validation fails.
func (q GetStalePendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStalePendingOrdersQueryIsNotConstructed)
}

// GetStalePendingOrdersQueryResponse identifies one stale pending order.
type GetStalePendingOrdersQueryResponse struct {
	ID        kernel.UUID
	CreatedAt time.Time
}
