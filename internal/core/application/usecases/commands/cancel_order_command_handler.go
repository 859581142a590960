package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// CancelOrderCommandHandler cancels an order and compensates its stock
// reservations. Restoring stock, deleting the order's lines and flipping
// the status happen in one transaction, so a crash mid-cancel never leaves
// stock returned for an order that is still live. The status flip is a
// compare-and-swap on the status read at the start, which makes the
// restore-once guarantee hold even against a concurrent transition.
//
// Example:
//
//	handler := NewCancelOrderCommandHandler(uowFactory)
//	cmd, _ := NewCancelOrderCommand(orderID)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    if errors.Is(err, order.ErrInvalidStatusTransition) {
//	        // already completed or cancelled, nothing changed
//	    }
//	    return err
//	}
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// Requires a UoWFactory because cancellation writes both orders and items.
func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation. Stock is restored line by line in
// ascending item-id order, the line rows are deleted so a repeated cancel
// has nothing left to restore, and the status flip is guarded by the
// status the order had when it was read.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	from := existing.Status()
	lines := existing.Lines()
	if err = existing.Cancel(); err != nil {
		return err
	}

	itemRepo := uow.ItemRepository()
	for _, line := range sortedByItemID(lines) {
		if err = itemRepo.IncrementStock(ctx, line.ItemID(), line.Quantity()); err != nil {
			return err
		}
	}

	if err = orderRepo.DeleteLines(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, cmd.OrderID(), from, order.Cancelled); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
