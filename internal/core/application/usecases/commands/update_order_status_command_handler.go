package commands

import (
	"context"
)

// UpdateOrderStatusCommandHandler applies simple lifecycle transitions
// (pending→processing, processing→completed). The persisted write is a
// compare-and-swap on the pre-transition status, so a concurrent transition
// observed between the read and the write makes this one fail with
// order.ErrInvalidStatusTransition instead of silently overwriting.
//
// Example:
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory)
//	cmd, _ := NewUpdateOrderStatusCommand(orderID, order.Processing)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    if errors.Is(err, order.ErrInvalidStatusTransition) {
//	        // lifecycle rule violated, stored state unchanged
//	    }
//	    return err
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
// Requires an OrderUoWFactory; stock is never touched on this path.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update command. The transition is validated
// against the order's current status by the domain state machine, then
// persisted with a compare-and-swap on that same status.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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
	if err = existing.TransitionTo(cmd.Target()); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, cmd.OrderID(), from, cmd.Target()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
