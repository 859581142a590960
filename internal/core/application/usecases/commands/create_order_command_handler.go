package commands

import (
	"context"
	"sort"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order placement:
// total computation, the atomic write of the order header and its lines,
// and the per-line conditional stock decrements, all inside one unit of
// work. Any failure, including insufficient stock on the last line, rolls
// back the entire write set; no partial order is ever observable.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), "Ada", order.Details{}, lines)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    if errors.Is(err, item.ErrInsufficientStock) {
//	        // the whole order was rejected, stock untouched
//	    }
//	    return err
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	pricer     services.OrderPricer
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory spanning the order and item repositories.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricer:     services.NewOrderPricer(),
	}
}

// Handle processes the order placement command. The order is built in
// Pending status with its computed total, then persisted together with the
// stock decrements in one transaction. The triggering error of a failed
// line is returned to the caller unchanged after rollback.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	lines := cmd.Lines()

	totalPrice, err := h.pricer.Total(lines)
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.CustomerName(), cmd.Details(), lines, totalPrice)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	// Decrement in ascending item-id order so concurrent multi-line
	// orders touching the same items lock rows in the same sequence.
	itemRepo := uow.ItemRepository()
	for _, line := range sortedByItemID(lines) {
		if err = itemRepo.DecrementStock(ctx, line.ItemID(), line.Quantity()); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func sortedByItemID(lines []order.Line) []order.Line {
	sorted := make([]order.Line, len(lines))
	copy(sorted, lines)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ItemID().String() < sorted[j].ItemID().String()
	})
	return sorted
}
