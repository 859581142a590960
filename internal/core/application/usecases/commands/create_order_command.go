package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// LineInput describes one requested order line: the referenced catalog
// item, the quantity, the unit-price snapshot in minor currency units, and
// an optional note. Validation happens when the command turns inputs into
// domain lines.
type LineInput struct {
	ItemID         kernel.UUID
	Quantity       int
	UnitPriceCents int64
	Notes          string
}

// CreateOrderCommand represents a request to place a new order: the
// required customer name, optional contact/table/notes details, and a
// non-empty list of lines.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), "Ada", order.Details{TableNumber: "12"}, lines)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerName string
	details      order.Details
	lines        []order.Line

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order. Validates
// the order id, the customer name, and every line (positive quantity,
// non-negative unit price, non-empty collection); invalid input never
// reaches a unit of work.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerName string,
	details order.Details,
	lines []LineInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerName(customerName),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerName returns the customer's display name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// Details returns the optional customer-facing attributes.
func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

// Lines returns the validated domain lines built from the input.
func (c CreateOrderCommand) Lines() []order.Line {
	lines := make([]order.Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}

	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setLines(inputs []LineInput) error {
	if len(inputs) == 0 {
		return order.ErrOrderHasNoLines
	}

	lines := make([]order.Line, 0, len(inputs))
	for _, input := range inputs {
		unitPrice, err := kernel.NewMoneyFromCents(input.UnitPriceCents)
		if err != nil {
			return err
		}

		line, err := order.NewLine(input.ItemID, input.Quantity, unitPrice, input.Notes)
		if err != nil {
			return err
		}

		lines = append(lines, line)
	}

	c.lines = lines
	return nil
}
