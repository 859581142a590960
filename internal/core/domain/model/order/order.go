package order

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderHasNoLines is returned when an order is created with an empty
	// line set.
	ErrOrderHasNoLines = errors.New("order must have at least one line")

	// ErrTotalPriceMismatch is returned when the supplied total does not
	// equal the sum of the line subtotals.
	ErrTotalPriceMismatch = errors.New("total price does not equal the sum of line subtotals")
)

// Details carries the optional customer-facing attributes of an order.
// Empty fields are simply omitted; none of them is validated beyond storage.
type Details struct {
	CustomerEmail string
	CustomerPhone string
	TableNumber   string
	Notes         string
}

// Order is the aggregate root for a customer's committed request. It owns
// its lines for their entire lifetime: lines are created with the order in
// one atomic operation and removed only by cancellation.
//
// Order maintains these invariants:
//   - customer name is present
//   - at least one line exists at creation
//   - totalPrice equals the exact sum of line subtotals
//   - status changes only through the lifecycle state machine
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerName is the required customer display name
	customerName string

	// details holds the optional contact/table/notes attributes
	details Details

	// status is the current state in the order lifecycle
	status Status

	// totalPrice is the computed order total, immutable after creation
	totalPrice kernel.Money

	// lines are the owned order lines
	lines []Line

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Pending status. This is the state
// machine's initial-state assignment; creation itself is not a transition.
//
// The caller supplies the computed total (see services.OrderPricer); the
// aggregate independently verifies it equals the exact sum of the line
// subtotals and rejects any mismatch.
func NewOrder(
	id kernel.UUID,
	customerName string,
	details Details,
	lines []Line,
	totalPrice kernel.Money,
) (*Order, error) {
	order := &Order{
		details:       details,
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerName(customerName),
		order.setLines(lines),
		order.setTotalPrice(totalPrice),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence with its stored
// status. A cancelled order legitimately has no lines (they are removed by
// the compensating transaction), so the non-empty line rule applies only to
// non-terminal states restored from storage.
func RestoreOrder(
	id kernel.UUID,
	customerName string,
	details Details,
	status Status,
	lines []Line,
	totalPrice kernel.Money,
) (*Order, error) {
	order := &Order{
		details:       details,
		isConstructed: true,
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	order.status = status

	if err := errors.Join(
		order.setID(id),
		order.setCustomerName(customerName),
	); err != nil {
		return nil, err
	}

	// A cancelled order legitimately has no lines left; the total check
	// then has nothing to verify against.
	if !(status == Cancelled && len(lines) == 0) {
		if err := order.setLines(lines); err != nil {
			return nil, err
		}
	}

	if err := order.setTotalPrice(totalPrice); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerName returns the customer's display name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Details returns the optional customer-facing attributes.
func (o *Order) Details() Details {
	return o.details
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// TotalPrice returns the computed order total.
func (o *Order) TotalPrice() kernel.Money {
	return o.totalPrice
}

// Lines returns the owned order lines. The returned slice is a copy so
// callers cannot mutate the aggregate's line set.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Process transitions the order from Pending to Processing.
func (o *Order) Process() error {
	return o.applyTransition(Processing)
}

// Complete transitions the order from Processing to Completed.
func (o *Order) Complete() error {
	return o.applyTransition(Completed)
}

// Cancel transitions the order to Cancelled and drops its lines from the
// aggregate. The caller is responsible for running this inside the
// compensating transaction that restores stock and removes the persisted
// line rows; Cancel only enforces the lifecycle rule.
func (o *Order) Cancel() error {
	if err := o.applyTransition(Cancelled); err != nil {
		return err
	}
	o.lines = nil
	return nil
}

// TransitionTo applies an arbitrary target status through the state
// machine. Used by the status-update path where the target arrives as
// external input.
func (o *Order) TransitionTo(target Status) error {
	if target == Cancelled {
		return o.Cancel()
	}
	return o.applyTransition(target)
}

func (o *Order) applyTransition(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = customerName
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return ErrOrderHasNoLines
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}

func (o *Order) setTotalPrice(totalPrice kernel.Money) error {
	if len(o.lines) > 0 {
		var sum kernel.Money
		for _, line := range o.lines {
			sum = sum.Add(line.Subtotal())
		}
		if !sum.IsEqual(totalPrice) {
			return fmt.Errorf("%w: lines sum to %s, got %s", ErrTotalPriceMismatch, sum, totalPrice)
		}
	}
	o.totalPrice = totalPrice
	return nil
}
