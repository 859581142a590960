package services

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// ErrNoLinesToPrice is returned when the line collection to price is empty.
// An order total is undefined without at least one line.
var ErrNoLinesToPrice = errors.New("no lines to price")

// OrderPricer is a domain service that computes an order total from its
// lines. Line subtotals are established at line construction (quantity ×
// unit-price snapshot); the pricer validates the collection and sums the
// subtotals with exact minor-unit arithmetic.
//
// The Order aggregate independently re-checks that the total it is given
// equals the sum of its line subtotals, so a pricing bug cannot persist a
// mismatched total.
//
// Example usage:
//
//	pricer := services.NewOrderPricer()
//	total, err := pricer.Total(lines)
//	if err != nil {
//	    return err
//	}
//	order, err := order.NewOrder(id, customerName, details, lines, total)
type OrderPricer struct{}

// NewOrderPricer creates a new OrderPricer instance.
func NewOrderPricer() OrderPricer {
	return OrderPricer{}
}

// Total validates the line collection and returns the exact sum of the line
// subtotals.
//
// Returns ErrNoLinesToPrice for an empty collection, or the line's own
// validation error if any line was not properly constructed.
func (OrderPricer) Total(lines []order.Line) (kernel.Money, error) {
	if len(lines) == 0 {
		return kernel.Money{}, ErrNoLinesToPrice
	}

	var total kernel.Money
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return kernel.Money{}, err
		}
		total = total.Add(line.Subtotal())
	}

	return total, nil
}
