package kernel

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Money is a value object representing a monetary amount in minor currency
// units (cents). All arithmetic is exact integer arithmetic; binary floating
// point never enters currency computation.
//
// The zero value is a valid amount of zero cents, so Money can represent
// free items without a constructor guard. Negative amounts are rejected at
// construction and by every operation that could produce them.
//
// Example:
//
//	price, err := kernel.NewMoneyFromCents(1250) // 12.50
//	if err != nil {
//	    return err
//	}
//	subtotal, err := price.MultiplyQuantity(3) // 37.50
type Money struct {
	cents int64
}

// NewMoneyFromCents creates a Money from an amount of minor units.
// Returns an error if the amount is negative.
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount",
			fmt.Errorf("%d cents is negative", cents))
	}
	return Money{cents: cents}, nil
}

// Cents returns the amount in minor currency units.
func (m Money) Cents() int64 {
	return m.cents
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// MultiplyQuantity returns the amount multiplied by an item quantity.
// Returns an error if the quantity is not positive.
func (m Money) MultiplyQuantity(quantity int) (Money, error) {
	if quantity <= 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	return Money{cents: m.cents * int64(quantity)}, nil
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// IsZero reports whether the amount is zero cents.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// String formats the amount with two decimal places, e.g. "12.50".
// Implements fmt.Stringer for logging and display.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
