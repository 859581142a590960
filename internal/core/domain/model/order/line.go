package order

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through NewLine or RestoreLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine or RestoreLine")

// Line is an order line owned exclusively by its Order. It references a
// catalog item by id only; the unit price is a snapshot captured at order
// creation and is never re-read from the catalog, so later price changes do
// not alter historical orders.
//
// Invariants:
//   - quantity is positive
//   - subtotal == quantity × unitPrice, exactly
type Line struct {
	// id is the unique identifier for the line
	id kernel.UUID

	// itemID is a weak reference to the catalog item
	itemID kernel.UUID

	// quantity is the number of units ordered (must be positive)
	quantity int

	// unitPrice is the price snapshot taken at order creation
	unitPrice kernel.Money

	// subtotal is quantity × unitPrice
	subtotal kernel.Money

	// notes carries optional per-line free text
	notes string

	// isConstructed ensures the line was created via a constructor
	isConstructed bool
}

// NewLine creates a validated order line with a freshly generated id.
// The subtotal is computed here and never recomputed from catalog data.
//
// Returns an error if the item id is invalid or the quantity is not
// positive. A zero unit price is allowed (complimentary items).
func NewLine(itemID kernel.UUID, quantity int, unitPrice kernel.Money, notes string) (Line, error) {
	return RestoreLine(kernel.NewUUID(), itemID, quantity, unitPrice, notes)
}

// RestoreLine reconstructs a line from persistence. The subtotal is
// recomputed from quantity and unit price so that a corrupted stored
// subtotal cannot resurrect a violated invariant.
func RestoreLine(id, itemID kernel.UUID, quantity int, unitPrice kernel.Money, notes string) (Line, error) {
	line := Line{
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		line.setID(id),
		line.setItemID(itemID),
		line.setQuantityAndPrice(quantity, unitPrice),
	); err != nil {
		return Line{}, err
	}

	return line, nil
}

// Validate ensures the Line was created through a constructor.
func (l Line) Validate() error {
	if !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (l Line) ID() kernel.UUID {
	return l.id
}

// ItemID returns the referenced catalog item's identifier.
func (l Line) ItemID() kernel.UUID {
	return l.itemID
}

// Quantity returns the number of units ordered.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price snapshot captured at order creation.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Subtotal returns quantity × unit price.
func (l Line) Subtotal() kernel.Money {
	return l.subtotal
}

// Notes returns the optional free-text note for the line.
func (l Line) Notes() string {
	return l.notes
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	l.itemID = itemID
	return nil
}

func (l *Line) setQuantityAndPrice(quantity int, unitPrice kernel.Money) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	subtotal, err := unitPrice.MultiplyQuantity(quantity)
	if err != nil {
		return err
	}

	l.quantity = quantity
	l.unitPrice = unitPrice
	l.subtotal = subtotal
	return nil
}
