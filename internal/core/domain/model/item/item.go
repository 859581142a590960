// Package item models the catalog item as seen by the ordering engine: an
// identifier, a display name, a unit price, and a mutable stock counter.
// Catalog management itself lives elsewhere; the engine only reads item
// data and adjusts stock inside transactional units of work.
package item

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not
	// created through NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

	// ErrInsufficientStock is the sentinel for a stock decrement whose
	// condition failed: the item did not hold enough stock at the instant
	// of the attempt. It aborts the enclosing unit of work.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Item is the engine's view of a catalog item. Stock is a single
// non-negative counter; the engine does not model reservations, lots, or
// multiple locations.
type Item struct {
	id    kernel.UUID
	name  string
	price kernel.Money
	stock int

	isConstructed bool
}

// NewItem creates a validated catalog item.
func NewItem(id kernel.UUID, name string, price kernel.Money, stock int) (*Item, error) {
	item := &Item{
		price:         price,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setStock(stock),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an item from persistence.
func RestoreItem(id kernel.UUID, name string, price kernel.Money, stock int) (*Item, error) {
	return NewItem(id, name, price, stock)
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Name returns the item's display name.
func (i *Item) Name() string {
	return i.name
}

// Price returns the item's current catalog price.
func (i *Item) Price() kernel.Money {
	return i.price
}

// Stock returns the current stock count.
func (i *Item) Stock() int {
	return i.stock
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock",
			fmt.Errorf("%d is negative", stock))
	}
	i.stock = stock
	return nil
}
