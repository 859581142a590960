// Package itemrepo provides persistence for catalog items: lookup plus the
// atomic stock adjustments the ordering engine relies on. The stock counter
// in the "items" table is the only fine-grained shared mutable resource in
// the system and is only ever mutated through this package, inside a unit
// of work.
package itemrepo

import (
	"ordering/internal/core/domain/model/item"
	"ordering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ItemDTO is the database representation of a catalog item. Price is stored
// in minor currency units; stock is a plain non-negative counter.
type ItemDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"not null"`
	Price int64     `gorm:"not null"`
	Stock int       `gorm:"not null"`
}

// TableName overrides GORM's default naming convention to use "items".
func (ItemDTO) TableName() string {
	return "items"
}

// fromDomain converts an item aggregate to its database representation.
func fromDomain(aggregate *item.Item) ItemDTO {
	return ItemDTO{
		ID:    aggregate.ID().Bytes(),
		Name:  aggregate.Name(),
		Price: aggregate.Price().Cents(),
		Stock: aggregate.Stock(),
	}
}

// toDomain converts a database DTO back to an item aggregate.
func toDomain(dto ItemDTO) (*item.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoneyFromCents(dto.Price)
	if err != nil {
		return nil, err
	}

	return item.RestoreItem(id, dto.Name, price, dto.Stock)
}
