// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. It implements the repository pattern for the order
// aggregate, converting between the domain model and the relational
// "orders" / "order_items" tables.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database representation of an order header.
type OrderDTO struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerName  string         `gorm:"not null"`
	CustomerEmail string         ``
	CustomerPhone string         ``
	TableNumber   string         ``
	Notes         string         ``
	Status        string         `gorm:"index;not null"`
	TotalPrice    int64          `gorm:"not null"`
	Lines         []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO is the database representation of a single order line.
// Prices are stored in minor currency units.
type OrderLineDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index;not null"`
	ItemID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Quantity  int       `gorm:"not null"`
	UnitPrice int64     `gorm:"not null"`
	Notes     string    ``
}

// TableName overrides GORM's default naming convention to use "order_items".
func (OrderLineDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation,
// header and owned lines together.
func fromDomain(aggregate *order.Order) OrderDTO {
	details := aggregate.Details()
	lines := aggregate.Lines()

	lineDTOs := make([]OrderLineDTO, 0, len(lines))
	for _, line := range lines {
		lineDTOs = append(lineDTOs, OrderLineDTO{
			ID:        line.ID().Bytes(),
			OrderID:   aggregate.ID().Bytes(),
			ItemID:    line.ItemID().Bytes(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice().Cents(),
			Notes:     line.Notes(),
		})
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		CustomerName:  aggregate.CustomerName(),
		CustomerEmail: details.CustomerEmail,
		CustomerPhone: details.CustomerPhone,
		TableNumber:   details.TableNumber,
		Notes:         details.Notes,
		Status:        aggregate.Status().String(),
		TotalPrice:    aggregate.TotalPrice().Cents(),
		Lines:         lineDTOs,
	}
}

// toDomain converts a database DTO back to an order aggregate using
// RestoreOrder, re-establishing all aggregate invariants.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	totalPrice, err := kernel.NewMoneyFromCents(dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(id, dto.CustomerName, order.Details{
		CustomerEmail: dto.CustomerEmail,
		CustomerPhone: dto.CustomerPhone,
		TableNumber:   dto.TableNumber,
		Notes:         dto.Notes,
	}, status, lines, totalPrice)
}

func lineToDomain(dto OrderLineDTO) (order.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Line{}, err
	}

	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return order.Line{}, err
	}

	unitPrice, err := kernel.NewMoneyFromCents(dto.UnitPrice)
	if err != nil {
		return order.Line{}, err
	}

	return order.RestoreLine(id, itemID, dto.Quantity, unitPrice, dto.Notes)
}
