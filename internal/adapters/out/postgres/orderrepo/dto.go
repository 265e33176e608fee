// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository side of the order aggregate,
// converting between the domain model and the relational representation.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/customer"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The customer snapshot and both addresses are denormalized into the orders
// row; line items live in their own table keyed by order id.
type OrderDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number string    `gorm:"uniqueIndex"`

	CustomerID      uuid.UUID  `gorm:"type:uuid;index"`
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	CustomerAddress AddressDTO `gorm:"embedded;embeddedPrefix:customer_address_"`

	Items []ItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`

	Subtotal    decimal.Decimal `gorm:"type:numeric(12,2)"`
	Tax         decimal.Decimal `gorm:"type:numeric(12,2)"`
	Shipping    decimal.Decimal `gorm:"type:numeric(12,2)"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(12,2)"`

	DeliveryAddress AddressDTO `gorm:"embedded;embeddedPrefix:delivery_address_"`

	PaymentMethod int
	Status        int `gorm:"index"`
	CreatedAt     time.Time
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents an address embedded within the orders table.
type AddressDTO struct {
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
}

// ItemDTO represents one order line item row. Position preserves the order
// in which the items were submitted.
type ItemDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Position  int
	ProductID uuid.UUID       `gorm:"type:uuid"`
	Name      string
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
	Quantity  int
	Images    pq.StringArray `gorm:"type:text[]"`
	Category  string
}

// TableName overrides GORM's default naming convention to use "order_items".
func (ItemDTO) TableName() string {
	return "order_items"
}

func addressFromDomain(address kernel.Address) AddressDTO {
	return AddressDTO{
		Street:     address.Street(),
		City:       address.City(),
		State:      address.State(),
		PostalCode: address.PostalCode(),
		Country:    address.Country(),
	}
}

func addressToDomain(dto AddressDTO) (kernel.Address, error) {
	return kernel.NewAddress(dto.Street, dto.City, dto.State, dto.PostalCode, dto.Country)
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.LineItems()))
	for position, item := range aggregate.LineItems() {
		items = append(items, ItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			Position:  position,
			ProductID: item.ProductID().Bytes(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice().Decimal(),
			Quantity:  item.Quantity(),
			Images:    pq.StringArray(item.Images()),
			Category:  item.Category(),
		})
	}

	snapshot := aggregate.Customer()

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		Number:          aggregate.Number().String(),
		CustomerID:      snapshot.ID().Bytes(),
		CustomerName:    snapshot.Name(),
		CustomerPhone:   snapshot.Phone(),
		CustomerEmail:   snapshot.Email(),
		CustomerAddress: addressFromDomain(snapshot.Address()),
		Items:           items,
		Subtotal:        aggregate.Subtotal().Decimal(),
		Tax:             aggregate.Tax().Decimal(),
		Shipping:        aggregate.Shipping().Decimal(),
		TotalAmount:     aggregate.TotalAmount().Decimal(),
		DeliveryAddress: addressFromDomain(aggregate.DeliveryAddress()),
		PaymentMethod:   int(aggregate.PaymentMethod()),
		Status:          int(aggregate.Status()),
		CreatedAt:       aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO back into an order aggregate. Financial
// figures are restored verbatim, never rederived from the line items.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	number, err := order.NumberFromString(dto.Number)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	customerAddress, err := addressToDomain(dto.CustomerAddress)
	if err != nil {
		return nil, err
	}

	snapshot, err := customer.NewSnapshot(
		customerID, dto.CustomerName, dto.CustomerPhone, dto.CustomerEmail, customerAddress,
	)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewLineItem(
			productID,
			itemDTO.Name,
			kernel.NewMoneyFromDecimal(itemDTO.UnitPrice),
			itemDTO.Quantity,
			[]string(itemDTO.Images),
			itemDTO.Category,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	deliveryAddress, err := addressToDomain(dto.DeliveryAddress)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		number,
		snapshot,
		items,
		kernel.NewMoneyFromDecimal(dto.Subtotal),
		kernel.NewMoneyFromDecimal(dto.Tax),
		kernel.NewMoneyFromDecimal(dto.Shipping),
		kernel.NewMoneyFromDecimal(dto.TotalAmount),
		deliveryAddress,
		order.PaymentMethod(dto.PaymentMethod),
		order.Status(dto.Status),
		dto.CreatedAt,
	)
}
