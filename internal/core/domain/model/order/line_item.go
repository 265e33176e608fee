package order

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	// ErrLineItemIsNotConstructed is returned when a LineItem was not created
	// through the NewLineItem constructor.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")
)

// LineItem is one product entry within an order: a product reference plus the
// display fields and the price/quantity pair the financial derivation runs on.
// Quantity must be at least 1 and the unit price must not be negative.
type LineItem struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	name      string
	unitPrice kernel.Money
	quantity  int
	images    []string
	category  string

	guard guard.ConstructorGuard
}

// NewLineItem creates a validated line item.
func NewLineItem(
	productID kernel.UUID,
	name string,
	unitPrice kernel.Money,
	quantity int,
	images []string,
	category string,
) (LineItem, error) {
	item := LineItem{
		images:   images,
		category: category,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setName(name),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate ensures the LineItem was created through NewLineItem.
func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductID returns the referenced product identifier.
func (i LineItem) ProductID() kernel.UUID {
	return i.productID
}

// Name returns the product display name captured into the order.
func (i LineItem) Name() string {
	return i.name
}

// UnitPrice returns the per-unit price.
func (i LineItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns the ordered quantity.
func (i LineItem) Quantity() int {
	return i.quantity
}

// Images returns the product image references captured into the order.
func (i LineItem) Images() []string {
	return i.images
}

// Category returns the product category captured into the order.
func (i LineItem) Category() string {
	return i.category
}

// Subtotal returns unit price multiplied by quantity.
func (i LineItem) Subtotal() kernel.Money {
	return i.unitPrice.Mul(i.quantity)
}

func (i *LineItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *LineItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("line item name")
	}
	i.name = name
	return nil
}

func (i *LineItem) setUnitPrice(unitPrice kernel.Money) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unit price",
			fmt.Errorf("%s is negative", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is less than 1", quantity))
	}
	i.quantity = quantity
	return nil
}
