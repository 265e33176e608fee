package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to create a new order for a
// customer. It carries the submitted line items, the delivery address, the
// requested payment method, and the wallet-payment flag that overrides it.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, items, address, order.PaymentCard, false)
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//	result, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID      kernel.UUID
	items           []order.LineItem
	deliveryAddress kernel.Address
	paymentMethod   order.PaymentMethod
	useWallet       bool

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the customer id, every line item, the delivery address and
// the payment method are well formed, and that at least one item is present.
func NewCreateOrderCommand(
	customerID kernel.UUID,
	items []order.LineItem,
	deliveryAddress kernel.Address,
	paymentMethod order.PaymentMethod,
	useWallet bool,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		useWallet: useWallet,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setItems(items),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setPaymentMethod(paymentMethod),
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

// CustomerID returns the id of the customer placing the order.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// LineItems returns the submitted line items.
func (c CreateOrderCommand) LineItems() []order.LineItem {
	return c.items
}

// DeliveryAddress returns the delivery destination.
func (c CreateOrderCommand) DeliveryAddress() kernel.Address {
	return c.deliveryAddress
}

// PaymentMethod returns the payment method as submitted by the client.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// UseWallet reports whether the wallet-payment flag was set. When true the
// handler forces the wallet payment method regardless of the submitted value.
func (c CreateOrderCommand) UseWallet() bool {
	return c.useWallet
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.LineItem) error {
	if len(items) == 0 {
		return order.ErrNoLineItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	c.items = items
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(deliveryAddress kernel.Address) error {
	if err := deliveryAddress.Validate(); err != nil {
		return err
	}
	c.deliveryAddress = deliveryAddress
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(paymentMethod order.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}
	c.paymentMethod = paymentMethod
	return nil
}
