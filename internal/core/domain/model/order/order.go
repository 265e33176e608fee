package order

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/customer"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrNoLineItems is returned when an order is created with an empty item list.
	ErrNoLineItems = errs.NewValueIsInvalidError("order must contain at least one line item")
)

// Order is the aggregate root for a customer purchase event.
//
// Invariants:
//   - The order number is assigned exactly once, before first persistence,
//     and never regenerated.
//   - The customer snapshot is captured at creation and never refreshed.
//   - Subtotal, tax, shipping and total are derived once from the line items
//     at creation; status changes never recompute them.
//   - Status moves are validated against the terminal set.
//   - Instances exist only via NewOrder (creation) or RestoreOrder (rehydration).
type Order struct {
	id              kernel.UUID
	number          Number
	customer        customer.Snapshot
	items           []LineItem
	subtotal        kernel.Money
	tax             kernel.Money
	shipping        kernel.Money
	total           kernel.Money
	deliveryAddress kernel.Address
	paymentMethod   PaymentMethod
	status          Status
	createdAt       time.Time

	isConstructed bool
}

// NewOrder creates a new Order with derived financial fields, initial status
// Confirmed, and the current UTC time as the creation timestamp.
//
// The caller supplies the already-allocated order number: number allocation is
// an application-layer concern (it consumes a sequence value), while this
// constructor owns everything derivable from the inputs.
func NewOrder(
	id kernel.UUID,
	number Number,
	snapshot customer.Snapshot,
	items []LineItem,
	deliveryAddress kernel.Address,
	paymentMethod PaymentMethod,
) (*Order, error) {
	o := &Order{
		status:        Confirmed,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomer(snapshot),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
		o.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	o.subtotal = SubtotalFor(o.items)
	o.tax = TaxFor(o.subtotal)
	o.shipping = ShippingFor(o.subtotal)
	o.total = o.subtotal.Add(o.tax).Add(o.shipping)

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. The financial fields
// and timestamps are restored verbatim, not recomputed: historical orders must
// render exactly what was charged even if pricing constants change later.
func RestoreOrder(
	id kernel.UUID,
	number Number,
	snapshot customer.Snapshot,
	items []LineItem,
	subtotal kernel.Money,
	tax kernel.Money,
	shipping kernel.Money,
	total kernel.Money,
	deliveryAddress kernel.Address,
	paymentMethod PaymentMethod,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		subtotal:      subtotal,
		tax:           tax,
		shipping:      shipping,
		total:         total,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomer(snapshot),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
		o.setPaymentMethod(paymentMethod),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their order number.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.number.IsEqual(other.number)
}

// ID returns the order's internal identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the durable human-readable order identifier.
func (o *Order) Number() Number {
	return o.number
}

// Customer returns the customer snapshot captured at creation time.
func (o *Order) Customer() customer.Snapshot {
	return o.customer
}

// LineItems returns the ordered product entries.
func (o *Order) LineItems() []LineItem {
	return o.items
}

// Subtotal returns the sum of unitPrice x quantity over the line items.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// Tax returns the tax amount derived at creation.
func (o *Order) Tax() kernel.Money {
	return o.tax
}

// Shipping returns the shipping charge derived at creation.
func (o *Order) Shipping() kernel.Money {
	return o.shipping
}

// TotalAmount returns subtotal + tax + shipping as derived at creation.
func (o *Order) TotalAmount() kernel.Money {
	return o.total
}

// DeliveryAddress returns the delivery destination for this order.
func (o *Order) DeliveryAddress() kernel.Address {
	return o.deliveryAddress
}

// PaymentMethod returns the payment instrument the order carries.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// Status returns the current lifecycle state of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the immutable creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ChangeStatus moves the order to the target status.
//
// The transition rule is terminality-only: any target in the vocabulary is
// accepted while the current status is non-terminal, and every move out of
// Delivered or Cancelled fails with an InvalidTransitionError.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.ChangeTo(target)
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

func (o *Order) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setCustomer(snapshot customer.Snapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}
	o.customer = snapshot
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return ErrNoLineItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}

func (o *Order) setDeliveryAddress(deliveryAddress kernel.Address) error {
	if err := deliveryAddress.Validate(); err != nil {
		return err
	}
	o.deliveryAddress = deliveryAddress
	return nil
}

func (o *Order) setPaymentMethod(paymentMethod PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}
	o.paymentMethod = paymentMethod
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
