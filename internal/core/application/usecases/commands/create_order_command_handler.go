package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// CreateOrderResult is the outcome of a successful order creation.
type CreateOrderResult struct {
	Number      order.Number
	TotalAmount kernel.Money
	Status      order.Status
	CreatedAt   time.Time
}

// CreateOrderCommandHandler handles the business logic for order creation:
// customer resolution, payment-method resolution, order number allocation,
// financial derivation (inside the aggregate), and transactional persistence.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, sequences, customers)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("order %s created, total %s", result.Number, result.TotalAmount)
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	sequences  ports.SequenceRepository
	customers  ports.CustomerDirectory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	sequences ports.SequenceRepository,
	customers ports.CustomerDirectory,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		sequences:  sequences,
		customers:  customers,
	}
}

// Handle processes the order creation command.
//
// The customer record is resolved and snapshotted before anything else; no
// sequence value is consumed for a request that cannot possibly succeed. The
// sequence is allocated outside the order transaction: if persistence fails
// afterwards the allocated number is simply lost (a gap in identifiers, never
// a reuse), and the command fails without retrying.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	snapshot, err := h.customers.Resolve(ctx, cmd.CustomerID())
	if err != nil {
		return CreateOrderResult{}, err
	}

	paymentMethod := cmd.PaymentMethod()
	if cmd.UseWallet() {
		paymentMethod = order.PaymentWallet
	}

	sequence, err := h.sequences.NextValue(ctx, ports.OrderIDCounter)
	if err != nil {
		return CreateOrderResult{}, err
	}

	number, err := order.NumberFromSequence(sequence)
	if err != nil {
		return CreateOrderResult{}, err
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		number,
		snapshot,
		cmd.LineItems(),
		cmd.DeliveryAddress(),
		paymentMethod,
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{
		Number:      newOrder.Number(),
		TotalAmount: newOrder.TotalAmount(),
		Status:      newOrder.Status(),
		CreatedAt:   newOrder.CreatedAt(),
	}, nil
}
