package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
)

// ChangeOrderStatusResult is the outcome of a successful status transition.
type ChangeOrderStatusResult struct {
	Number order.Number
	Status order.Status
}

// ChangeOrderStatusCommandHandler loads an order by number, applies the
// requested transition through the aggregate, and persists the new state.
//
// The update is last-writer-wins: concurrent transitions on the same order
// serialize in whatever order the storage layer applies the per-row writes,
// not necessarily in request-issue order.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
// Fails with an ObjectNotFoundError for unknown order numbers and with an
// InvalidTransitionError when the order is already in a terminal state.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (ChangeOrderStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.GetByNumber(ctx, cmd.Number())
	if err != nil {
		return ChangeOrderStatusResult{}, err
	}

	if err = aggregate.ChangeStatus(cmd.Target()); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	return ChangeOrderStatusResult{
		Number: aggregate.Number(),
		Status: aggregate.Status(),
	}, nil
}
