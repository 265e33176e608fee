package ports

import (
	"context"

	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetByNumber retrieves an order aggregate by its rendered order number.
	// Returns an ObjectNotFoundError when the number is unknown.
	GetByNumber(ctx context.Context, number order.Number) (*order.Order, error)
}
