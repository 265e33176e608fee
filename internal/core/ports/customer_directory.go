package ports

import (
	"context"

	"marketplace/internal/core/domain/model/customer"
	"marketplace/internal/core/domain/model/kernel"
)

// CustomerDirectory is the external customer-record collaborator.
// The order core only reads from it: Resolve produces the snapshot embedded
// into a new order, Count feeds the statistics summary. The directory is
// never mutated by order operations.
type CustomerDirectory interface {
	// Resolve looks up a customer by id and returns the display fields as a
	// snapshot. Returns an ObjectNotFoundError for unknown ids.
	Resolve(ctx context.Context, id kernel.UUID) (customer.Snapshot, error)

	// Count returns the total number of registered customers.
	Count(ctx context.Context) (int64, error)
}
