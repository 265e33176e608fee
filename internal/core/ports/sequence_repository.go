package ports

import "context"

// Counter names used by the application. Counters share one primitive; each
// name is an independent monotonic sequence.
const (
	// OrderIDCounter is the counter backing order number allocation.
	OrderIDCounter = "orderId"
)

// SequenceRepository issues globally unique, strictly increasing sequence
// values per named counter.
//
// NextValue must be implemented as a single indivisible storage operation
// (atomic increment-and-read, creating the counter row lazily on first use).
// A separate read followed by a write reintroduces the duplicate-identifier
// race this port exists to prevent. Under N concurrent callers for the same
// name, all N receive distinct values and every successful call advances the
// stored sequence exactly once.
//
// On storage failure NextValue returns a StorageUnavailableError and no value
// is considered issued. A value returned successfully is consumed even if the
// caller's subsequent write fails: gaps are acceptable, reuse is not.
type SequenceRepository interface {
	NextValue(ctx context.Context, counterName string) (int64, error)
}
