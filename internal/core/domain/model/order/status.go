package order

import (
	"errors"
	"fmt"

	"marketplace/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel unwrapped by InvalidTransitionError.
// Use errors.Is against it to detect rejected status moves.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of an order.
//
// The vocabulary is a flat enumeration:
//
//	order_confirmed -> processing -> packed -> shipped -> out_for_delivery -> delivered
//
// with cancelled reachable from any non-terminal state. Delivered and
// Cancelled are terminal: no transition out of either is accepted. The rule
// is terminality-only; a move between any two non-terminal states (including
// backward, e.g. shipped -> processing) is accepted.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Confirmed is the initial status assigned when an order is created.
	Confirmed

	// Processing indicates the order is being prepared for packing.
	Processing

	// Packed indicates all line items have been packed.
	Packed

	// Shipped indicates the package has left the warehouse.
	Shipped

	// OutForDelivery indicates the package is with the delivery courier.
	OutForDelivery

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled before delivery. Terminal.
	Cancelled
)

// getStatusStrings returns the wire vocabulary for every Status value.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Confirmed:      "order_confirmed",
		Processing:     "processing",
		Packed:         "packed",
		Shipped:        "shipped",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// getValidStatusStrings returns only the valid members of the vocabulary.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Confirmed:      "order_confirmed",
		Processing:     "processing",
		Packed:         "packed",
		Shipped:        "shipped",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// InFlightStatuses returns the non-terminal subset of the vocabulary, i.e.
// the states counted as "pending" by the statistics aggregation.
func InFlightStatuses() []Status {
	return []Status{Confirmed, Processing, Packed, Shipped, OutForDelivery}
}

// StatusFromString parses a wire-vocabulary string ("order_confirmed",
// "shipped", ...) into a Status. Returns an error for anything outside the
// valid vocabulary, including "unknown".
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a member of the status vocabulary", s))
}

// Validate checks if the Status value is a valid vocabulary member.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire vocabulary name of the status.
// Implements fmt.Stringer; safe on any value, invalid ones render "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition is permitted out of s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ChangeTo validates a transition from s to target and returns the new state.
//
// The target must be a valid vocabulary member and s must not be terminal.
// Those are the only rules: forward-only ordering is deliberately not
// enforced, matching the observed behavior of the system (see package docs).
//
// Returns:
//   - (target, nil) on an accepted transition
//   - (Unknown, error) when target is invalid or s is terminal
func (s Status) ChangeTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	if s.IsTerminal() {
		return Unknown, NewInvalidTransitionError(s, target)
	}

	return target, nil
}

// InvalidTransitionError reports a rejected move out of a terminal state.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the rejected move.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s is terminal, cannot move to %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
