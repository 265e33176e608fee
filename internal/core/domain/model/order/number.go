package order

import (
	"fmt"
	"strconv"
	"strings"

	"marketplace/internal/pkg/errs"
)

const (
	// NumberPrefix is the fixed prefix of every rendered order number.
	NumberPrefix = "ORD"

	// numberBase is added to the raw sequence value before rendering, so the
	// first allocated order (sequence 1) renders as ORD100001.
	numberBase = 100000
)

// ErrNumberIsNotConstructed is returned when validating a zero-value Number.
var ErrNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"order number must be created via NumberFromSequence or NumberFromString")

// Number is the durable human-readable order identifier, rendered as
// "ORD" + (100000 + sequence). It is globally unique because the underlying
// sequence values are, and immutable once assigned to an order.
type Number struct {
	value string
}

// NumberFromSequence renders an order number from an allocated sequence value.
// The sequence must be positive: allocations start at 1.
func NumberFromSequence(sequence int64) (Number, error) {
	if sequence <= 0 {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("sequence",
			fmt.Errorf("%d is not greater than 0", sequence))
	}
	return Number{value: fmt.Sprintf("%s%d", NumberPrefix, numberBase+sequence)}, nil
}

// NumberFromString parses and validates a rendered order number, e.g. when it
// arrives from a request path or is read back from storage.
func NumberFromString(s string) (Number, error) {
	digits, ok := strings.CutPrefix(s, NumberPrefix)
	if !ok {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("order number",
			fmt.Errorf("%q does not start with %q", s, NumberPrefix))
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("order number", err)
	}
	if n <= numberBase {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("order number",
			fmt.Errorf("%q is below the rendering base", s))
	}

	return Number{value: s}, nil
}

// String returns the rendered identifier, e.g. "ORD100001".
func (n Number) String() string {
	return n.value
}

// IsEqual compares two order numbers for equality.
func (n Number) IsEqual(other Number) bool {
	return n.value == other.value
}

// Validate checks the Number was created through a constructor.
func (n Number) Validate() error {
	if n.value == "" {
		return ErrNumberIsNotConstructed
	}
	return nil
}
