package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly initialized Address.
// Addresses must be created using the NewAddress constructor to ensure validity.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is a structured postal address captured as an immutable snapshot.
// An order's delivery address is independent of whatever address the customer
// record holds at any later point in time.
//
// Street is the only mandatory component; the remaining fields mirror whatever
// the customer submitted and may be empty.
type Address struct { //nolint:recvcheck //using for validation
	street     string
	city       string
	state      string
	postalCode string
	country    string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated Address. Street must be non-empty.
func NewAddress(street, city, state, postalCode, country string) (Address, error) {
	if street == "" {
		return Address{}, errs.NewValueIsRequiredError("street")
	}

	return Address{
		street:     street,
		city:       city,
		state:      state,
		postalCode: postalCode,
		country:    country,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city component of the address.
func (a Address) City() string {
	return a.city
}

// State returns the state or region component of the address.
func (a Address) State() string {
	return a.state
}

// PostalCode returns the postal code component of the address.
func (a Address) PostalCode() string {
	return a.postalCode
}

// Country returns the country component of the address.
func (a Address) Country() string {
	return a.country
}

// String renders the address as a single display line, skipping empty components.
func (a Address) String() string {
	out := a.street
	for _, part := range []string{a.city, a.state, a.postalCode, a.country} {
		if part != "" {
			out = fmt.Sprintf("%s, %s", out, part)
		}
	}
	return out
}

// Validate ensures the Address was created through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}
