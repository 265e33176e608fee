package customer

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	// ErrSnapshotIsNotConstructed is returned when a Snapshot was not created
	// through the NewSnapshot constructor.
	ErrSnapshotIsNotConstructed = errors.New("Snapshot must be created via NewSnapshot constructor")
)

// Snapshot is the denormalized copy of a customer record taken at order
// creation time. It is a value object: once embedded in an order it is never
// refreshed, so historical orders display the customer data as it was when
// the purchase happened.
type Snapshot struct { //nolint:recvcheck //using for validation
	id      kernel.UUID
	name    string
	phone   string
	email   string
	address kernel.Address

	guard guard.ConstructorGuard
}

// NewSnapshot creates a validated customer snapshot.
// The id must be a valid UUID and the display name must be non-empty; phone,
// email and address mirror whatever the directory holds and may be sparse.
func NewSnapshot(id kernel.UUID, name, phone, email string, address kernel.Address) (Snapshot, error) {
	snapshot := Snapshot{
		phone: phone,
		email: email,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		snapshot.setID(id),
		snapshot.setName(name),
		snapshot.setAddress(address),
	); err != nil {
		return Snapshot{}, err
	}

	return snapshot, nil
}

// Validate ensures the Snapshot was created through NewSnapshot.
func (s Snapshot) Validate() error {
	return s.guard.Validate(ErrSnapshotIsNotConstructed)
}

// ID returns the customer identifier kept as a weak back-reference.
func (s Snapshot) ID() kernel.UUID {
	return s.id
}

// Name returns the customer display name as captured at creation time.
func (s Snapshot) Name() string {
	return s.name
}

// Phone returns the captured phone number.
func (s Snapshot) Phone() string {
	return s.phone
}

// Email returns the captured email address.
func (s Snapshot) Email() string {
	return s.email
}

// Address returns the customer's stored address as captured at creation time.
// This is distinct from the order's delivery address.
func (s Snapshot) Address() kernel.Address {
	return s.address
}

func (s *Snapshot) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Snapshot) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	s.name = name
	return nil
}

func (s *Snapshot) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	s.address = address
	return nil
}
