// Package customerrepo adapts the customer table to the CustomerDirectory
// port. Order operations only ever read from it.
package customerrepo

import (
	"context"
	"errors"

	"marketplace/internal/adapters/out/postgres/pgerrors"
	"marketplace/internal/core/domain/model/customer"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerDTO represents one customer row.
type CustomerDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name    string
	Phone   string
	Email   string
	Address AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
}

// TableName overrides GORM's default naming convention to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

// AddressDTO represents the customer's address embedded within the row.
type AddressDTO struct {
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
}

// FromSnapshot converts a customer snapshot to its database representation.
// Used when seeding the directory.
func FromSnapshot(snapshot customer.Snapshot) CustomerDTO {
	return CustomerDTO{
		ID:    snapshot.ID().Bytes(),
		Name:  snapshot.Name(),
		Phone: snapshot.Phone(),
		Email: snapshot.Email(),
		Address: AddressDTO{
			Street:     snapshot.Address().Street(),
			City:       snapshot.Address().City(),
			State:      snapshot.Address().State(),
			PostalCode: snapshot.Address().PostalCode(),
			Country:    snapshot.Address().Country(),
		},
	}
}

func toSnapshot(dto CustomerDTO) (customer.Snapshot, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return customer.Snapshot{}, err
	}

	address, err := kernel.NewAddress(
		dto.Address.Street, dto.Address.City, dto.Address.State,
		dto.Address.PostalCode, dto.Address.Country,
	)
	if err != nil {
		return customer.Snapshot{}, err
	}

	return customer.NewSnapshot(id, dto.Name, dto.Phone, dto.Email, address)
}

// GormCustomerDirectory implements ports.CustomerDirectory using GORM.
type GormCustomerDirectory struct {
	db *gorm.DB
}

// NewGormCustomerDirectory creates a new GORM customer directory.
func NewGormCustomerDirectory(db *gorm.DB) *GormCustomerDirectory {
	return &GormCustomerDirectory{db: db}
}

// Resolve looks up a customer by id and returns its snapshot.
func (d *GormCustomerDirectory) Resolve(ctx context.Context, id kernel.UUID) (customer.Snapshot, error) {
	if err := id.Validate(); err != nil {
		return customer.Snapshot{}, err
	}

	var dto CustomerDTO
	err := d.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return customer.Snapshot{}, errs.NewObjectNotFoundError("customer", id.String())
		}
		return customer.Snapshot{}, pgerrors.Classify("resolve customer", err)
	}

	return toSnapshot(dto)
}

// Count returns the total number of registered customers.
func (d *GormCustomerDirectory) Count(ctx context.Context) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&CustomerDTO{}).Count(&count).Error
	if err != nil {
		return 0, pgerrors.Classify("count customers", err)
	}

	return count, nil
}

// Add inserts a customer row. Only used for seeding and tests; order
// operations never write to the directory.
func (d *GormCustomerDirectory) Add(ctx context.Context, snapshot customer.Snapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}

	dto := FromSnapshot(snapshot)
	if err := d.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrors.Classify("add customer", err)
	}

	return nil
}
