// Package queries contains read-only operations over persisted orders.
// Query handlers bypass the domain aggregate and read projections straight
// from the database, following the CQRS split: commands go through the
// aggregate and the unit of work, queries go through raw SQL.
package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
		"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
	)
)

// GetCustomerOrdersQuery retrieves the order history of one customer,
// newest first. The projection is customer-facing: it exposes only fields
// safe for display and no internal identifiers.
type GetCustomerOrdersQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for one customer's orders.
func NewGetCustomerOrdersQuery(customerID kernel.UUID) (GetCustomerOrdersQuery, error) {
	q := GetCustomerOrdersQuery{guard: guard.NewConstructorGuard()}
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}
	q.customerID = customerID
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer whose orders are requested.
func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetCustomerOrdersQueryResponse is one customer-facing order summary.
type GetCustomerOrdersQueryResponse struct {
	Number        string
	Status        string
	PaymentMethod string
	TotalAmount   kernel.Money
	ItemCount     int
	OrderDate     time.Time
}
