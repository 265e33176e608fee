package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// StatusFilterAll matches every order regardless of status.
const StatusFilterAll = "all"

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery is the admin-facing paginated order listing, optionally
// filtered by a single status.
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	page     int
	pageSize int

	// statusFilter is nil when every status matches.
	statusFilter *order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a paginated admin listing. The page is 1-based.
// statusFilter accepts any wire status string, StatusFilterAll, or the empty
// string (treated as all).
func NewListOrdersQuery(page int, pageSize int, statusFilter string) (ListOrdersQuery, error) {
	q := ListOrdersQuery{guard: guard.NewConstructorGuard()}

	if page < 1 {
		return ListOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("page",
			errors.New("page must be 1 or greater"))
	}
	if pageSize < 1 {
		return ListOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("pageSize",
			errors.New("pageSize must be 1 or greater"))
	}
	q.page = page
	q.pageSize = pageSize

	if statusFilter != "" && statusFilter != StatusFilterAll {
		status, err := order.StatusFromString(statusFilter)
		if err != nil {
			return ListOrdersQuery{}, err
		}
		q.statusFilter = &status
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Page returns the requested 1-based page.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// PageSize returns the number of orders per page.
func (q ListOrdersQuery) PageSize() int {
	return q.pageSize
}

// StatusFilter returns the status to match, or nil when all statuses match.
func (q ListOrdersQuery) StatusFilter() *order.Status {
	return q.statusFilter
}

// ListOrdersItem is one admin-facing order row.
type ListOrdersItem struct {
	Number        string
	CustomerName  string
	CustomerPhone string
	Status        string
	PaymentMethod string
	TotalAmount   kernel.Money
	ItemCount     int
	OrderDate     time.Time
}

// Pagination describes the position of a page within the full result set.
type Pagination struct {
	CurrentPage int
	PageSize    int
	TotalCount  int64
	TotalPages  int
	HasNext     bool
	HasPrev     bool
}

// ListOrdersQueryResponse is one page of orders plus pagination metadata.
// A page beyond the last one carries an empty Items slice with the metadata
// still describing the full result set.
type ListOrdersQueryResponse struct {
	Items      []ListOrdersItem
	Pagination Pagination
}
