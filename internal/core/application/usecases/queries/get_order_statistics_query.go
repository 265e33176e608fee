package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetOrderStatisticsQueryIsNotConstructed = errors.New(
		"GetOrderStatisticsQuery must be created via NewGetOrderStatisticsQuery constructor",
	)
)

// GetOrderStatisticsQuery computes aggregate figures over the whole order
// set for the admin dashboard.
type GetOrderStatisticsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderStatisticsQuery creates the statistics query.
func NewGetOrderStatisticsQuery() (GetOrderStatisticsQuery, error) {
	return GetOrderStatisticsQuery{guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatisticsQueryIsNotConstructed)
}

// GetOrderStatisticsQueryResponse holds the dashboard figures.
// TotalRevenue counts delivered orders only; AverageOrderValue is
// TotalRevenue divided by TotalOrders, zero when there are no orders.
type GetOrderStatisticsQueryResponse struct {
	TotalOrders       int64
	DeliveredOrders   int64
	PendingOrders     int64
	TotalRevenue      kernel.Money
	AverageOrderValue kernel.Money
	CustomerCount     int64
}
