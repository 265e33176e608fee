package queries

import (
	"context"

	"marketplace/internal/adapters/out/postgres/pgerrors"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderStatisticsQueryHandler aggregates order figures in a single SQL
// pass and augments them with the customer count from the directory.
type GetOrderStatisticsQueryHandler struct {
	db        *gorm.DB
	customers ports.CustomerDirectory
}

// NewGetOrderStatisticsQueryHandler creates a handler for order statistics.
func NewGetOrderStatisticsQueryHandler(
	db *gorm.DB,
	customers ports.CustomerDirectory,
) GetOrderStatisticsQueryHandler {
	return GetOrderStatisticsQueryHandler{db: db, customers: customers}
}

// Handle executes the query.
func (h GetOrderStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatisticsQuery,
) (GetOrderStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatisticsQueryResponse{}, err
	}

	inFlight := order.InFlightStatuses()
	pendingCodes := make([]int, 0, len(inFlight))
	for _, s := range inFlight {
		pendingCodes = append(pendingCodes, int(s))
	}

	var row struct {
		TotalOrders     int64
		DeliveredOrders int64
		PendingOrders   int64
		TotalRevenue    decimal.Decimal
	}

	// Revenue is recognized on delivery, so only delivered orders contribute.
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*)                                              AS total_orders,
			COUNT(*) FILTER (WHERE o.status = ?)                  AS delivered_orders,
			COUNT(*) FILTER (WHERE o.status IN ?)                 AS pending_orders,
			COALESCE(SUM(o.total_amount) FILTER (WHERE o.status = ?), 0) AS total_revenue
		FROM orders o
	`, int(order.Delivered), pendingCodes, int(order.Delivered)).Scan(&row).Error
	if err != nil {
		return GetOrderStatisticsQueryResponse{}, pgerrors.Classify("order statistics", err)
	}

	averageOrderValue := kernel.ZeroMoney()
	if row.TotalOrders > 0 {
		averageOrderValue = kernel.NewMoneyFromDecimal(
			row.TotalRevenue.Div(decimal.NewFromInt(row.TotalOrders)).Round(2),
		)
	}

	customerCount, err := h.customers.Count(ctx)
	if err != nil {
		return GetOrderStatisticsQueryResponse{}, err
	}

	return GetOrderStatisticsQueryResponse{
		TotalOrders:       row.TotalOrders,
		DeliveredOrders:   row.DeliveredOrders,
		PendingOrders:     row.PendingOrders,
		TotalRevenue:      kernel.NewMoneyFromDecimal(row.TotalRevenue),
		AverageOrderValue: averageOrderValue,
		CustomerCount:     customerCount,
	}, nil
}
