package queries

import (
	"context"
	"time"

	"marketplace/internal/adapters/out/postgres/pgerrors"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler reads one customer's order summaries from the
// database, newest first. A customer with no orders yields an empty slice,
// not an error.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order history.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by creation time descending.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]GetCustomerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetCustomerOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.number,
			o.status,
			o.payment_method,
			o.total_amount,
			(SELECT COUNT(*) FROM order_items i WHERE i.order_id = o.id) AS item_count,
			o.created_at
		FROM orders o
		WHERE o.customer_id = ?
		ORDER BY o.created_at DESC
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, pgerrors.Classify("list customer orders", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			number        string
			status        int
			paymentMethod int
			totalAmount   decimal.Decimal
			itemCount     int
			createdAt     time.Time
		)

		if err = rows.Scan(&number, &status, &paymentMethod, &totalAmount, &itemCount, &createdAt); err != nil {
			return nil, pgerrors.Classify("list customer orders", err)
		}

		orders = append(orders, GetCustomerOrdersQueryResponse{
			Number:        number,
			Status:        order.Status(status).String(),
			PaymentMethod: order.PaymentMethod(paymentMethod).String(),
			TotalAmount:   kernel.NewMoneyFromDecimal(totalAmount),
			ItemCount:     itemCount,
			OrderDate:     createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, pgerrors.Classify("list customer orders", err)
	}

	return orders, nil
}
