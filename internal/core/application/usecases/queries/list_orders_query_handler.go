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

// ListOrdersQueryHandler serves the admin order listing with offset
// pagination. The total count and the page rows come from two statements
// over the same filter, newest orders first.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for the admin listing.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	where := ""
	args := make([]any, 0, 3)
	if filter := query.StatusFilter(); filter != nil {
		where = "WHERE o.status = ?"
		args = append(args, int(*filter))
	}

	var totalCount int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders o "+where, args...).
		Scan(&totalCount).Error; err != nil {
		return ListOrdersQueryResponse{}, pgerrors.Classify("count orders", err)
	}

	totalPages := int((totalCount + int64(query.PageSize()) - 1) / int64(query.PageSize()))
	pagination := Pagination{
		CurrentPage: query.Page(),
		PageSize:    query.PageSize(),
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		HasNext:     query.Page() < totalPages,
		HasPrev:     query.Page() > 1,
	}

	items := make([]ListOrdersItem, 0, query.PageSize())
	offset := (query.Page() - 1) * query.PageSize()
	args = append(args, query.PageSize(), offset)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.number,
			o.customer_name,
			o.customer_phone,
			o.status,
			o.payment_method,
			o.total_amount,
			(SELECT COUNT(*) FROM order_items i WHERE i.order_id = o.id) AS item_count,
			o.created_at
		FROM orders o
		`+where+`
		ORDER BY o.created_at DESC
		LIMIT ? OFFSET ?
	`, args...).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, pgerrors.Classify("list orders", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			number        string
			customerName  string
			customerPhone string
			status        int
			paymentMethod int
			totalAmount   decimal.Decimal
			itemCount     int
			createdAt     time.Time
		)

		if err = rows.Scan(&number, &customerName, &customerPhone, &status,
			&paymentMethod, &totalAmount, &itemCount, &createdAt); err != nil {
			return ListOrdersQueryResponse{}, pgerrors.Classify("list orders", err)
		}

		items = append(items, ListOrdersItem{
			Number:        number,
			CustomerName:  customerName,
			CustomerPhone: customerPhone,
			Status:        order.Status(status).String(),
			PaymentMethod: order.PaymentMethod(paymentMethod).String(),
			TotalAmount:   kernel.NewMoneyFromDecimal(totalAmount),
			ItemCount:     itemCount,
			OrderDate:     createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, pgerrors.Classify("list orders", err)
	}

	return ListOrdersQueryResponse{Items: items, Pagination: pagination}, nil
}
