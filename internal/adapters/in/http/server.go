// Package http exposes the order operations over a REST surface.
// Handlers translate wire payloads into commands and queries, and map the
// application error taxonomy onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler

	getCustomerOrdersHandler  queries.GetCustomerOrdersQueryHandler
	listOrdersHandler         queries.ListOrdersQueryHandler
	getOrderStatisticsHandler queries.GetOrderStatisticsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderStatisticsHandler queries.GetOrderStatisticsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		changeOrderStatusHandler:  changeOrderStatusHandler,
		getCustomerOrdersHandler:  getCustomerOrdersHandler,
		listOrdersHandler:         listOrdersHandler,
		getOrderStatisticsHandler: getOrderStatisticsHandler,
	}
}

// RegisterRoutes attaches every order route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/customers/:customerId/orders", s.GetCustomerOrders)
	api.PATCH("/orders/:orderId/status", s.UpdateOrderStatus)
	api.GET("/admin/orders", s.ListOrders)
	api.GET("/admin/orders/statistics", s.GetOrderStatistics)
}

// statusForError maps application errors onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func errorJSON(ctx echo.Context, err error) error {
	code := statusForError(err)
	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	customerID, err := kernel.UUIDFromString(body.CustomerID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid customer id: " + err.Error(),
		})
	}

	items := make([]order.LineItem, 0, len(body.Items))
	for _, payload := range body.Items {
		productID, itemErr := kernel.UUIDFromString(payload.ProductID)
		if itemErr != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid product id: " + itemErr.Error(),
			})
		}

		item, itemErr := order.NewLineItem(
			productID,
			payload.Name,
			kernel.NewMoneyFromFloat(payload.Price),
			payload.Quantity,
			payload.Images,
			payload.Category,
		)
		if itemErr != nil {
			return errorJSON(ctx, itemErr)
		}
		items = append(items, item)
	}

	deliveryAddress, err := kernel.NewAddress(
		body.DeliveryAddress.Street,
		body.DeliveryAddress.City,
		body.DeliveryAddress.State,
		body.DeliveryAddress.PostalCode,
		body.DeliveryAddress.Country,
	)
	if err != nil {
		return errorJSON(ctx, err)
	}

	paymentMethod, err := order.PaymentMethodFromString(body.PaymentMethod)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(customerID, items, deliveryAddress, paymentMethod, body.UseWallet)
	if err != nil {
		return errorJSON(ctx, err)
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderCreated{
		OrderID:     result.Number.String(),
		TotalAmount: result.TotalAmount.Float64(),
		Status:      result.Status.String(),
		CreatedAt:   result.CreatedAt,
	})
}

// GetCustomerOrders handles GET /api/v1/customers/:customerId/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid customer id: " + err.Error(),
		})
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]CustomerOrder, 0, len(orders))
	for _, o := range orders {
		response = append(response, CustomerOrder{
			OrderID:       o.Number,
			Status:        o.Status,
			PaymentMethod: o.PaymentMethod,
			TotalAmount:   o.TotalAmount.Float64(),
			ItemCount:     o.ItemCount,
			OrderDate:     o.OrderDate,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:orderId/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	number, err := order.NumberFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	var body StatusUpdate
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	target, err := order.StatusFromString(body.Status)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(number, target)
	if err != nil {
		return errorJSON(ctx, err)
	}

	result, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatusUpdated{
		OrderID: result.Number.String(),
		Status:  result.Status.String(),
	})
}

// ListOrders handles GET /api/v1/admin/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	page, err := queryInt(ctx, "page", 1)
	if err != nil {
		return errorJSON(ctx, err)
	}

	pageSize, err := queryInt(ctx, "pageSize", 20)
	if err != nil {
		return errorJSON(ctx, err)
	}

	query, err := queries.NewListOrdersQuery(page, pageSize, ctx.QueryParam("status"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	result, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	orders := make([]AdminOrder, 0, len(result.Items))
	for _, item := range result.Items {
		orders = append(orders, AdminOrder{
			OrderID:       item.Number,
			CustomerName:  item.CustomerName,
			CustomerPhone: item.CustomerPhone,
			Status:        item.Status,
			PaymentMethod: item.PaymentMethod,
			TotalAmount:   item.TotalAmount.Float64(),
			ItemCount:     item.ItemCount,
			OrderDate:     item.OrderDate,
		})
	}

	return ctx.JSON(http.StatusOK, AdminOrderList{
		Orders: orders,
		Pagination: PaginationPayload{
			CurrentPage: result.Pagination.CurrentPage,
			PageSize:    result.Pagination.PageSize,
			TotalCount:  result.Pagination.TotalCount,
			TotalPages:  result.Pagination.TotalPages,
			HasNext:     result.Pagination.HasNext,
			HasPrev:     result.Pagination.HasPrev,
		},
	})
}

// GetOrderStatistics handles GET /api/v1/admin/orders/statistics.
func (s *Server) GetOrderStatistics(ctx echo.Context) error {
	query, err := queries.NewGetOrderStatisticsQuery()
	if err != nil {
		return errorJSON(ctx, err)
	}

	result, err := s.getOrderStatisticsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Statistics{
		TotalOrders:       result.TotalOrders,
		DeliveredOrders:   result.DeliveredOrders,
		PendingOrders:     result.PendingOrders,
		TotalRevenue:      result.TotalRevenue.Float64(),
		AverageOrderValue: result.AverageOrderValue.Float64(),
		CustomerCount:     result.CustomerCount,
	})
}

func queryInt(ctx echo.Context, name string, fallback int) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return value, nil
}
