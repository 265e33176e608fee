package http

import "time"

// Error is the uniform error payload for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AddressPayload carries an address in requests and responses.
type AddressPayload struct {
	Street     string `json:"street"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

// NewOrderItem is one line item in an order creation request.
type NewOrderItem struct {
	ProductID string   `json:"productId"`
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	Quantity  int      `json:"quantity"`
	Images    []string `json:"images,omitempty"`
	Category  string   `json:"category,omitempty"`
}

// NewOrder is the order creation request body.
type NewOrder struct {
	CustomerID      string         `json:"customerId"`
	Items           []NewOrderItem `json:"items"`
	DeliveryAddress AddressPayload `json:"deliveryAddress"`
	PaymentMethod   string         `json:"paymentMethod"`
	UseWallet       bool           `json:"useWallet"`
}

// OrderCreated is the order creation response.
type OrderCreated struct {
	OrderID     string    `json:"orderId"`
	TotalAmount float64   `json:"totalAmount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// StatusUpdate is the status change request body.
type StatusUpdate struct {
	Status string `json:"status"`
}

// StatusUpdated is the status change response.
type StatusUpdated struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

// CustomerOrder is one entry in a customer's order history.
type CustomerOrder struct {
	OrderID       string    `json:"orderId"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"paymentMethod"`
	TotalAmount   float64   `json:"totalAmount"`
	ItemCount     int       `json:"itemCount"`
	OrderDate     time.Time `json:"orderDate"`
}

// AdminOrder is one row in the admin order listing.
type AdminOrder struct {
	OrderID       string    `json:"orderId"`
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"paymentMethod"`
	TotalAmount   float64   `json:"totalAmount"`
	ItemCount     int       `json:"itemCount"`
	OrderDate     time.Time `json:"orderDate"`
}

// PaginationPayload describes the position of a page in the result set.
type PaginationPayload struct {
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
	TotalCount  int64 `json:"totalCount"`
	TotalPages  int   `json:"totalPages"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

// AdminOrderList is the admin listing response.
type AdminOrderList struct {
	Orders     []AdminOrder      `json:"orders"`
	Pagination PaginationPayload `json:"pagination"`
}

// Statistics is the admin dashboard response.
type Statistics struct {
	TotalOrders       int64   `json:"totalOrders"`
	DeliveredOrders   int64   `json:"deliveredOrders"`
	PendingOrders     int64   `json:"pendingOrders"`
	TotalRevenue      float64 `json:"totalRevenue"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	CustomerCount     int64   `json:"customerCount"`
}
