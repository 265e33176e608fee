package queries_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/customer"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ListOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.ListOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
	sequence  int64
}

func (suite *ListOrdersQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}))

	suite.handler = queries.NewListOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db)
}

func (suite *ListOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ListOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items").Error)
}

// seedOrders inserts count orders with strictly increasing creation times
// and the given status, returning the order numbers oldest first.
func (suite *ListOrdersQueryHandlerTestSuite) seedOrders(
	count int, status order.Status, base time.Time,
) []string {
	numbers := make([]string, 0, count)

	for i := range count {
		suite.sequence++
		number, err := order.NumberFromSequence(suite.sequence)
		suite.Require().NoError(err)

		address, err := kernel.NewAddress("9 Park Lane", "Delhi", "DL", "110001", "IN")
		suite.Require().NoError(err)

		snapshot, err := customer.NewSnapshot(
			kernel.NewUUID(), "Arjun Nair", "+91-9800000005", "arjun@example.com", address,
		)
		suite.Require().NoError(err)

		price, err := kernel.NewMoneyFromString("75.00")
		suite.Require().NoError(err)

		item, err := order.NewLineItem(kernel.NewUUID(), "Wall Clock", price, 1, nil, "decor")
		suite.Require().NoError(err)

		aggregate, err := order.NewOrder(
			kernel.NewUUID(), number, snapshot, []order.LineItem{item}, address, order.PaymentUPI,
		)
		suite.Require().NoError(err)

		if status != order.Confirmed {
			suite.Require().NoError(aggregate.ChangeStatus(status))
		}

		suite.Require().NoError(suite.orderRepo.Add(context.Background(), aggregate))
		suite.Require().NoError(suite.db.Exec(
			"UPDATE orders SET created_at = ? WHERE number = ?",
			base.Add(time.Duration(i)*time.Minute), number.String(),
		).Error)

		numbers = append(numbers, number.String())
	}

	return numbers
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase() {
	query, err := queries.NewListOrdersQuery(1, 10, queries.StatusFilterAll)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Empty(result.Items)
	suite.Equal(int64(0), result.Pagination.TotalCount)
	suite.Equal(0, result.Pagination.TotalPages)
	suite.False(result.Pagination.HasNext)
	suite.False(result.Pagination.HasPrev)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_LastPartialPage() {
	base := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	numbers := suite.seedOrders(23, order.Confirmed, base)

	query, err := queries.NewListOrdersQuery(3, 10, queries.StatusFilterAll)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	// 23 orders at 10 per page: page 3 holds the 3 oldest.
	suite.Require().Len(result.Items, 3)
	suite.Equal(int64(23), result.Pagination.TotalCount)
	suite.Equal(3, result.Pagination.TotalPages)
	suite.Equal(3, result.Pagination.CurrentPage)
	suite.False(result.Pagination.HasNext)
	suite.True(result.Pagination.HasPrev)

	suite.Equal(numbers[2], result.Items[0].Number)
	suite.Equal(numbers[1], result.Items[1].Number)
	suite.Equal(numbers[0], result.Items[2].Number)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_FirstPageNewestFirst() {
	base := time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC)
	numbers := suite.seedOrders(5, order.Confirmed, base)

	query, err := queries.NewListOrdersQuery(1, 2, queries.StatusFilterAll)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(result.Items, 2)
	suite.Equal(numbers[4], result.Items[0].Number)
	suite.Equal(numbers[3], result.Items[1].Number)
	suite.Equal(3, result.Pagination.TotalPages)
	suite.True(result.Pagination.HasNext)
	suite.False(result.Pagination.HasPrev)

	suite.Equal("Arjun Nair", result.Items[0].CustomerName)
	suite.Equal("upi", result.Items[0].PaymentMethod)
	suite.Equal(1, result.Items[0].ItemCount)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_StatusFilter() {
	base := time.Date(2026, 4, 3, 8, 0, 0, 0, time.UTC)
	suite.seedOrders(4, order.Confirmed, base)
	shippedNumbers := suite.seedOrders(2, order.Shipped, base.Add(time.Hour))

	query, err := queries.NewListOrdersQuery(1, 10, "shipped")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(result.Items, 2)
	suite.Equal(int64(2), result.Pagination.TotalCount)
	for _, item := range result.Items {
		suite.Equal("shipped", item.Status)
	}
	suite.Contains(shippedNumbers, result.Items[0].Number)
	suite.Contains(shippedNumbers, result.Items[1].Number)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_PageBeyondLast_EmptyItemsWithMetadata() {
	base := time.Date(2026, 4, 4, 8, 0, 0, 0, time.UTC)
	suite.seedOrders(5, order.Confirmed, base)

	query, err := queries.NewListOrdersQuery(4, 2, queries.StatusFilterAll)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Empty(result.Items)
	suite.Equal(int64(5), result.Pagination.TotalCount)
	suite.Equal(3, result.Pagination.TotalPages)
	suite.Equal(4, result.Pagination.CurrentPage)
	suite.False(result.Pagination.HasNext)
	suite.True(result.Pagination.HasPrev)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.ListOrdersQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewListOrdersQuery constructor")
}

func TestListOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListOrdersQueryHandlerTestSuite))
}
