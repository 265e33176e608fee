package commands_test

import (
	"context"
	"errors"
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/customer"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) GetByNumber(ctx context.Context, n order.Number) (*order.Order, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockSequenceRepository struct{ mock.Mock }

func (m *MockSequenceRepository) NextValue(ctx context.Context, counterName string) (int64, error) {
	args := m.Called(ctx, counterName)
	return args.Get(0).(int64), args.Error(1)
}

type MockCustomerDirectory struct{ mock.Mock }

func (m *MockCustomerDirectory) Resolve(ctx context.Context, id kernel.UUID) (customer.Snapshot, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(customer.Snapshot), args.Error(1)
}
func (m *MockCustomerDirectory) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func testSnapshot(t *testing.T) customer.Snapshot {
	t.Helper()
	addr, err := kernel.NewAddress("12 Rose Lane", "Pune", "MH", "411001", "IN")
	require.NoError(t, err)
	snap, err := customer.NewSnapshot(kernel.NewUUID(), "Asha Rao", "+91 98765 43210", "asha@example.com", addr)
	require.NoError(t, err)
	return snap
}

func testDeliveryAddress(t *testing.T) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress("7 Market Street", "Pune", "MH", "411002", "IN")
	require.NoError(t, err)
	return addr
}

func testItems(t *testing.T, price float64, quantity int) []order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(
		kernel.NewUUID(), "Ceramic Mug", kernel.NewMoneyFromFloat(price), quantity, nil, "kitchen",
	)
	require.NoError(t, err)
	return []order.LineItem{item}
}

func testCreateOrderCommand(t *testing.T, method order.PaymentMethod, useWallet bool) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), testItems(t, 300, 2), testDeliveryAddress(t), method, useWallet,
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := testCreateOrderCommand(t, order.PaymentCard, false)

	customers := new(MockCustomerDirectory)
	customers.On("Resolve", ctx, cmd.CustomerID()).Return(testSnapshot(t), nil).Once()

	sequences := new(MockSequenceRepository)
	sequences.On("NextValue", ctx, ports.OrderIDCounter).Return(int64(7), nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, sequences, customers)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, "ORD100007", result.Number.String())
	assert.Equal(t, "648.00", result.TotalAmount.String())
	assert.Equal(t, order.Confirmed, result.Status)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	sequences.AssertExpectations(t)
	customers.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_WalletOverride(t *testing.T) {
	ctx := t.Context()
	cmd := testCreateOrderCommand(t, order.PaymentCard, true)

	customers := new(MockCustomerDirectory)
	customers.On("Resolve", ctx, cmd.CustomerID()).Return(testSnapshot(t), nil).Once()

	sequences := new(MockSequenceRepository)
	sequences.On("NextValue", ctx, ports.OrderIDCounter).Return(int64(1), nil).Once()

	var persisted *order.Order
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				persisted = args.Get(1).(*order.Order)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, sequences, customers)
	_, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.NotNil(t, persisted)
	assert.Equal(t, order.PaymentWallet, persisted.PaymentMethod())
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, new(MockSequenceRepository), new(MockCustomerDirectory))
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_CustomerNotFound(t *testing.T) {
	ctx := t.Context()
	cmd := testCreateOrderCommand(t, order.PaymentCash, false)

	customers := new(MockCustomerDirectory)
	customers.On("Resolve", ctx, cmd.CustomerID()).
		Return(customer.Snapshot{}, errs.NewObjectNotFoundError("customerId", cmd.CustomerID().String())).Once()

	sequences := new(MockSequenceRepository)
	factory := new(MockOrderUoWFactory)

	h := commands.NewCreateOrderCommandHandler(factory, sequences, customers)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	// No sequence value may be consumed for a request that cannot succeed.
	sequences.AssertNotCalled(t, "NextValue", mock.Anything, mock.Anything)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_SequenceUnavailable(t *testing.T) {
	ctx := t.Context()
	cmd := testCreateOrderCommand(t, order.PaymentCash, false)

	customers := new(MockCustomerDirectory)
	customers.On("Resolve", ctx, cmd.CustomerID()).Return(testSnapshot(t), nil).Once()

	sequences := new(MockSequenceRepository)
	sequences.On("NextValue", ctx, ports.OrderIDCounter).
		Return(int64(0), errs.NewStorageUnavailableError("sequence increment", errors.New("connection refused"))).Once()

	factory := new(MockOrderUoWFactory)

	h := commands.NewCreateOrderCommandHandler(factory, sequences, customers)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrStorageUnavailable)

	// The order must never reach persistence without an allocated number.
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_PersistenceFailed(t *testing.T) {
	ctx := t.Context()
	cmd := testCreateOrderCommand(t, order.PaymentCash, false)

	customers := new(MockCustomerDirectory)
	customers.On("Resolve", ctx, cmd.CustomerID()).Return(testSnapshot(t), nil).Once()

	sequences := new(MockSequenceRepository)
	sequences.On("NextValue", ctx, ports.OrderIDCounter).Return(int64(9), nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Return(errs.NewPersistenceFailedError("order insert", errors.New("write rejected"))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, sequences, customers)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrPersistenceFailed)

	// The sequence value was consumed exactly once; the handler must not retry.
	sequences.AssertNumberOfCalls(t, "NextValue", 1)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := testCreateOrderCommand(t, order.PaymentCash, false)

	customers := new(MockCustomerDirectory)
	customers.On("Resolve", ctx, cmd.CustomerID()).Return(testSnapshot(t), nil).Once()

	sequences := new(MockSequenceRepository)
	sequences.On("NextValue", ctx, ports.OrderIDCounter).Return(int64(2), nil).Once()

	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory, sequences, customers)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
