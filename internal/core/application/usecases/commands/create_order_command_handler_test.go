package commands_test

import (
	"context"
	"errors"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/item"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCreateOrderRepository struct{ mock.Mock }

func (m *MockCreateOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockCreateOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockCreateOrderRepository) UpdateStatus(
	ctx context.Context, id kernel.UUID, from, to order.Status,
) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}

func (m *MockCreateOrderRepository) DeleteLines(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCreateOrderRepository) GetAllInStatus(
	ctx context.Context, status order.Status,
) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockCreateItemRepository struct{ mock.Mock }

func (m *MockCreateItemRepository) Add(ctx context.Context, i *item.Item) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockCreateItemRepository) Get(ctx context.Context, id kernel.UUID) (*item.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*item.Item), args.Error(1)
}

func (m *MockCreateItemRepository) DecrementStock(ctx context.Context, id kernel.UUID, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

func (m *MockCreateItemRepository) IncrementStock(ctx context.Context, id kernel.UUID, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

type MockCreateUoW struct{ mock.Mock }

func (m *MockCreateUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCreateUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCreateUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCreateUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockCreateUoW) ItemRepository() ports.ItemRepository {
	args := m.Called()
	return args.Get(0).(ports.ItemRepository)
}

type MockCreateUoWFactory struct{ mock.Mock }

func (m *MockCreateUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// sortedPair returns two fresh item ids with lo.String() < hi.String(),
// so tests can pin the decrement order the handler must follow.
func sortedPair() (lo, hi kernel.UUID) {
	a, b := kernel.NewUUID(), kernel.NewUUID()
	if a.String() > b.String() {
		a, b = b, a
	}
	return a, b
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	loItemID, hiItemID := sortedPair()

	cmd, err := commands.NewCreateOrderCommand(orderID, "Ada Lovelace", order.Details{TableNumber: "12"},
		[]commands.LineInput{
			{ItemID: hiItemID, Quantity: 2, UnitPriceCents: 1000},
			{ItemID: loItemID, Quantity: 1, UnitPriceCents: 2500},
		})
	require.NoError(t, err)

	orderRepo := new(MockCreateOrderRepository)
	itemRepo := new(MockCreateItemRepository)
	uow := new(MockCreateUoW)

	// Decrements must run in ascending item-id order regardless of the
	// order the lines were submitted in.
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("DecrementStock", ctx, loItemID, 1).Return(nil).Once(),
		itemRepo.On("DecrementStock", ctx, hiItemID, 2).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	itemRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)

	// The persisted aggregate carries the computed total: 2×10.00 + 1×25.00.
	addCall := orderRepo.Calls[0]
	created := addCall.Arguments[1].(*order.Order)
	assert.Equal(t, order.Pending, created.Status())
	assert.Equal(t, int64(4500), created.TotalPrice().Cents())
	assert.Len(t, created.Lines(), 2)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly

	factory := new(MockCreateUoWFactory)
	handler := commands.NewCreateOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "Ada Lovelace", order.Details{},
		[]commands.LineInput{{ItemID: kernel.NewUUID(), Quantity: 1, UnitPriceCents: 1000}})
	require.NoError(t, err)

	uow := new(MockCreateUoW)
	factory := new(MockCreateUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewCreateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "begin error")
}

func TestCreateOrderCommandHandler_Handle_AddOrderError(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "Ada Lovelace", order.Details{},
		[]commands.LineInput{{ItemID: kernel.NewUUID(), Quantity: 1, UnitPriceCents: 1000}})
	require.NoError(t, err)

	orderRepo := new(MockCreateOrderRepository)
	uow := new(MockCreateUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Return(errors.New("database error")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "database error")
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateOrderCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()

	loItemID, hiItemID := sortedPair()

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "Ada Lovelace", order.Details{},
		[]commands.LineInput{
			{ItemID: loItemID, Quantity: 1, UnitPriceCents: 1000},
			{ItemID: hiItemID, Quantity: 3, UnitPriceCents: 500},
		})
	require.NoError(t, err)

	orderRepo := new(MockCreateOrderRepository)
	itemRepo := new(MockCreateItemRepository)
	uow := new(MockCreateUoW)

	// The second decrement fails; the whole transaction is rolled back,
	// including the first line's decrement and the order insert.
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("DecrementStock", ctx, loItemID, 1).Return(nil).Once(),
		itemRepo.On("DecrementStock", ctx, hiItemID, 3).Return(item.ErrInsufficientStock).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, item.ErrInsufficientStock)
	uow.AssertNotCalled(t, "Commit", ctx)
	itemRepo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnknownItem(t *testing.T) {
	ctx := t.Context()

	itemID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "Ada Lovelace", order.Details{},
		[]commands.LineInput{{ItemID: itemID, Quantity: 1, UnitPriceCents: 1000}})
	require.NoError(t, err)

	orderRepo := new(MockCreateOrderRepository)
	itemRepo := new(MockCreateItemRepository)
	uow := new(MockCreateUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("DecrementStock", ctx, itemID, 1).Return(errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()

	itemID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "Ada Lovelace", order.Details{},
		[]commands.LineInput{{ItemID: itemID, Quantity: 1, UnitPriceCents: 1000}})
	require.NoError(t, err)

	orderRepo := new(MockCreateOrderRepository)
	itemRepo := new(MockCreateItemRepository)
	uow := new(MockCreateUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("DecrementStock", ctx, itemID, 1).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
}
