package impl

import (
	"context"
	"testing"

	"pizzeria/internal/domain/entity"
	domainerrors "pizzeria/internal/domain/errors"
	"pizzeria/internal/domain/repository"
	"pizzeria/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func assertValidationError(t *testing.T, err error) {
	t.Helper()

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestOrderService_PlaceOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	user := newTestUser("mario", false)
	input := &usecase.PlaceOrderInput{Quantity: 2, PizzaSize: entity.SizeLarge}

	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, order *entity.Order) {
			order.ID = uuid.New()
		}).
		Return(nil)

	order, err := fx.service.PlaceOrder(ctx, user, input)

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, user.ID, order.UserID)
	assert.Equal(t, 2, order.Quantity)
	assert.Equal(t, entity.SizeLarge, order.PizzaSize)
	assert.Equal(t, entity.DefaultOrderStatus, order.Status)
}

func TestOrderService_PlaceOrder_DefaultSize(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	user := newTestUser("mario", false)
	input := &usecase.PlaceOrderInput{Quantity: 1}

	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	order, err := fx.service.PlaceOrder(ctx, user, input)

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultPizzaSize, order.PizzaSize)
}

func TestOrderService_PlaceOrder_InvalidQuantity(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	user := newTestUser("mario", false)
	input := &usecase.PlaceOrderInput{Quantity: 0, PizzaSize: entity.SizeSmall}

	order, err := fx.service.PlaceOrder(ctx, user, input)

	require.Error(t, err)
	assert.Nil(t, order)
	assertValidationError(t, err)
}

func TestOrderService_PlaceOrder_UnknownSize(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	user := newTestUser("mario", false)
	input := &usecase.PlaceOrderInput{Quantity: 1, PizzaSize: entity.PizzaSize("FAMILY")}

	order, err := fx.service.PlaceOrder(ctx, user, input)

	require.Error(t, err)
	assert.Nil(t, order)
	assertValidationError(t, err)
}

func TestOrderService_ListAllOrders_Staff(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	staff := newTestUser("luigi", true)
	expected := []*entity.Order{
		{ID: uuid.New(), Quantity: 1, PizzaSize: entity.SizeSmall, Status: entity.StatusPending},
		{ID: uuid.New(), Quantity: 3, PizzaSize: entity.SizeLarge, Status: entity.StatusDelivered},
	}

	fx.orderRepo.EXPECT().FindAll(ctx).Return(expected, nil)

	orders, err := fx.service.ListAllOrders(ctx, staff)

	require.NoError(t, err)
	assert.Equal(t, expected, orders)
}

func TestOrderService_ListAllOrders_NonStaff(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	user := newTestUser("mario", false)

	orders, err := fx.service.ListAllOrders(ctx, user)

	require.Error(t, err)
	assert.Nil(t, orders)
	assert.True(t, errors.Is(err, domainerrors.ErrStaffOnly))
}

func TestOrderService_GetOrder_Staff(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	staff := newTestUser("luigi", true)
	orderID := uuid.New()
	expected := &entity.Order{ID: orderID, Quantity: 2, PizzaSize: entity.SizeMedium, Status: entity.StatusPending}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(expected, nil)

	order, err := fx.service.GetOrder(ctx, staff, orderID)

	require.NoError(t, err)
	assert.Equal(t, expected, order)
}

func TestOrderService_GetOrder_NonStaff(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	user := newTestUser("mario", false)

	order, err := fx.service.GetOrder(ctx, user, uuid.New())

	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrStaffOnly))
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	staff := newTestUser("luigi", true)
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	order, err := fx.service.GetOrder(ctx, staff, orderID)

	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_ListMyOrders(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	user := newTestUser("mario", false)
	expected := []*entity.Order{
		{ID: uuid.New(), UserID: user.ID, Quantity: 1, PizzaSize: entity.SizeSmall, Status: entity.StatusPending},
	}

	fx.orderRepo.EXPECT().FindByUserID(ctx, user.ID).Return(expected, nil)

	orders, err := fx.service.ListMyOrders(ctx, user)

	require.NoError(t, err)
	assert.Equal(t, expected, orders)
}

func TestOrderService_GetMyOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	user := newTestUser("mario", false)
	orderID := uuid.New()
	expected := &entity.Order{ID: orderID, UserID: user.ID, Quantity: 1, PizzaSize: entity.SizeSmall, Status: entity.StatusPending}

	fx.orderRepo.EXPECT().FindByIDAndUserID(ctx, orderID, user.ID).Return(expected, nil)

	order, err := fx.service.GetMyOrder(ctx, user, orderID)

	require.NoError(t, err)
	assert.Equal(t, expected, order)
}

func TestOrderService_GetMyOrder_OtherUsersOrderLooksAbsent(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	user := newTestUser("mario", false)
	orderID := uuid.New()

	// The owner-keyed query misses, so someone else's order reads as not found.
	fx.orderRepo.EXPECT().FindByIDAndUserID(ctx, orderID, user.ID).Return(nil, repository.ErrOrderNotFound)

	order, err := fx.service.GetMyOrder(ctx, user, orderID)

	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_UpdateOrder_Owner(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	user := newTestUser("mario", false)
	orderID := uuid.New()
	existing := &entity.Order{ID: orderID, UserID: user.ID, Quantity: 1, PizzaSize: entity.SizeSmall, Status: entity.StatusPending}
	input := &usecase.UpdateOrderInput{Quantity: 4, PizzaSize: entity.SizeExtraLarge}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(existing, nil)
	fx.orderRepo.EXPECT().Update(ctx, existing).Return(nil)

	order, err := fx.service.UpdateOrder(ctx, user, orderID, input)

	require.NoError(t, err)
	assert.Equal(t, 4, order.Quantity)
	assert.Equal(t, entity.SizeExtraLarge, order.PizzaSize)
	assert.Equal(t, entity.StatusPending, order.Status)
}

func TestOrderService_UpdateOrder_Staff(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	staff := newTestUser("luigi", true)
	orderID := uuid.New()
	existing := &entity.Order{ID: orderID, UserID: uuid.New(), Quantity: 1, PizzaSize: entity.SizeSmall, Status: entity.StatusPending}
	input := &usecase.UpdateOrderInput{Quantity: 2, PizzaSize: entity.SizeMedium}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(existing, nil)
	fx.orderRepo.EXPECT().Update(ctx, existing).Return(nil)

	order, err := fx.service.UpdateOrder(ctx, staff, orderID, input)

	require.NoError(t, err)
	assert.Equal(t, 2, order.Quantity)
}

func TestOrderService_UpdateOrder_NotOwnerNotStaff(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	user := newTestUser("mario", false)
	orderID := uuid.New()
	existing := &entity.Order{ID: orderID, UserID: uuid.New(), Quantity: 1, PizzaSize: entity.SizeSmall, Status: entity.StatusPending}
	input := &usecase.UpdateOrderInput{Quantity: 2, PizzaSize: entity.SizeMedium}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(existing, nil)

	order, err := fx.service.UpdateOrder(ctx, user, orderID, input)

	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderOwnership))
}

func TestOrderService_UpdateOrder_NotFoundBeforeMutation(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	user := newTestUser("mario", false)
	orderID := uuid.New()
	input := &usecase.UpdateOrderInput{Quantity: 2, PizzaSize: entity.SizeMedium}

	// No Update expectation: a missing order must fail before any write.
	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	order, err := fx.service.UpdateOrder(ctx, user, orderID, input)

	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_UpdateOrder_InvalidInput(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	user := newTestUser("mario", false)
	input := &usecase.UpdateOrderInput{Quantity: -1, PizzaSize: entity.SizeMedium}

	order, err := fx.service.UpdateOrder(ctx, user, uuid.New(), input)

	require.Error(t, err)
	assert.Nil(t, order)
	assertValidationError(t, err)
}

func TestOrderService_UpdateOrderStatus_Staff(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	staff := newTestUser("luigi", true)
	orderID := uuid.New()
	existing := &entity.Order{ID: orderID, UserID: uuid.New(), Quantity: 1, PizzaSize: entity.SizeSmall, Status: entity.StatusPending}
	input := &usecase.UpdateOrderStatusInput{Status: entity.StatusInTransit}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(existing, nil)
	fx.orderRepo.EXPECT().Update(ctx, existing).Return(nil)

	order, err := fx.service.UpdateOrderStatus(ctx, staff, orderID, input)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusInTransit, order.Status)
}

func TestOrderService_UpdateOrderStatus_NonStaff(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	user := newTestUser("mario", false)
	input := &usecase.UpdateOrderStatusInput{Status: entity.StatusInTransit}

	order, err := fx.service.UpdateOrderStatus(ctx, user, uuid.New(), input)

	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrStaffOnly))
}

func TestOrderService_UpdateOrderStatus_UnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	staff := newTestUser("luigi", true)
	input := &usecase.UpdateOrderStatusInput{Status: entity.OrderStatus("EATEN")}

	order, err := fx.service.UpdateOrderStatus(ctx, staff, uuid.New(), input)

	require.Error(t, err)
	assert.Nil(t, order)
	assertValidationError(t, err)
}

func TestOrderService_UpdateOrderStatus_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	staff := newTestUser("luigi", true)
	orderID := uuid.New()
	input := &usecase.UpdateOrderStatusInput{Status: entity.StatusDelivered}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	order, err := fx.service.UpdateOrderStatus(ctx, staff, orderID, input)

	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_DeleteOrder_Owner(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	user := newTestUser("mario", false)
	orderID := uuid.New()
	existing := &entity.Order{ID: orderID, UserID: user.ID, Quantity: 1, PizzaSize: entity.SizeSmall, Status: entity.StatusPending}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(existing, nil)
	fx.orderRepo.EXPECT().Delete(ctx, orderID).Return(nil)

	err := fx.service.DeleteOrder(ctx, user, orderID)

	require.NoError(t, err)
}

func TestOrderService_DeleteOrder_NotOwnerNotStaff(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	user := newTestUser("mario", false)
	orderID := uuid.New()
	existing := &entity.Order{ID: orderID, UserID: uuid.New(), Quantity: 1, PizzaSize: entity.SizeSmall, Status: entity.StatusPending}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(existing, nil)

	err := fx.service.DeleteOrder(ctx, user, orderID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderOwnership))
}

func TestOrderService_DeleteOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	user := newTestUser("mario", false)
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	err := fx.service.DeleteOrder(ctx, user, orderID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}
