package handler

import (
	"net/http"
	"testing"

	"pizzeria/internal/domain/entity"
	domainerrors "pizzeria/internal/domain/errors"
	mockUsecase "pizzeria/internal/mocks/usecase"
	"pizzeria/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderHandler_PlaceOrder_Success(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(e, http.MethodPost, "/orders/order", `{"quantity":2,"pizza_size":"LARGE"}`)
	user := newHandlerTestUser("mario", false)
	setCurrentUser(c, user)

	uc.EXPECT().
		PlaceOrder(mock.Anything, user, &usecase.PlaceOrderInput{Quantity: 2, PizzaSize: entity.SizeLarge}).
		Return(&entity.Order{
			ID:        uuid.New(),
			UserID:    user.ID,
			Quantity:  2,
			PizzaSize: entity.SizeLarge,
			Status:    entity.StatusPending,
		}, nil)

	err := h.PlaceOrder(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"pizza_size":"LARGE"`)
	assert.Contains(t, rec.Body.String(), `"order_status":"PENDING"`)
}

func TestOrderHandler_PlaceOrder_InvalidQuantity(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(e, http.MethodPost, "/orders/order", `{"quantity":0,"pizza_size":"LARGE"}`)
	setCurrentUser(c, newHandlerTestUser("mario", false))

	err := h.PlaceOrder(c)

	require.Error(t, err)
	renderError(err, c)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestOrderHandler_PlaceOrder_NoCurrentUser(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(e, http.MethodPost, "/orders/order", `{"quantity":1}`)

	err := h.PlaceOrder(c)

	require.Error(t, err)
	renderError(err, c)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOrderHandler_ListAllOrders_Success(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(e, http.MethodGet, "/orders", "")
	staff := newHandlerTestUser("luigi", true)
	setCurrentUser(c, staff)

	uc.EXPECT().
		ListAllOrders(mock.Anything, staff).
		Return([]*entity.Order{
			{ID: uuid.New(), Quantity: 1, PizzaSize: entity.SizeSmall, Status: entity.StatusPending},
			{ID: uuid.New(), Quantity: 2, PizzaSize: entity.SizeMedium, Status: entity.StatusDelivered},
		}, nil)

	err := h.ListAllOrders(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"order_status":"DELIVERED"`)
}

func TestOrderHandler_ListAllOrders_StaffOnly(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(e, http.MethodGet, "/orders", "")
	user := newHandlerTestUser("mario", false)
	setCurrentUser(c, user)

	uc.EXPECT().
		ListAllOrders(mock.Anything, user).
		Return(nil, domainerrors.ErrStaffOnly.WrapMessage("list all orders"))

	err := h.ListAllOrders(c)

	require.Error(t, err)
	renderError(err, c)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "STAFF_ONLY")
}

func TestOrderHandler_GetOrder_InvalidID(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(e, http.MethodGet, "/orders/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	setCurrentUser(c, newHandlerTestUser("luigi", true))

	err := h.GetOrder(c)

	require.Error(t, err)
	renderError(err, c)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderHandler_GetMyOrder_Success(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(uc, newDiscardLogger())

	user := newHandlerTestUser("mario", false)
	orderID := uuid.New()

	c, rec := newJSONContext(e, http.MethodGet, "/orders/user/order/"+orderID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(orderID.String())
	setCurrentUser(c, user)

	uc.EXPECT().
		GetMyOrder(mock.Anything, user, orderID).
		Return(&entity.Order{
			ID:        orderID,
			UserID:    user.ID,
			Quantity:  1,
			PizzaSize: entity.SizeSmall,
			Status:    entity.StatusPending,
		}, nil)

	err := h.GetMyOrder(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), orderID.String())
}

func TestOrderHandler_GetMyOrder_NotFound(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(uc, newDiscardLogger())

	user := newHandlerTestUser("mario", false)
	orderID := uuid.New()

	c, rec := newJSONContext(e, http.MethodGet, "/orders/user/order/"+orderID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(orderID.String())
	setCurrentUser(c, user)

	uc.EXPECT().
		GetMyOrder(mock.Anything, user, orderID).
		Return(nil, domainerrors.ErrOrderNotFound.WrapMessage("get my order"))

	err := h.GetMyOrder(c)

	require.Error(t, err)
	renderError(err, c)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "ORDER_NOT_FOUND")
}

func TestOrderHandler_UpdateOrder_Success(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(uc, newDiscardLogger())

	user := newHandlerTestUser("mario", false)
	orderID := uuid.New()

	c, rec := newJSONContext(e, http.MethodPut, "/orders/order/update/"+orderID.String(), `{"quantity":3,"pizza_size":"MEDIUM"}`)
	c.SetParamNames("id")
	c.SetParamValues(orderID.String())
	setCurrentUser(c, user)

	uc.EXPECT().
		UpdateOrder(mock.Anything, user, orderID, &usecase.UpdateOrderInput{Quantity: 3, PizzaSize: entity.SizeMedium}).
		Return(&entity.Order{
			ID:        orderID,
			UserID:    user.ID,
			Quantity:  3,
			PizzaSize: entity.SizeMedium,
			Status:    entity.StatusPending,
		}, nil)

	err := h.UpdateOrder(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"quantity":3`)
}

func TestOrderHandler_UpdateOrder_OwnershipViolation(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(uc, newDiscardLogger())

	user := newHandlerTestUser("mario", false)
	orderID := uuid.New()

	c, rec := newJSONContext(e, http.MethodPut, "/orders/order/update/"+orderID.String(), `{"quantity":3,"pizza_size":"MEDIUM"}`)
	c.SetParamNames("id")
	c.SetParamValues(orderID.String())
	setCurrentUser(c, user)

	uc.EXPECT().
		UpdateOrder(mock.Anything, user, orderID, mock.AnythingOfType("*usecase.UpdateOrderInput")).
		Return(nil, domainerrors.ErrOrderOwnership.WrapMessage("write access denied"))

	err := h.UpdateOrder(c)

	require.Error(t, err)
	renderError(err, c)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "ORDER_OWNERSHIP_VIOLATION")
}

func TestOrderHandler_UpdateOrderStatus_Success(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(uc, newDiscardLogger())

	staff := newHandlerTestUser("luigi", true)
	orderID := uuid.New()

	c, rec := newJSONContext(e, http.MethodPatch, "/orders/order/update/"+orderID.String(), `{"order_status":"IN-TRANSIT"}`)
	c.SetParamNames("id")
	c.SetParamValues(orderID.String())
	setCurrentUser(c, staff)

	uc.EXPECT().
		UpdateOrderStatus(mock.Anything, staff, orderID, &usecase.UpdateOrderStatusInput{Status: entity.StatusInTransit}).
		Return(&entity.Order{
			ID:        orderID,
			UserID:    uuid.New(),
			Quantity:  1,
			PizzaSize: entity.SizeSmall,
			Status:    entity.StatusInTransit,
		}, nil)

	err := h.UpdateOrderStatus(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"order_status":"IN-TRANSIT"`)
}

func TestOrderHandler_UpdateOrderStatus_UnknownStatus(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(uc, newDiscardLogger())

	orderID := uuid.New()

	c, rec := newJSONContext(e, http.MethodPatch, "/orders/order/update/"+orderID.String(), `{"order_status":"EATEN"}`)
	c.SetParamNames("id")
	c.SetParamValues(orderID.String())
	setCurrentUser(c, newHandlerTestUser("luigi", true))

	err := h.UpdateOrderStatus(c)

	require.Error(t, err)
	renderError(err, c)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderHandler_DeleteOrder_Success(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(uc, newDiscardLogger())

	user := newHandlerTestUser("mario", false)
	orderID := uuid.New()

	c, rec := newJSONContext(e, http.MethodDelete, "/orders/order/delete/"+orderID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(orderID.String())
	setCurrentUser(c, user)

	uc.EXPECT().
		DeleteOrder(mock.Anything, user, orderID).
		Return(nil)

	err := h.DeleteOrder(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), orderID.String())
}
