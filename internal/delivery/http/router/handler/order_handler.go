package handler

import (
	"log/slog"
	"net/http"
	"time"

	"pizzeria/internal/delivery/http/middleware"
	"pizzeria/internal/delivery/http/response"
	"pizzeria/internal/domain/entity"
	domainerrors "pizzeria/internal/domain/errors"
	"pizzeria/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PlaceOrderRequest is the payload for placing an order.
// The size defaults to SMALL when omitted.
type PlaceOrderRequest struct {
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	PizzaSize string `json:"pizza_size" validate:"omitempty,oneof=SMALL MEDIUM LARGE EXTRA-LARGE"`
}

// UpdateOrderRequest is the payload for replacing an order's details.
type UpdateOrderRequest struct {
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	PizzaSize string `json:"pizza_size" validate:"required,oneof=SMALL MEDIUM LARGE EXTRA-LARGE"`
}

// UpdateOrderStatusRequest is the payload for moving an order between statuses.
type UpdateOrderStatusRequest struct {
	OrderStatus string `json:"order_status" validate:"required,oneof=PENDING IN-TRANSIT DELIVERED CANCELLED"`
}

// OrderResponse is the public view of an order.
type OrderResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Quantity    int       `json:"quantity"`
	PizzaSize   string    `json:"pizza_size"`
	OrderStatus string    `json:"order_status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toOrderResponse(order *entity.Order) *OrderResponse {
	return &OrderResponse{
		ID:          order.ID,
		UserID:      order.UserID,
		Quantity:    order.Quantity,
		PizzaSize:   order.PizzaSize.String(),
		OrderStatus: order.Status.String(),
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
}

func toOrderResponses(orders []*entity.Order) []*OrderResponse {
	responses := make([]*OrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, toOrderResponse(order))
	}

	return responses
}

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// PlaceOrder handles the order creation request.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.PlaceOrder(c.Request().Context(), user, &usecase.PlaceOrderInput{
		Quantity:  req.Quantity,
		PizzaSize: entity.PizzaSize(req.PizzaSize),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toOrderResponse(order), "Order placed successfully")
}

// ListAllOrders returns every order in the system. Staff only.
func (h *OrderHandler) ListAllOrders(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	orders, err := h.uc.ListAllOrders(c.Request().Context(), user)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponses(orders), "")
}

// GetOrder returns any order by its ID. Staff only.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	orderID, err := parseOrderID(c)
	if err != nil {
		return err
	}

	order, err := h.uc.GetOrder(c.Request().Context(), user, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order), "")
}

// ListMyOrders returns the caller's own orders.
func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	orders, err := h.uc.ListMyOrders(c.Request().Context(), user)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponses(orders), "")
}

// GetMyOrder returns one of the caller's own orders.
func (h *OrderHandler) GetMyOrder(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	orderID, err := parseOrderID(c)
	if err != nil {
		return err
	}

	order, err := h.uc.GetMyOrder(c.Request().Context(), user, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order), "")
}

// UpdateOrder replaces an order's quantity and size. Owner or staff.
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	orderID, err := parseOrderID(c)
	if err != nil {
		return err
	}

	var req UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.UpdateOrder(c.Request().Context(), user, orderID, &usecase.UpdateOrderInput{
		Quantity:  req.Quantity,
		PizzaSize: entity.PizzaSize(req.PizzaSize),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order), "Order updated successfully")
}

// UpdateOrderStatus moves an order between fulfillment statuses. Staff only.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	orderID, err := parseOrderID(c)
	if err != nil {
		return err
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.UpdateOrderStatus(c.Request().Context(), user, orderID, &usecase.UpdateOrderStatusInput{
		Status: entity.OrderStatus(req.OrderStatus),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order), "Order status updated successfully")
}

// DeleteOrder removes an order. Owner or staff.
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	orderID, err := parseOrderID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteOrder(c.Request().Context(), user, orderID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": orderID.String()}, "Order deleted successfully")
}

// parseOrderID reads the :id path parameter as a UUID.
func parseOrderID(c echo.Context) (uuid.UUID, error) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("order id must be a valid UUID")
	}

	return orderID, nil
}
