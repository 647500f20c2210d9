// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"pizzeria/internal/domain/entity"
	domainerrors "pizzeria/internal/domain/errors"
	"pizzeria/internal/domain/repository"
	"pizzeria/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(orderRepo repository.OrderRepository, logger *slog.Logger) usecase.OrderUsecase {
	return &orderService{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// PlaceOrder creates a new order owned by the caller.
func (srv *orderService) PlaceOrder(ctx context.Context, user *entity.User, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	size := input.PizzaSize
	if size == "" {
		size = entity.DefaultPizzaSize
	}
	if err := validateOrderFields(input.Quantity, size); err != nil {
		return nil, err
	}

	order := &entity.Order{
		UserID:    user.ID,
		Quantity:  input.Quantity,
		PizzaSize: size,
		Status:    entity.DefaultOrderStatus,
	}

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		srv.logger.Error("Failed to place order", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to place order")
	}

	srv.logger.Debug("Order placed", slog.Any("orderID", order.ID), slog.Any("userID", user.ID))

	return order, nil
}

// ListAllOrders returns every order in the system. Staff only.
func (srv *orderService) ListAllOrders(ctx context.Context, user *entity.User) ([]*entity.Order, error) {
	if !user.IsStaff {
		return nil, domainerrors.ErrStaffOnly.WrapMessage("list all orders")
	}

	orders, err := srv.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list all orders")
	}

	return orders, nil
}

// GetOrder returns any order by its raw ID. Staff only.
func (srv *orderService) GetOrder(ctx context.Context, user *entity.User, orderID uuid.UUID) (*entity.Order, error) {
	if !user.IsStaff {
		return nil, domainerrors.ErrStaffOnly.WrapMessage("get order by id")
	}

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("get order by id")
		}

		return nil, errors.Wrap(err, "failed to get order")
	}

	return order, nil
}

// ListMyOrders returns the caller's own orders.
func (srv *orderService) ListMyOrders(ctx context.Context, user *entity.User) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user orders")
	}

	return orders, nil
}

// GetMyOrder returns one of the caller's own orders.
// The owner-keyed lookup makes other users' orders look absent.
func (srv *orderService) GetMyOrder(ctx context.Context, user *entity.User, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByIDAndUserID(ctx, orderID, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("get my order")
		}

		return nil, errors.Wrap(err, "failed to get user order")
	}

	return order, nil
}

// UpdateOrder changes quantity and size. Permitted for the owner or staff.
// The order is loaded first: a missing ID reports not found before any
// mutation, and an existing order the caller cannot touch reports ownership.
func (srv *orderService) UpdateOrder(ctx context.Context, user *entity.User, orderID uuid.UUID, input *usecase.UpdateOrderInput) (*entity.Order, error) {
	if err := validateOrderFields(input.Quantity, input.PizzaSize); err != nil {
		return nil, err
	}

	order, err := srv.loadForWrite(ctx, user, orderID)
	if err != nil {
		return nil, err
	}

	order.Quantity = input.Quantity
	order.PizzaSize = input.PizzaSize

	if err := srv.orderRepo.Update(ctx, order); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("update order")
		}

		return nil, errors.Wrap(err, "failed to update order")
	}

	srv.logger.Debug("Order updated", slog.Any("orderID", order.ID), slog.Any("userID", user.ID))

	return order, nil
}

// UpdateOrderStatus changes the fulfillment status. Staff only.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, user *entity.User, orderID uuid.UUID, input *usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	if !user.IsStaff {
		return nil, domainerrors.ErrStaffOnly.WrapMessage("update order status")
	}
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown order status: " + input.Status.String())
	}

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("update order status")
		}

		return nil, errors.Wrap(err, "failed to load order for status update")
	}

	order.Status = input.Status

	if err := srv.orderRepo.Update(ctx, order); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("update order status")
		}

		return nil, errors.Wrap(err, "failed to update order status")
	}

	srv.logger.Info("Order status updated",
		slog.Any("orderID", order.ID),
		slog.String("status", order.Status.String()),
		slog.Any("staffID", user.ID),
	)

	return order, nil
}

// DeleteOrder removes an order. Permitted for the owner or staff.
func (srv *orderService) DeleteOrder(ctx context.Context, user *entity.User, orderID uuid.UUID) error {
	if _, err := srv.loadForWrite(ctx, user, orderID); err != nil {
		return err
	}

	if err := srv.orderRepo.Delete(ctx, orderID); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound.WrapMessage("delete order")
		}

		return errors.Wrap(err, "failed to delete order")
	}

	srv.logger.Debug("Order deleted", slog.Any("orderID", orderID), slog.Any("userID", user.ID))

	return nil
}

// loadForWrite fetches an order and applies the owner-or-staff write policy.
func (srv *orderService) loadForWrite(ctx context.Context, user *entity.User, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("order lookup")
		}

		return nil, errors.Wrap(err, "failed to load order")
	}

	if order.UserID != user.ID && !user.IsStaff {
		return nil, domainerrors.ErrOrderOwnership.WrapMessage("write access denied")
	}

	return order, nil
}

func validateOrderFields(quantity int, size entity.PizzaSize) error {
	if quantity <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("quantity must be positive")
	}
	if !size.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown pizza size: " + size.String())
	}

	return nil
}
