package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// OrderUsecase は注文の閲覧と、店側ダッシュボードのステータス更新。
type OrderUsecase struct {
	orders  repo.OrderAPI
	catalog repo.CatalogAPI
}

func NewOrderUsecase(orders repo.OrderAPI, catalog repo.CatalogAPI) *OrderUsecase {
	return &OrderUsecase{orders: orders, catalog: catalog}
}

func (u *OrderUsecase) ListMine(ctx context.Context, userID string) ([]model.Order, error) {
	if userID == "" {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	list, err := u.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, mapAPIError(err)
	}
	return list, nil
}

// 店の注文一覧（オーナーのみ）
func (u *OrderUsecase) ListForRestaurant(ctx context.Context, userID string, restaurantID string) ([]model.Order, error) {
	if userID == "" {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if restaurantID == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := u.ensureOwner(ctx, userID, restaurantID); err != nil {
		return nil, err
	}

	list, err := u.orders.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, mapAPIError(err)
	}
	return list, nil
}

// ステータス更新（オーナーのみ）。
// 許可された遷移だけリモートに流す。
func (u *OrderUsecase) UpdateStatus(ctx context.Context, userID string, orderID string, next model.OrderStatus) (model.Order, error) {
	if userID == "" {
		return model.Order{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID == "" {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if !next.Valid() {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	o, err := u.orders.FindByID(ctx, orderID)
	if err != nil {
		return model.Order{}, mapAPIError(err)
	}

	if err := u.ensureOwner(ctx, userID, o.RestaurantID); err != nil {
		return model.Order{}, err
	}

	if !o.Status.CanTransitionTo(next) {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid status transition")
	}

	updated, err := u.orders.UpdateStatus(ctx, orderID, next)
	if err != nil {
		return model.Order{}, mapAPIError(err)
	}
	return updated, nil
}

// 店のオーナーかどうか。他人の店は403
func (u *OrderUsecase) ensureOwner(ctx context.Context, userID string, restaurantID string) error {
	r, err := u.catalog.FindRestaurant(ctx, restaurantID)
	if err != nil {
		return mapAPIError(err)
	}
	if r.UserID != userID {
		return NewHTTPError(http.StatusForbidden, "forbidden")
	}
	return nil
}
