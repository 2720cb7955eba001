package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// レストラン・メニュー閲覧のプロキシ
type CatalogUsecase struct {
	api repo.CatalogAPI
}

func NewCatalogUsecase(api repo.CatalogAPI) *CatalogUsecase {
	return &CatalogUsecase{api: api}
}

func (u *CatalogUsecase) ListRestaurants(ctx context.Context) ([]model.Restaurant, error) {
	list, err := u.api.ListRestaurants(ctx)
	if err != nil {
		return nil, mapAPIError(err)
	}
	return list, nil
}

func (u *CatalogUsecase) GetRestaurant(ctx context.Context, restaurantID string) (model.Restaurant, error) {
	if restaurantID == "" {
		return model.Restaurant{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	r, err := u.api.FindRestaurant(ctx, restaurantID)
	if err != nil {
		return model.Restaurant{}, mapAPIError(err)
	}
	return r, nil
}

func (u *CatalogUsecase) ListMenu(ctx context.Context, restaurantID string) ([]model.MenuItem, error) {
	if restaurantID == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	items, err := u.api.ListMenu(ctx, restaurantID)
	if err != nil {
		return nil, mapAPIError(err)
	}
	return items, nil
}
