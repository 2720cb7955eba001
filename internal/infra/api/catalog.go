package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type CatalogClient struct {
	c *Client
}

func NewCatalogClient(c *Client) *CatalogClient {
	return &CatalogClient{c: c}
}

func (cc *CatalogClient) ListRestaurants(ctx context.Context) ([]model.Restaurant, error) {
	var list []model.Restaurant
	err := cc.c.doJSON(ctx, http.MethodGet, "/restaurants", nil, &list)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []model.Restaurant{}
	}
	return list, nil
}

func (cc *CatalogClient) FindRestaurant(ctx context.Context, restaurantID string) (model.Restaurant, error) {
	var r model.Restaurant
	err := cc.c.doJSON(ctx, http.MethodGet, "/restaurants/"+url.PathEscape(restaurantID), nil, &r)
	if err != nil {
		return model.Restaurant{}, err
	}
	return r, nil
}

func (cc *CatalogClient) ListMenu(ctx context.Context, restaurantID string) ([]model.MenuItem, error) {
	var items []model.MenuItem
	err := cc.c.doJSON(ctx, http.MethodGet, "/menu-items/restaurant/"+url.PathEscape(restaurantID), nil, &items)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.MenuItem{}
	}
	return items, nil
}

func (cc *CatalogClient) FindMenuItem(ctx context.Context, itemID string) (model.MenuItem, error) {
	var item model.MenuItem
	err := cc.c.doJSON(ctx, http.MethodGet, "/menu-items/"+url.PathEscape(itemID), nil, &item)
	if err != nil {
		return model.MenuItem{}, err
	}
	return item, nil
}

func (cc *CatalogClient) CreateMenuItem(ctx context.Context, in repo.MenuItemInput) (model.MenuItem, error) {
	var created model.MenuItem
	err := cc.c.doJSON(ctx, http.MethodPost, "/menu-items", in, &created)
	if err != nil {
		return model.MenuItem{}, err
	}
	return created, nil
}

func (cc *CatalogClient) UpdateMenuItem(ctx context.Context, itemID string, in repo.MenuItemInput) (model.MenuItem, error) {
	var updated model.MenuItem
	err := cc.c.doJSON(ctx, http.MethodPut, "/menu-items/"+url.PathEscape(itemID), in, &updated)
	if err != nil {
		return model.MenuItem{}, err
	}
	return updated, nil
}

type availabilityRequest struct {
	Disponivel bool `json:"disponivel"`
}

func (cc *CatalogClient) SetMenuItemAvailability(ctx context.Context, itemID string, disponivel bool) (model.MenuItem, error) {
	path := fmt.Sprintf("/menu-items/%s/availability", url.PathEscape(itemID))

	var updated model.MenuItem
	err := cc.c.doJSON(ctx, http.MethodPut, path, availabilityRequest{Disponivel: disponivel}, &updated)
	if err != nil {
		return model.MenuItem{}, err
	}
	return updated, nil
}

func (cc *CatalogClient) DeleteMenuItem(ctx context.Context, itemID string) error {
	return cc.c.doJSON(ctx, http.MethodDelete, "/menu-items/"+url.PathEscape(itemID), nil, nil)
}
