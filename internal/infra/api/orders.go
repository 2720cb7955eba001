package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type OrderClient struct {
	c *Client
}

func NewOrderClient(c *Client) *OrderClient {
	return &OrderClient{c: c}
}

func (o *OrderClient) Create(ctx context.Context, in repo.CreateOrderInput) (model.Order, error) {
	var created model.Order
	err := o.c.doJSON(ctx, http.MethodPost, "/orders", in, &created)
	if err != nil {
		return model.Order{}, err
	}
	return created, nil
}

func (o *OrderClient) FindByID(ctx context.Context, orderID string) (model.Order, error) {
	var out model.Order
	err := o.c.doJSON(ctx, http.MethodGet, "/orders/"+url.PathEscape(orderID), nil, &out)
	if err != nil {
		return model.Order{}, err
	}
	return out, nil
}

func (o *OrderClient) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	var list []model.Order
	err := o.c.doJSON(ctx, http.MethodGet, "/orders/user/"+url.PathEscape(userID), nil, &list)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []model.Order{}
	}
	return list, nil
}

func (o *OrderClient) ListByRestaurant(ctx context.Context, restaurantID string) ([]model.Order, error) {
	var list []model.Order
	err := o.c.doJSON(ctx, http.MethodGet, "/orders/restaurant/"+url.PathEscape(restaurantID), nil, &list)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []model.Order{}
	}
	return list, nil
}

type updateStatusRequest struct {
	Status model.OrderStatus `json:"status"`
}

func (o *OrderClient) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) (model.Order, error) {
	path := fmt.Sprintf("/orders/%s/status", url.PathEscape(orderID))

	var updated model.Order
	err := o.c.doJSON(ctx, http.MethodPut, path, updateStatusRequest{Status: status}, &updated)
	if err != nil {
		return model.Order{}, err
	}
	return updated, nil
}
