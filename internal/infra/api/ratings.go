package api

import (
	"context"
	"net/http"
	"net/url"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type RatingClient struct {
	c *Client
}

func NewRatingClient(c *Client) *RatingClient {
	return &RatingClient{c: c}
}

func (r *RatingClient) Create(ctx context.Context, in repo.CreateRatingInput) (model.Rating, error) {
	var created model.Rating
	err := r.c.doJSON(ctx, http.MethodPost, "/ratings", in, &created)
	if err != nil {
		return model.Rating{}, err
	}
	return created, nil
}

func (r *RatingClient) ListByUser(ctx context.Context, userID string) ([]model.Rating, error) {
	var list []model.Rating
	err := r.c.doJSON(ctx, http.MethodGet, "/ratings/user/"+url.PathEscape(userID), nil, &list)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []model.Rating{}
	}
	return list, nil
}

func (r *RatingClient) FindByOrder(ctx context.Context, orderID string) (model.Rating, error) {
	var out model.Rating
	err := r.c.doJSON(ctx, http.MethodGet, "/ratings/order/"+url.PathEscape(orderID), nil, &out)
	if err != nil {
		return model.Rating{}, err
	}
	return out, nil
}
