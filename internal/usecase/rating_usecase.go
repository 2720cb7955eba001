package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// RatingUsecase は配達済み注文への評価。
// 評価できるのは自分の注文、注文1件につき1回だけ。
type RatingUsecase struct {
	ratings repo.RatingAPI
	orders  repo.OrderAPI
}

func NewRatingUsecase(ratings repo.RatingAPI, orders repo.OrderAPI) *RatingUsecase {
	return &RatingUsecase{ratings: ratings, orders: orders}
}

type CreateRatingRequest struct {
	OrderID    string `json:"orderId"`
	Nota       int64  `json:"nota"`
	Comentario string `json:"comentario"`
}

func (u *RatingUsecase) Create(ctx context.Context, userID string, req CreateRatingRequest) (model.Rating, error) {
	if userID == "" {
		return model.Rating{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	//入力チェック
	if req.OrderID == "" {
		return model.Rating{}, NewHTTPError(http.StatusBadRequest, "invalid order id")
	}
	if req.Nota < model.RatingNotaMin || req.Nota > model.RatingNotaMax {
		return model.Rating{}, NewHTTPError(http.StatusBadRequest, "invalid nota")
	}

	o, err := u.orders.FindByID(ctx, req.OrderID)
	if err != nil {
		return model.Rating{}, mapAPIError(err)
	}

	//他人の注文は存在しない扱い
	if o.UserID != userID {
		return model.Rating{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	//配達が終わった注文だけ評価できる
	if o.Status != model.OrderStatusDelivered {
		return model.Rating{}, NewHTTPError(http.StatusBadRequest, "order not delivered")
	}

	//二重評価チェック
	_, err = u.ratings.FindByOrder(ctx, req.OrderID)
	if err == nil {
		return model.Rating{}, NewHTTPError(http.StatusConflict, "already rated")
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return model.Rating{}, mapAPIError(err)
	}

	created, err := u.ratings.Create(ctx, repo.CreateRatingInput{
		OrderID:      req.OrderID,
		UserID:       userID,
		RestaurantID: o.RestaurantID,
		Nota:         req.Nota,
		Comentario:   req.Comentario,
	})
	if err != nil {
		return model.Rating{}, mapAPIError(err)
	}
	return created, nil
}

func (u *RatingUsecase) ListMine(ctx context.Context, userID string) ([]model.Rating, error) {
	if userID == "" {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	list, err := u.ratings.ListByUser(ctx, userID)
	if err != nil {
		return nil, mapAPIError(err)
	}
	return list, nil
}
