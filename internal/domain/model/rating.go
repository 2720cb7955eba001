package model

import "time"

// 注文に対する評価。注文1件につき1回だけ。
type Rating struct {
	ID           string    `json:"id"`
	OrderID      string    `json:"orderId"`
	UserID       string    `json:"userId"`
	RestaurantID string    `json:"restaurantId"`
	Nota         int64     `json:"nota"`
	Comentario   string    `json:"comentario"`
	CreatedAt    time.Time `json:"createdAt"`
}

const (
	RatingNotaMin int64 = 1
	RatingNotaMax int64 = 5
)
