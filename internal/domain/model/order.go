package model

import "time"

type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "novo"
	OrderStatusPreparing  OrderStatus = "preparando"
	OrderStatusReady      OrderStatus = "pronto"
	OrderStatusDelivering OrderStatus = "entregando"
	OrderStatusDelivered  OrderStatus = "entregue"
	OrderStatusCanceled   OrderStatus = "cancelado"
)

// 店側ダッシュボードで許可する遷移
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusNew:        {OrderStatusPreparing, OrderStatusCanceled},
	OrderStatusPreparing:  {OrderStatusReady},
	OrderStatusReady:      {OrderStatusDelivering},
	OrderStatusDelivering: {OrderStatusDelivered},
	//entregue / cancelado は終端
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusNew, OrderStatusPreparing, OrderStatusReady,
		OrderStatusDelivering, OrderStatusDelivered, OrderStatusCanceled:
		return true
	}
	return false
}

// s から next へ進めてよいか
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// リモートAPI上の注文。1レストラングループ＝1注文。
type Order struct {
	ID           string      `json:"id"`
	UserID       string      `json:"userId"`
	UserName     string      `json:"userName"`
	RestaurantID string      `json:"restaurantId"`
	Status       OrderStatus `json:"status"`
	Items        []CartLine  `json:"items"`
	AddressID    *string     `json:"addressId,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
}
