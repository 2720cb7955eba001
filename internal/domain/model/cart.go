package model

import "github.com/shopspring/decimal"

// カートの明細。
// 価格・名前は「追加時点」のスナップショットで、後から取り直さない。
type CartLine struct {
	ItemID   string `json:"itemId"`
	ItemName string `json:"itemName"`
	Quantity int64  `json:"quantity"`

	//追加時点の単価
	UnitPrice decimal.Decimal `json:"unitPrice"`

	//メニューによっては店が紐付いていないので optional
	RestaurantID   *string `json:"restaurantId,omitempty"`
	RestaurantName *string `json:"restaurantName,omitempty"`
	ImageURL       *string `json:"imageUrl,omitempty"`
}

// 数量×単価
func (l CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity))
}

// 店が不明な明細をまとめるグループキー。
// このグループはチェックアウト対象から外す。
const UnknownRestaurantKey = "unknown"

// 店ごとに仕分けしたカート（導出値。保存しない）
type RestaurantGroup struct {
	RestaurantID   string     `json:"restaurantId"`
	RestaurantName string     `json:"restaurantName"`
	Items          []CartLine `json:"items"`
}

// チェックアウトできるグループか
func (g RestaurantGroup) Known() bool {
	return g.RestaurantID != UnknownRestaurantKey
}

// 明細を店ごとに仕分けする。
// グループの並びは restaurantId の初出順（ソートしない）。
func GroupByRestaurant(lines []CartLine) []RestaurantGroup {
	groups := make([]RestaurantGroup, 0)
	index := make(map[string]int)

	for _, l := range lines {
		key := UnknownRestaurantKey
		name := ""
		if l.RestaurantID != nil && *l.RestaurantID != "" {
			key = *l.RestaurantID
			if l.RestaurantName != nil {
				name = *l.RestaurantName
			}
		}

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, RestaurantGroup{
				RestaurantID:   key,
				RestaurantName: name,
				Items:          []CartLine{},
			})
		}
		groups[i].Items = append(groups[i].Items, l)
	}

	return groups
}

// 小計（数量×単価の合計）。キャッシュせず毎回計算する。
func Subtotal(lines []CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.LineTotal())
	}
	return total
}
