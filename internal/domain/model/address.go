package model

import "time"

// 住所の持ち主の種類
type EntityType string

const (
	EntityTypeUser       EntityType = "user"
	EntityTypeRestaurant EntityType = "restaurant"
)

func (t EntityType) Valid() bool {
	return t == EntityTypeUser || t == EntityTypeRestaurant
}

// 配送先住所。リモートAPIのワイヤ形式に合わせる（ブラジル式）。
type Address struct {
	ID         string     `json:"id"`
	EntityID   string     `json:"entityId"`
	EntityType EntityType `json:"entityType"`

	//通り
	Rua string `json:"rua"`

	//番地
	Numero string `json:"numero"`

	//補足（部屋番号など）
	Complemento *string `json:"complemento,omitempty"`

	//地区
	Bairro string `json:"bairro"`

	Cidade string `json:"cidade"`
	Estado string `json:"estado"`

	//郵便番号
	CEP string `json:"cep"`

	//デフォルト配送先フラグ
	Principal bool `json:"principal"`

	//ニックネーム（「自宅」など）
	Apelido *string `json:"apelido,omitempty"`

	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
