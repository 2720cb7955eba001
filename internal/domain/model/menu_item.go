package model

import "github.com/shopspring/decimal"

// レストランのメニュー1品。カート追加時の参照元。
type MenuItem struct {
	ID            string          `json:"id"`
	RestauranteID string          `json:"restauranteId"`
	Nome          string          `json:"nome"`
	Descricao     string          `json:"descricao"`
	Preco         decimal.Decimal `json:"preco"`
	ImagemURL     string          `json:"imagemUrl"`
	Disponivel    bool            `json:"disponivel"`
}
