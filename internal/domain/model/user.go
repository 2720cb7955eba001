package model

type UserType string

const (
	UserTypeClient     UserType = "cliente"
	UserTypeRestaurant UserType = "restaurante"
)

// リモートAPI上のユーザー
type User struct {
	ID       string   `json:"id"`
	Nome     string   `json:"nome"`
	Email    string   `json:"email"`
	Tipo     UserType `json:"tipo"`
	Telefone *string  `json:"telefone,omitempty"`
}
