package model

import "time"

// カートの永続スナップショット。
// ユーザーごとに1行、payload はCartLineのJSON配列。
// ログアウトしても残る（次回ログインで復元する）。
type CartSnapshot struct {
	UserID    string    `gorm:"primaryKey;type:varchar(64)" json:"user_id"`
	Payload   string    `gorm:"type:text;not null" json:"payload"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
