package model

import "time"

// ログイン中のセッション状態。
// ユーザーとカートをまとめて持ち、ログアウトで破棄する。
// グローバル変数にしない（レジストリ経由で取得する）。
type Session struct {
	ID       string
	UserID   string
	UserName string
	UserType UserType

	//このセッションのカート（メモリ上の正）。
	//変更のたびにスナップショットへ書き戻す。
	Cart []CartLine

	CreatedAt time.Time
}
