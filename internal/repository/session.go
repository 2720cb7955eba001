package repository

import (
	"context"

	"app/internal/domain/model"
)

// セッションの登録・参照・破棄。
// プロセス内レジストリ（ログアウトで即時失効させる）。
type SessionStore interface {
	Create(ctx context.Context, sess model.Session) error

	//見つからなければ false
	Find(ctx context.Context, sessionID string) (model.Session, bool)

	//セッションのカートを丸ごと差し替える
	ReplaceCart(ctx context.Context, sessionID string, lines []model.CartLine) error

	Delete(ctx context.Context, sessionID string)
}
