package repository

import (
	"context"

	"app/internal/domain/model"
)

// カートスナップショットの保存・復元の窓口。
// ブラウザ側のlocalStorage "cart" に相当するもの。
type CartSnapshotStore interface {
	//ユーザーのスナップショットを復元する。
	//無い・壊れている場合はエラーにせず空のカートを返す。
	Load(ctx context.Context, userID string) ([]model.CartLine, error)

	//カート全体を上書き保存する（変更のたびに呼ぶ）。
	Save(ctx context.Context, userID string, lines []model.CartLine) error

	//スナップショットを消す（チェックアウト成功後など）。
	Delete(ctx context.Context, userID string) error
}
