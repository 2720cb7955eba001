package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"app/internal/domain/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartSnapshotGormStore struct {
	db *gorm.DB
}

// DI
func NewCartSnapshotGormStore(db *gorm.DB) *CartSnapshotGormStore {
	return &CartSnapshotGormStore{db: db}
}

// ユーザーのスナップショットを復元する。
// 行が無い・payloadが壊れている場合は空カート扱い（エラーにしない）。
func (s *CartSnapshotGormStore) Load(ctx context.Context, userID string) ([]model.CartLine, error) {
	var snap model.CartSnapshot

	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&snap).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []model.CartLine{}, nil
	}
	if err != nil {
		return []model.CartLine{}, err
	}

	var lines []model.CartLine
	if err := json.Unmarshal([]byte(snap.Payload), &lines); err != nil {
		//壊れたスナップショットは黙って捨てる
		return []model.CartLine{}, nil
	}

	return sanitize(lines), nil
}

// カート全体をJSONで上書き保存する
func (s *CartSnapshotGormStore) Save(ctx context.Context, userID string, lines []model.CartLine) error {
	if lines == nil {
		lines = []model.CartLine{}
	}

	payload, err := json.Marshal(lines)
	if err != nil {
		return err
	}

	snap := model.CartSnapshot{
		UserID:    userID,
		Payload:   string(payload),
		UpdatedAt: time.Now(),
	}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&snap).Error
}

// スナップショットを消す。無ければ何もしない。
func (s *CartSnapshotGormStore) Delete(ctx context.Context, userID string) error {
	return s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartSnapshot{}).Error
}

// 将来スキーマが変わっても落ちないように、読めない明細だけ捨てる
func sanitize(lines []model.CartLine) []model.CartLine {
	out := make([]model.CartLine, 0, len(lines))
	for _, l := range lines {
		if l.ItemID == "" || l.Quantity < 1 {
			continue
		}
		if l.UnitPrice.IsNegative() {
			continue
		}
		out = append(out, l)
	}
	return out
}
