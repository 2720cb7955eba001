package repository_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	"app/internal/infra/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSnapshotDB(t *testing.T) *gorm.DB {
	t.Helper()

	//テストごとに独立したインメモリDB
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.CartSnapshot{}))
	return db
}

func snapshotLine(itemID string, qty int64, price string) model.CartLine {
	return model.CartLine{
		ItemID:    itemID,
		ItemName:  "item " + itemID,
		Quantity:  qty,
		UnitPrice: decimal.RequireFromString(price),
	}
}

func TestCartSnapshotGormStore_SaveAndLoad(t *testing.T) {
	s := repository.NewCartSnapshotGormStore(newSnapshotDB(t))
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "u1", []model.CartLine{
		snapshotLine("m1", 2, "25.50"),
	}))

	lines, err := s.Load(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "m1", lines[0].ItemID)
	assert.True(t, lines[0].UnitPrice.Equal(decimal.RequireFromString("25.50")))
}

func TestCartSnapshotGormStore_SaveUpserts(t *testing.T) {
	s := repository.NewCartSnapshotGormStore(newSnapshotDB(t))
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "u1", []model.CartLine{snapshotLine("m1", 1, "10")}))
	require.NoError(t, s.Save(ctx, "u1", []model.CartLine{snapshotLine("m2", 3, "12")}))

	//ユーザーごとに1行。最後の保存が勝つ。
	lines, err := s.Load(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "m2", lines[0].ItemID)
}

func TestCartSnapshotGormStore_LoadMissingUser(t *testing.T) {
	s := repository.NewCartSnapshotGormStore(newSnapshotDB(t))

	lines, err := s.Load(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCartSnapshotGormStore_LoadCorruptPayload(t *testing.T) {
	db := newSnapshotDB(t)
	require.NoError(t, db.Create(&model.CartSnapshot{
		UserID:  "u1",
		Payload: `{"not":"an array`,
	}).Error)

	s := repository.NewCartSnapshotGormStore(db)

	//壊れた行はエラーにせず空カートとして返す
	lines, err := s.Load(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCartSnapshotGormStore_LoadDropsBadLines(t *testing.T) {
	db := newSnapshotDB(t)
	require.NoError(t, db.Create(&model.CartSnapshot{
		UserID: "u1",
		Payload: `[
			{"itemId":"m1","itemName":"ok","quantity":2,"unitPrice":"10"},
			{"itemId":"m2","itemName":"zero qty","quantity":0,"unitPrice":"10"},
			{"itemId":"","itemName":"no id","quantity":1,"unitPrice":"10"},
			{"itemId":"m3","itemName":"negative","quantity":1,"unitPrice":"-5"}
		]`,
	}).Error)

	s := repository.NewCartSnapshotGormStore(db)

	lines, err := s.Load(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "m1", lines[0].ItemID)
}

func TestCartSnapshotGormStore_Delete(t *testing.T) {
	s := repository.NewCartSnapshotGormStore(newSnapshotDB(t))
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "u1", []model.CartLine{snapshotLine("m1", 1, "10")}))
	require.NoError(t, s.Delete(ctx, "u1"))

	lines, err := s.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, lines)

	//もう一度消しても何も起きない
	require.NoError(t, s.Delete(ctx, "u1"))
}
