package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

// CartUsecase は /cart の業務ロジック。
// カートの正はセッションにあり、変更のたびにスナップショットへ書き戻す。
type CartUsecase struct {
	sessions  repo.SessionStore
	snapshots repo.CartSnapshotStore
	catalog   repo.CatalogAPI

	//1店舗あたりの固定配達料
	deliveryFee decimal.Decimal
}

func NewCartUsecase(
	sessions repo.SessionStore,
	snapshots repo.CartSnapshotStore,
	catalog repo.CatalogAPI,
	deliveryFee decimal.Decimal,
) *CartUsecase {
	return &CartUsecase{
		sessions:    sessions,
		snapshots:   snapshots,
		catalog:     catalog,
		deliveryFee: deliveryFee,
	}
}

type CartResponse struct {
	Items     []model.CartLine `json:"items"`
	ItemCount int64            `json:"itemCount"`
	Subtotal  decimal.Decimal  `json:"subtotal"`
}

// カートの店別サマリ（表示・チェックアウト前の見積もり用）
type CartSummaryResponse struct {
	Groups      []model.RestaurantGroup `json:"groups"`
	Subtotal    decimal.Decimal         `json:"subtotal"`
	DeliveryFee decimal.Decimal         `json:"deliveryFee"`
	Total       decimal.Decimal         `json:"total"`
}

func (u *CartUsecase) GetCart(ctx context.Context, sessionID string) (CartResponse, error) {
	sess, ok := u.sessions.Find(ctx, sessionID)
	if !ok {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return buildCartResponse(sess.Cart), nil
}

// メニューを1つカートに入れる。
// 同じitemIdが既にあれば数量+1、無ければ追加時点の価格・名前で新規明細。
func (u *CartUsecase) AddItem(ctx context.Context, sessionID string, itemID string) (CartResponse, error) {
	sess, ok := u.sessions.Find(ctx, sessionID)
	if !ok {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if itemID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	lines := sess.Cart

	//既存明細なら数量だけ増やす（明細を重複させない）
	for i := range lines {
		if lines[i].ItemID == itemID {
			lines[i].Quantity++
			u.persist(ctx, sess, lines)
			return buildCartResponse(lines), nil
		}
	}

	//新規はカタログから追加時点のスナップショットを取る。
	//以後の価格変動はこのカートには反映されない。
	item, err := u.catalog.FindMenuItem(ctx, itemID)
	if err != nil {
		return CartResponse{}, mapAPIError(err)
	}
	if !item.Disponivel {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "item unavailable")
	}

	line := model.CartLine{
		ItemID:    item.ID,
		ItemName:  item.Nome,
		Quantity:  1,
		UnitPrice: item.Preco,
	}
	if item.RestauranteID != "" {
		rid := item.RestauranteID
		line.RestaurantID = &rid

		//店名はあれば取る。取れなくても明細は成立する
		if r, err := u.catalog.FindRestaurant(ctx, item.RestauranteID); err == nil {
			name := r.Nome
			line.RestaurantName = &name
		}
	}
	if item.ImagemURL != "" {
		img := item.ImagemURL
		line.ImageURL = &img
	}

	lines = append(lines, line)
	u.persist(ctx, sess, lines)
	return buildCartResponse(lines), nil
}

// 数量を1減らす。1だったら明細ごと消す。無ければ何もしない。
func (u *CartUsecase) RemoveItem(ctx context.Context, sessionID string, itemID string) (CartResponse, error) {
	sess, ok := u.sessions.Find(ctx, sessionID)
	if !ok {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	lines := sess.Cart
	for i := range lines {
		if lines[i].ItemID != itemID {
			continue
		}

		if lines[i].Quantity > 1 {
			lines[i].Quantity--
		} else {
			lines = append(lines[:i], lines[i+1:]...)
		}

		u.persist(ctx, sess, lines)
		break
	}

	return buildCartResponse(lines), nil
}

func (u *CartUsecase) Clear(ctx context.Context, sessionID string) (CartResponse, error) {
	sess, ok := u.sessions.Find(ctx, sessionID)
	if !ok {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	u.persist(ctx, sess, []model.CartLine{})
	return buildCartResponse([]model.CartLine{}), nil
}

// itemIdの現在数量。無ければ0
func (u *CartUsecase) Quantity(ctx context.Context, sessionID string, itemID string) (int64, error) {
	sess, ok := u.sessions.Find(ctx, sessionID)
	if !ok {
		return 0, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	for _, l := range sess.Cart {
		if l.ItemID == itemID {
			return l.Quantity, nil
		}
	}
	return 0, nil
}

// 店別グルーピング＋配達料込みの合計。
// 配達料は「店の数×固定額」。店不明グループには配達できないので課金しない。
func (u *CartUsecase) Summary(ctx context.Context, sessionID string) (CartSummaryResponse, error) {
	sess, ok := u.sessions.Find(ctx, sessionID)
	if !ok {
		return CartSummaryResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	groups := model.GroupByRestaurant(sess.Cart)

	known := int64(0)
	for _, g := range groups {
		if g.Known() {
			known++
		}
	}

	subtotal := model.Subtotal(sess.Cart)
	fee := u.deliveryFee.Mul(decimal.NewFromInt(known))

	return CartSummaryResponse{
		Groups:      groups,
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Total:       subtotal.Add(fee),
	}, nil
}

// セッションとスナップショットを更新する。
// スナップショットの書き込み失敗は握りつぶす（消えてもカートは使える）。
func (u *CartUsecase) persist(ctx context.Context, sess model.Session, lines []model.CartLine) {
	if err := u.sessions.ReplaceCart(ctx, sess.ID, lines); err != nil {
		return
	}
	_ = u.snapshots.Save(ctx, sess.UserID, lines)
}

func buildCartResponse(lines []model.CartLine) CartResponse {
	if lines == nil {
		lines = []model.CartLine{}
	}

	var count int64 = 0
	for _, l := range lines {
		count += l.Quantity
	}

	return CartResponse{
		Items:     lines,
		ItemCount: count,
		Subtotal:  model.Subtotal(lines),
	}
}
