package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"golang.org/x/sync/errgroup"
)

// CheckoutUsecase はカートを「1店舗1注文」に変換する。
// 全部成功したときだけカートを消す。部分成功でもロールバックはしない。
type CheckoutUsecase struct {
	sessions  repo.SessionStore
	snapshots repo.CartSnapshotStore
	addresses repo.AddressAPI
	orders    repo.OrderAPI
}

func NewCheckoutUsecase(
	sessions repo.SessionStore,
	snapshots repo.CartSnapshotStore,
	addresses repo.AddressAPI,
	orders repo.OrderAPI,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		sessions:  sessions,
		snapshots: snapshots,
		addresses: addresses,
		orders:    orders,
	}
}

type CheckoutInput struct {
	AddressID string
}

// 店ごとの結果。失敗した店だけ再送できるように全部返す。
type GroupResult struct {
	RestaurantID string `json:"restaurantId"`
	OrderID      string `json:"orderId,omitempty"`
	Error        string `json:"error,omitempty"`
}

type CheckoutOutput struct {
	Orders  []model.Order `json:"orders"`
	Results []GroupResult `json:"results"`
}

// チェックアウト本体。
//  1. 店ごとに仕分けして、店不明グループは捨てる
//  2. 対象が無ければネットワークを叩かずに400
//  3. 店ごとに並行で注文作成
//  4. 全部成功 → カートとスナップショットを消す
//  5. 1つでも失敗 → カートはそのまま残す（作成済み注文の取り消しはしない）
func (u *CheckoutUsecase) PlaceOrders(ctx context.Context, sessionID string, in CheckoutInput) (CheckoutOutput, error) {
	sess, ok := u.sessions.Find(ctx, sessionID)
	if !ok {
		return CheckoutOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.AddressID == "" {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "address required")
	}

	//配送先は本人の住所帳にあるものだけ
	if err := u.ensureOwnAddress(ctx, sess.UserID, in.AddressID); err != nil {
		return CheckoutOutput{}, err
	}

	groups := make([]model.RestaurantGroup, 0)
	for _, g := range model.GroupByRestaurant(sess.Cart) {
		if g.Known() {
			groups = append(groups, g)
		}
	}
	if len(groups) == 0 {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "cart empty")
	}

	addressID := in.AddressID
	results := make([]GroupResult, len(groups))
	orders := make([]model.Order, len(groups))

	//店ごとにfan-out。キャンセルはしないので素のGroupでよい
	var eg errgroup.Group
	for i, g := range groups {
		eg.Go(func() error {
			o, err := u.orders.Create(ctx, repo.CreateOrderInput{
				UserID:       sess.UserID,
				UserName:     sess.UserName,
				RestaurantID: g.RestaurantID,
				Status:       model.OrderStatusNew,
				Items:        g.Items,
				AddressID:    &addressID,
			})
			if err != nil {
				results[i] = GroupResult{RestaurantID: g.RestaurantID, Error: err.Error()}
				return err
			}

			results[i] = GroupResult{RestaurantID: g.RestaurantID, OrderID: o.ID}
			orders[i] = o
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		//カートは消さない（未送信の意図を失わせない）。
		//作成できてしまった注文はresultsで分かるようにして返す
		return CheckoutOutput{Results: results}, NewHTTPError(http.StatusBadGateway, "checkout failed")
	}

	//全部成功したときだけクリア
	if err := u.sessions.ReplaceCart(ctx, sessionID, []model.CartLine{}); err == nil {
		_ = u.snapshots.Delete(ctx, sess.UserID)
	}

	return CheckoutOutput{Orders: orders, Results: results}, nil
}

func (u *CheckoutUsecase) ensureOwnAddress(ctx context.Context, userID string, addressID string) error {
	list, err := u.addresses.ListByEntity(ctx, userID, model.EntityTypeUser)
	if err != nil {
		return mapAPIError(err)
	}

	for _, a := range list {
		if a.ID == addressID {
			return nil
		}
	}
	return NewHTTPError(http.StatusBadRequest, "invalid address")
}
