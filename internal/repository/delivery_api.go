package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"

	"github.com/shopspring/decimal"
)

// リモートAPI上に対象が存在しない
var ErrNotFound = errors.New("not found")

// 新規登録の入力
type RegisterInput struct {
	Nome     string         `json:"nome"`
	Email    string         `json:"email"`
	Telefone string         `json:"telefone"`
	Senha    string         `json:"senha"`
	Tipo     model.UserType `json:"tipo"`
}

// リモートの認証API
type AuthAPI interface {
	//認証に成功したらユーザーを返す
	Login(ctx context.Context, email string, senha string) (model.User, error)

	//アカウントを作って作成済みユーザーを返す
	Register(ctx context.Context, in RegisterInput) (model.User, error)
}

// プロフィール更新の入力。nilのフィールドは変更しない。
type UserUpdateInput struct {
	Nome     *string `json:"nome,omitempty"`
	Telefone *string `json:"telefone,omitempty"`
}

type UserAPI interface {
	FindByID(ctx context.Context, userID string) (model.User, error)
	Update(ctx context.Context, userID string, in UserUpdateInput) (model.User, error)
}

// 住所API。住所の実体はリモート側が持つ。
type AddressAPI interface {
	ListByEntity(ctx context.Context, entityID string, entityType model.EntityType) ([]model.Address, error)
	Create(ctx context.Context, address model.Address) (model.Address, error)
	Update(ctx context.Context, addressID string, address model.Address) (model.Address, error)
	Delete(ctx context.Context, addressID string) error

	//デフォルト住所の切り替え。
	//同じentityの他の住所のprincipalはリモート側で落とす。
	SetPrincipal(ctx context.Context, addressID string, entityID string, entityType model.EntityType) error
}

// メニュー作成・更新の入力
type MenuItemInput struct {
	RestauranteID string          `json:"restauranteId"`
	Nome          string          `json:"nome"`
	Descricao     string          `json:"descricao"`
	Preco         decimal.Decimal `json:"preco"`
	ImagemURL     string          `json:"imagemUrl,omitempty"`
	Disponivel    bool            `json:"disponivel"`
}

// レストラン・メニューのAPI。
// 閲覧は誰でも、メニューの変更は店のオーナー向け。
type CatalogAPI interface {
	ListRestaurants(ctx context.Context) ([]model.Restaurant, error)
	FindRestaurant(ctx context.Context, restaurantID string) (model.Restaurant, error)
	ListMenu(ctx context.Context, restaurantID string) ([]model.MenuItem, error)
	FindMenuItem(ctx context.Context, itemID string) (model.MenuItem, error)

	CreateMenuItem(ctx context.Context, in MenuItemInput) (model.MenuItem, error)
	UpdateMenuItem(ctx context.Context, itemID string, in MenuItemInput) (model.MenuItem, error)
	SetMenuItemAvailability(ctx context.Context, itemID string, disponivel bool) (model.MenuItem, error)
	DeleteMenuItem(ctx context.Context, itemID string) error
}

// 評価作成の入力。注文1件につき1回
type CreateRatingInput struct {
	OrderID      string `json:"orderId"`
	UserID       string `json:"userId"`
	RestaurantID string `json:"restaurantId"`
	Nota         int64  `json:"nota"`
	Comentario   string `json:"comentario,omitempty"`
}

type RatingAPI interface {
	Create(ctx context.Context, in CreateRatingInput) (model.Rating, error)
	ListByUser(ctx context.Context, userID string) ([]model.Rating, error)

	//その注文の評価。未評価なら ErrNotFound
	FindByOrder(ctx context.Context, orderID string) (model.Rating, error)
}

// 注文作成の入力。1レストラングループにつき1回呼ぶ。
type CreateOrderInput struct {
	UserID       string            `json:"userId"`
	UserName     string            `json:"userName"`
	RestaurantID string            `json:"restaurantId"`
	Status       model.OrderStatus `json:"status"`
	Items        []model.CartLine  `json:"items"`
	AddressID    *string           `json:"addressId,omitempty"`
}

type OrderAPI interface {
	Create(ctx context.Context, in CreateOrderInput) (model.Order, error)
	FindByID(ctx context.Context, orderID string) (model.Order, error)
	ListByUser(ctx context.Context, userID string) ([]model.Order, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) (model.Order, error)
}
