package usecase_test

import (
	"context"
	"sync"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/mock"
)

var (
	_ repo.AuthAPI           = (*AuthAPIMock)(nil)
	_ repo.UserAPI           = (*UserAPIMock)(nil)
	_ repo.CatalogAPI        = (*CatalogAPIMock)(nil)
	_ repo.AddressAPI        = (*AddressAPIMock)(nil)
	_ repo.OrderAPI          = (*OrderAPIMock)(nil)
	_ repo.RatingAPI         = (*RatingAPIMock)(nil)
	_ repo.CartSnapshotStore = (*snapshotStoreFake)(nil)
)

type AuthAPIMock struct {
	mock.Mock
}

func (m *AuthAPIMock) Login(ctx context.Context, email string, senha string) (model.User, error) {
	args := m.Called(ctx, email, senha)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *AuthAPIMock) Register(ctx context.Context, in repo.RegisterInput) (model.User, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(model.User), args.Error(1)
}

type UserAPIMock struct {
	mock.Mock
}

func (m *UserAPIMock) FindByID(ctx context.Context, userID string) (model.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserAPIMock) Update(ctx context.Context, userID string, in repo.UserUpdateInput) (model.User, error) {
	args := m.Called(ctx, userID, in)
	return args.Get(0).(model.User), args.Error(1)
}

type CatalogAPIMock struct {
	mock.Mock
}

func (m *CatalogAPIMock) ListRestaurants(ctx context.Context) ([]model.Restaurant, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Restaurant), args.Error(1)
}

func (m *CatalogAPIMock) FindRestaurant(ctx context.Context, restaurantID string) (model.Restaurant, error) {
	args := m.Called(ctx, restaurantID)
	return args.Get(0).(model.Restaurant), args.Error(1)
}

func (m *CatalogAPIMock) ListMenu(ctx context.Context, restaurantID string) ([]model.MenuItem, error) {
	args := m.Called(ctx, restaurantID)
	return args.Get(0).([]model.MenuItem), args.Error(1)
}

func (m *CatalogAPIMock) FindMenuItem(ctx context.Context, itemID string) (model.MenuItem, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(model.MenuItem), args.Error(1)
}

func (m *CatalogAPIMock) CreateMenuItem(ctx context.Context, in repo.MenuItemInput) (model.MenuItem, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(model.MenuItem), args.Error(1)
}

func (m *CatalogAPIMock) UpdateMenuItem(ctx context.Context, itemID string, in repo.MenuItemInput) (model.MenuItem, error) {
	args := m.Called(ctx, itemID, in)
	return args.Get(0).(model.MenuItem), args.Error(1)
}

func (m *CatalogAPIMock) SetMenuItemAvailability(ctx context.Context, itemID string, disponivel bool) (model.MenuItem, error) {
	args := m.Called(ctx, itemID, disponivel)
	return args.Get(0).(model.MenuItem), args.Error(1)
}

func (m *CatalogAPIMock) DeleteMenuItem(ctx context.Context, itemID string) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

type AddressAPIMock struct {
	mock.Mock
}

func (m *AddressAPIMock) ListByEntity(ctx context.Context, entityID string, entityType model.EntityType) ([]model.Address, error) {
	args := m.Called(ctx, entityID, entityType)
	return args.Get(0).([]model.Address), args.Error(1)
}

func (m *AddressAPIMock) Create(ctx context.Context, address model.Address) (model.Address, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(model.Address), args.Error(1)
}

func (m *AddressAPIMock) Update(ctx context.Context, addressID string, address model.Address) (model.Address, error) {
	args := m.Called(ctx, addressID, address)
	return args.Get(0).(model.Address), args.Error(1)
}

func (m *AddressAPIMock) Delete(ctx context.Context, addressID string) error {
	args := m.Called(ctx, addressID)
	return args.Error(0)
}

func (m *AddressAPIMock) SetPrincipal(ctx context.Context, addressID string, entityID string, entityType model.EntityType) error {
	args := m.Called(ctx, addressID, entityID, entityType)
	return args.Error(0)
}

type OrderAPIMock struct {
	mock.Mock
}

func (m *OrderAPIMock) Create(ctx context.Context, in repo.CreateOrderInput) (model.Order, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(model.Order), args.Error(1)
}

func (m *OrderAPIMock) FindByID(ctx context.Context, orderID string) (model.Order, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(model.Order), args.Error(1)
}

func (m *OrderAPIMock) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *OrderAPIMock) ListByRestaurant(ctx context.Context, restaurantID string) ([]model.Order, error) {
	args := m.Called(ctx, restaurantID)
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *OrderAPIMock) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) (model.Order, error) {
	args := m.Called(ctx, orderID, status)
	return args.Get(0).(model.Order), args.Error(1)
}

type RatingAPIMock struct {
	mock.Mock
}

func (m *RatingAPIMock) Create(ctx context.Context, in repo.CreateRatingInput) (model.Rating, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(model.Rating), args.Error(1)
}

func (m *RatingAPIMock) ListByUser(ctx context.Context, userID string) ([]model.Rating, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]model.Rating), args.Error(1)
}

func (m *RatingAPIMock) FindByOrder(ctx context.Context, orderID string) (model.Rating, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(model.Rating), args.Error(1)
}

// スナップショットの保存先を模したインメモリ実装。
// 保存・削除の回数と失敗の注入ができる。
type snapshotStoreFake struct {
	mu      sync.Mutex
	data    map[string][]model.CartLine
	loadErr error
	saveErr error
	saves   int
	deletes int
}

func newSnapshotStoreFake() *snapshotStoreFake {
	return &snapshotStoreFake{data: make(map[string][]model.CartLine)}
}

func (f *snapshotStoreFake) Load(ctx context.Context, userID string) ([]model.CartLine, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.loadErr != nil {
		return []model.CartLine{}, f.loadErr
	}

	lines, ok := f.data[userID]
	if !ok {
		return []model.CartLine{}, nil
	}
	out := make([]model.CartLine, len(lines))
	copy(out, lines)
	return out, nil
}

func (f *snapshotStoreFake) Save(ctx context.Context, userID string, lines []model.CartLine) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.saveErr != nil {
		return f.saveErr
	}

	stored := make([]model.CartLine, len(lines))
	copy(stored, lines)
	f.data[userID] = stored
	f.saves++
	return nil
}

func (f *snapshotStoreFake) Delete(ctx context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.data, userID)
	f.deletes++
	return nil
}
