package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	infrarepo "app/internal/infra/repository"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// リモート注文APIの代役。店ごとに成否を差し替えられる。
type orderAPIStub struct {
	fail map[string]bool
}

func (s *orderAPIStub) Create(ctx context.Context, in repo.CreateOrderInput) (model.Order, error) {
	if s.fail[in.RestaurantID] {
		return model.Order{}, errors.New("remote down")
	}
	return model.Order{
		ID:           "order-" + in.RestaurantID,
		UserID:       in.UserID,
		RestaurantID: in.RestaurantID,
		Status:       in.Status,
		Items:        in.Items,
	}, nil
}

func (s *orderAPIStub) FindByID(ctx context.Context, orderID string) (model.Order, error) {
	return model.Order{}, repo.ErrNotFound
}

func (s *orderAPIStub) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	return []model.Order{}, nil
}

func (s *orderAPIStub) ListByRestaurant(ctx context.Context, restaurantID string) ([]model.Order, error) {
	return []model.Order{}, nil
}

func (s *orderAPIStub) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) (model.Order, error) {
	return model.Order{}, repo.ErrNotFound
}

// user-1の住所帳（a1だけ入っている）
type addressAPIStub struct{}

func (addressAPIStub) ListByEntity(ctx context.Context, entityID string, entityType model.EntityType) ([]model.Address, error) {
	return []model.Address{{ID: "a1", EntityID: entityID, EntityType: entityType}}, nil
}

func (addressAPIStub) Create(ctx context.Context, address model.Address) (model.Address, error) {
	return address, nil
}

func (addressAPIStub) Update(ctx context.Context, addressID string, address model.Address) (model.Address, error) {
	return address, nil
}

func (addressAPIStub) Delete(ctx context.Context, addressID string) error { return nil }

func (addressAPIStub) SetPrincipal(ctx context.Context, addressID string, entityID string, entityType model.EntityType) error {
	return nil
}

type snapshotStub struct{}

func (snapshotStub) Load(ctx context.Context, userID string) ([]model.CartLine, error) {
	return []model.CartLine{}, nil
}
func (snapshotStub) Save(ctx context.Context, userID string, lines []model.CartLine) error {
	return nil
}
func (snapshotStub) Delete(ctx context.Context, userID string) error { return nil }

func newCheckoutApp(t *testing.T, orders repo.OrderAPI, cart []model.CartLine) (*echo.Echo, string, *infrarepo.SessionMemoryStore) {
	t.Helper()

	cfg := config.Config{JWTSecret: "test-secret"}
	sessions := infrarepo.NewSessionMemoryStore()
	require.NoError(t, sessions.Create(context.Background(), model.Session{
		ID:       "sess-1",
		UserID:   "user-1",
		UserName: "Ana",
		Cart:     cart,
	}))

	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"sid": "sess-1",
		"iat": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
	})
	token, err := tok.SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)

	e := echo.New()
	uc := usecase.NewCheckoutUsecase(sessions, snapshotStub{}, addressAPIStub{}, orders)
	handler.NewCheckoutHandler(uc).RegisterRoutes(e, cfg, sessions)

	return e, token, sessions
}

func checkoutCart() []model.CartLine {
	r1, r2 := "R1", "R2"
	return []model.CartLine{
		{ItemID: "m1", Quantity: 1, UnitPrice: decimal.NewFromInt(10), RestaurantID: &r1},
		{ItemID: "m2", Quantity: 2, UnitPrice: decimal.NewFromInt(5), RestaurantID: &r2},
	}
}

func TestCheckoutHandler_Success(t *testing.T) {
	e, token, sessions := newCheckoutApp(t, &orderAPIStub{}, checkoutCart())

	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(`{"addressId":"a1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var out usecase.CheckoutOutput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Len(t, out.Orders, 2)
	assert.Len(t, out.Results, 2)

	//成功したらカートは空
	sess, _ := sessions.Find(context.Background(), "sess-1")
	assert.Empty(t, sess.Cart)
}

func TestCheckoutHandler_PartialFailureReturnsResults(t *testing.T) {
	e, token, sessions := newCheckoutApp(t, &orderAPIStub{fail: map[string]bool{"R2": true}}, checkoutCart())

	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(`{"addressId":"a1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadGateway, rec.Code)

	var out handler.CheckoutErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "checkout failed", out.Error)
	require.Len(t, out.Results, 2)
	assert.Equal(t, "order-R1", out.Results[0].OrderID)
	assert.NotEmpty(t, out.Results[1].Error)

	//失敗したらカートは残る
	sess, _ := sessions.Find(context.Background(), "sess-1")
	assert.Len(t, sess.Cart, 2)
}

func TestCheckoutHandler_MissingAddress(t *testing.T) {
	e, token, _ := newCheckoutApp(t, &orderAPIStub{}, checkoutCart())

	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckoutHandler_NoToken(t *testing.T) {
	e, _, _ := newCheckoutApp(t, &orderAPIStub{}, checkoutCart())

	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(`{"addressId":"a1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
