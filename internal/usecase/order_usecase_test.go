package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderUsecase_ListMine(t *testing.T) {
	orders := new(OrderAPIMock)
	orders.On("ListByUser", mock.Anything, "user-1").Return([]model.Order{
		{ID: "o1", UserID: "user-1"},
	}, nil)

	u := usecase.NewOrderUsecase(orders, new(CatalogAPIMock))
	list, err := u.ListMine(context.Background(), "user-1")

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "o1", list[0].ID)
}

func TestOrderUsecase_ListForRestaurant_NotOwner(t *testing.T) {
	orders := new(OrderAPIMock)
	catalog := new(CatalogAPIMock)
	catalog.On("FindRestaurant", mock.Anything, "R1").Return(model.Restaurant{
		ID:     "R1",
		UserID: "someone-else",
	}, nil)

	u := usecase.NewOrderUsecase(orders, catalog)
	_, err := u.ListForRestaurant(context.Background(), "user-1", "R1")

	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Status)
	orders.AssertNotCalled(t, "ListByRestaurant", mock.Anything, mock.Anything)
}

func TestOrderUsecase_ListForRestaurant_Owner(t *testing.T) {
	orders := new(OrderAPIMock)
	catalog := new(CatalogAPIMock)
	catalog.On("FindRestaurant", mock.Anything, "R1").Return(model.Restaurant{
		ID:     "R1",
		UserID: "user-1",
	}, nil)
	orders.On("ListByRestaurant", mock.Anything, "R1").Return([]model.Order{
		{ID: "o1", RestaurantID: "R1"},
	}, nil)

	u := usecase.NewOrderUsecase(orders, catalog)
	list, err := u.ListForRestaurant(context.Background(), "user-1", "R1")

	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestOrderUsecase_UpdateStatus_AllowedTransition(t *testing.T) {
	orders := new(OrderAPIMock)
	catalog := new(CatalogAPIMock)
	orders.On("FindByID", mock.Anything, "o1").Return(model.Order{
		ID:           "o1",
		RestaurantID: "R1",
		Status:       model.OrderStatusNew,
	}, nil)
	catalog.On("FindRestaurant", mock.Anything, "R1").Return(model.Restaurant{ID: "R1", UserID: "user-1"}, nil)
	orders.On("UpdateStatus", mock.Anything, "o1", model.OrderStatusPreparing).Return(model.Order{
		ID:     "o1",
		Status: model.OrderStatusPreparing,
	}, nil)

	u := usecase.NewOrderUsecase(orders, catalog)
	updated, err := u.UpdateStatus(context.Background(), "user-1", "o1", model.OrderStatusPreparing)

	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPreparing, updated.Status)
}

func TestOrderUsecase_UpdateStatus_ForbiddenTransition(t *testing.T) {
	orders := new(OrderAPIMock)
	catalog := new(CatalogAPIMock)
	orders.On("FindByID", mock.Anything, "o1").Return(model.Order{
		ID:           "o1",
		RestaurantID: "R1",
		Status:       model.OrderStatusDelivered,
	}, nil)
	catalog.On("FindRestaurant", mock.Anything, "R1").Return(model.Restaurant{ID: "R1", UserID: "user-1"}, nil)

	u := usecase.NewOrderUsecase(orders, catalog)
	_, err := u.UpdateStatus(context.Background(), "user-1", "o1", model.OrderStatusPreparing)

	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderUsecase_UpdateStatus_UnknownStatus(t *testing.T) {
	orders := new(OrderAPIMock)

	u := usecase.NewOrderUsecase(orders, new(CatalogAPIMock))
	_, err := u.UpdateStatus(context.Background(), "user-1", "o1", model.OrderStatus("nope"))

	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	orders.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}
