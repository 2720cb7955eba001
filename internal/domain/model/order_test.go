package model_test

import (
	"testing"

	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_Valid(t *testing.T) {
	assert.True(t, model.OrderStatusNew.Valid())
	assert.True(t, model.OrderStatusDelivered.Valid())
	assert.False(t, model.OrderStatus("foo").Valid())
	assert.False(t, model.OrderStatus("").Valid())
}

func TestOrderStatus_WireValues(t *testing.T) {
	assert.Equal(t, "novo", string(model.OrderStatusNew))
	assert.Equal(t, "preparando", string(model.OrderStatusPreparing))
	assert.Equal(t, "pronto", string(model.OrderStatusReady))
	assert.Equal(t, "entregando", string(model.OrderStatusDelivering))
	assert.Equal(t, "entregue", string(model.OrderStatusDelivered))
	assert.Equal(t, "cancelado", string(model.OrderStatusCanceled))
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, model.OrderStatusNew.CanTransitionTo(model.OrderStatusPreparing))
	assert.True(t, model.OrderStatusNew.CanTransitionTo(model.OrderStatusCanceled))
	assert.True(t, model.OrderStatusPreparing.CanTransitionTo(model.OrderStatusReady))
	assert.True(t, model.OrderStatusReady.CanTransitionTo(model.OrderStatusDelivering))
	assert.True(t, model.OrderStatusDelivering.CanTransitionTo(model.OrderStatusDelivered))

	//逆行や飛ばしは不可
	assert.False(t, model.OrderStatusPreparing.CanTransitionTo(model.OrderStatusNew))
	assert.False(t, model.OrderStatusNew.CanTransitionTo(model.OrderStatusDelivered))
	assert.False(t, model.OrderStatusDelivered.CanTransitionTo(model.OrderStatusNew))
	assert.False(t, model.OrderStatusCanceled.CanTransitionTo(model.OrderStatusPreparing))
}
