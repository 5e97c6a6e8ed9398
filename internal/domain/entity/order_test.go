package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrder_SameBasketRespetaElOrdenDeLosItems(t *testing.T) {
	base := func(items ...OrderItem) *Order {
		return &Order{Value: decimal.RequireFromString("12.50"), PaymentMethodID: "pm-1", UserID: "u-1", Products: items}
	}
	a := base(OrderItem{ProductID: "p-1", Quantity: 2}, OrderItem{ProductID: "p-2", Quantity: 1})

	assert.True(t, a.SameBasket(base(OrderItem{ProductID: "p-1", Quantity: 2}, OrderItem{ProductID: "p-2", Quantity: 1})))
	assert.False(t, a.SameBasket(base(OrderItem{ProductID: "p-2", Quantity: 1}, OrderItem{ProductID: "p-1", Quantity: 2})))
	assert.False(t, a.SameBasket(base(OrderItem{ProductID: "p-1", Quantity: 2})))

	other := base(a.Products...)
	other.Value = decimal.RequireFromString("12.5")
	assert.True(t, a.SameBasket(other))
	other.UserID = "u-2"
	assert.False(t, a.SameBasket(other))
}
