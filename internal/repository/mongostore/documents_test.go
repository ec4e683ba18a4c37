package mongostore

import (
	"testing"
	"time"

	"github.com/sportshop-next/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimal128KeepsTwoDecimals(t *testing.T) {
	price, err := models.ParseMoney("1499.5")
	require.NoError(t, err)

	got := fromDecimal128(toDecimal128(price))
	assert.Equal(t, "1499.50", got.String())
}

func TestOrderDocumentKeepsFrozenLines(t *testing.T) {
	paidAt := time.Now().Truncate(time.Millisecond)
	order := &models.Order{
		ID:            11,
		UserID:        3,
		PaymentMethod: "COD",
		ShippingAddress: models.ShippingAddress{
			Street: "1 Stadium Rd", City: "Pune", ZipCode: "411001", Country: "IN",
		},
		PaymentResult: models.PaymentResult{ID: "tx-1", Status: "COMPLETED"},
		TotalPrice:    models.NewMoneyFromFloat(3000),
		TotalQuantity: 2,
		IsPaid:        true,
		PaidAt:        &paidAt,
		Items: []models.OrderItem{
			{ID: 5, ProductID: 9, Name: "Nike Jersey", Price: models.NewMoneyFromFloat(1500), Quantity: 2, Image: "/img/nike.png"},
		},
	}

	back := newOrderDoc(order).model()

	require.Len(t, back.Items, 1)
	assert.Equal(t, uint(11), back.Items[0].OrderID)
	assert.Equal(t, "Nike Jersey", back.Items[0].Name)
	assert.Equal(t, "1500.00", back.Items[0].Price.String())
	assert.Equal(t, "3000.00", back.TotalPrice.String())
	assert.Equal(t, "411001", back.ShippingAddress.ZipCode)
	assert.Equal(t, "tx-1", back.PaymentResult.ID)
	assert.True(t, back.IsPaid)
}

func TestCartDocumentRoundTripAssignsCartID(t *testing.T) {
	cart := &models.Cart{ID: 2, UserID: 8, Items: []models.CartItem{{ID: 4, ProductID: 1, Quantity: 10}}}

	back := newCartDoc(cart).model()

	require.Len(t, back.Items, 1)
	assert.Equal(t, uint(2), back.Items[0].CartID)
	assert.Equal(t, 10, back.Items[0].Quantity)
}
