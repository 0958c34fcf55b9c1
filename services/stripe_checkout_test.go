package services

import (
	"testing"

	"ticketing-service/models"

	"github.com/stretchr/testify/assert"
)

func TestCheckoutAmount_FreeEvent(t *testing.T) {
	amount, err := CheckoutAmount("49.99", true)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), amount)
}

func TestCheckoutAmount_PaidEvent(t *testing.T) {
	cases := map[string]int64{
		"24.99": 2499,
		"50":    5000,
		"19.9":  1990,
		"0.5":   50,
	}
	for price, want := range cases {
		amount, err := CheckoutAmount(price, false)
		assert.NoError(t, err, "price %q", price)
		assert.Equal(t, want, amount, "price %q", price)
	}
}

func TestCheckoutAmount_InvalidPrice(t *testing.T) {
	_, err := CheckoutAmount("not-a-number", false)
	assert.Error(t, err)
}

func TestBuildSessionParams(t *testing.T) {
	svc := NewStripeCheckoutService("sk_test_123", "https://example.com/")

	intent := models.OrderIntent{
		EventTitle: "Go Conference",
		EventID:    "65f1c0ffee0000000000aaaa",
		Price:      "120.50",
		IsFree:     false,
		BuyerID:    "65f1c0ffee0000000000bbbb",
	}

	params, err := svc.buildSessionParams(intent)
	assert.NoError(t, err)

	assert.Equal(t, "payment", *params.Mode)
	assert.Equal(t, "65f1c0ffee0000000000aaaa", params.Metadata["eventId"])
	assert.Equal(t, "65f1c0ffee0000000000bbbb", params.Metadata["buyerId"])

	assert.Contains(t, *params.SuccessURL, "/events/65f1c0ffee0000000000aaaa")
	assert.Contains(t, *params.SuccessURL, "success=1")
	assert.Contains(t, *params.CancelURL, "/events/65f1c0ffee0000000000aaaa")
	assert.Contains(t, *params.CancelURL, "cancel=1")
	assert.Equal(t, "https://example.com/events/65f1c0ffee0000000000aaaa?success=1", *params.SuccessURL)

	assert.Len(t, params.LineItems, 1)
	item := params.LineItems[0]
	assert.Equal(t, int64(1), *item.Quantity)
	assert.Equal(t, int64(12050), *item.PriceData.UnitAmount)
	assert.Equal(t, "usd", *item.PriceData.Currency)
	assert.Equal(t, "Go Conference", *item.PriceData.ProductData.Name)
}

func TestBuildSessionParams_FreeEventZeroAmount(t *testing.T) {
	svc := NewStripeCheckoutService("sk_test_123", "https://example.com")

	params, err := svc.buildSessionParams(models.OrderIntent{
		EventTitle: "Community Meetup",
		EventID:    "65f1c0ffee0000000000aaaa",
		Price:      "15.00",
		IsFree:     true,
		BuyerID:    "65f1c0ffee0000000000bbbb",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), *params.LineItems[0].PriceData.UnitAmount)
}
