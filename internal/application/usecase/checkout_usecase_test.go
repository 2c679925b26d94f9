// backend/internal/application/usecase/checkout_usecase_test.go
package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderdom "fenestra/internal/domain/order"
	stockdom "fenestra/internal/domain/stockitem"
)

func newCheckoutFixture() (*CheckoutUsecase, *CartUsecase, *memCartRepo) {
	carts := newMemCartRepo()
	stock := &memStockRepo{items: map[string]stockdom.StockItem{
		"door-1":   {ID: "door-1", Name: "Showroom voordeur", PriceCents: 89900},
		"window-1": {ID: "window-1", Name: "Restpartij draaikiepraam", PriceCents: 45000, DiscountPercent: 20},
	}}
	uc := NewCheckoutUsecaseWithClock(carts, stock, fixedClock{t: testNow})
	uc.Delay = 0
	return uc, NewCartUsecaseWithClock(carts, fixedClock{t: testNow}), carts
}

func pickupInfo() orderdom.CustomerInfo {
	return orderdom.CustomerInfo{
		FullName: "J. de Vries",
		Phone:    "0612345678",
		Email:    "j.devries@example.nl",
	}
}

func TestCheckoutPricesLinesAndClearsCart(t *testing.T) {
	uc, carts, repo := newCheckoutFixture()
	ctx := context.Background()

	_, err := carts.AddItem(ctx, "user-1", "door-1", 1)
	require.NoError(t, err)
	_, err = carts.AddItem(ctx, "user-1", "window-1", 2)
	require.NoError(t, err)

	conf, err := uc.Checkout(ctx, "user-1", pickupInfo(), orderdom.DeliveryPickup)
	require.NoError(t, err)

	require.Len(t, conf.Lines, 2)
	assert.True(t, strings.HasPrefix(conf.OrderNumber, "FEN-"))
	assert.Equal(t, orderdom.DeliveryPickup, conf.DeliveryMethod)

	// The discounted window is priced at 80% of list.
	byID := map[string]orderdom.Line{}
	for _, ln := range conf.Lines {
		byID[ln.StockItemID] = ln
	}
	assert.Equal(t, int64(89900), byID["door-1"].UnitPriceCents)
	assert.Equal(t, int64(36000), byID["window-1"].UnitPriceCents)
	assert.Equal(t, int64(89900+2*36000), conf.TotalCents)

	// The cart is empty afterwards but still exists.
	c, err := repo.GetByOwnerID(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Empty(t, c.Lines)
}

func TestCheckoutRequiresContactFields(t *testing.T) {
	uc, carts, _ := newCheckoutFixture()
	ctx := context.Background()

	_, err := carts.AddItem(ctx, "user-1", "door-1", 1)
	require.NoError(t, err)

	// Pickup: address not required, but phone is.
	info := pickupInfo()
	info.Phone = ""
	_, err = uc.Checkout(ctx, "user-1", info, orderdom.DeliveryPickup)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "phone", verr.Fields[0].Field)

	// Delivery additionally requires the address block.
	_, err = uc.Checkout(ctx, "user-1", pickupInfo(), orderdom.DeliveryDelivery)
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 3)
}

func TestCheckoutRejectsEmptyCartAndBadMethod(t *testing.T) {
	uc, _, _ := newCheckoutFixture()
	ctx := context.Background()

	_, err := uc.Checkout(ctx, "user-1", pickupInfo(), orderdom.DeliveryPickup)
	assert.ErrorIs(t, err, orderdom.ErrEmptyCart)

	_, err = uc.Checkout(ctx, "user-1", pickupInfo(), orderdom.DeliveryMethod("drone"))
	assert.ErrorIs(t, err, ErrCheckoutInvalidMethod)
}
