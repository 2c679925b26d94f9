// backend/internal/application/usecase/checkout_usecase.go
package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	cartdom "fenestra/internal/domain/cart"
	orderdom "fenestra/internal/domain/order"
	stockdom "fenestra/internal/domain/stockitem"
)

var (
	ErrCheckoutInvalidMethod = errors.New("checkout: ongeldige bezorgmethode")
)

// DefaultProcessingDelay simulates payment processing. There is no gateway
// behind this flow; the delay stands in for one until a real payment/order
// system replaces it.
const DefaultProcessingDelay = 2 * time.Second

// CheckoutUsecase turns a cart into an order confirmation.
type CheckoutUsecase struct {
	carts cartdom.Repository
	stock stockdom.Repository
	clock Clock

	// Delay is the simulated processing time; tests set it to zero.
	Delay time.Duration
}

func NewCheckoutUsecase(carts cartdom.Repository, stock stockdom.Repository) *CheckoutUsecase {
	return &CheckoutUsecase{
		carts: carts,
		stock: stock,
		clock: systemClock{},
		Delay: DefaultProcessingDelay,
	}
}

// NewCheckoutUsecaseWithClock is useful for tests.
func NewCheckoutUsecaseWithClock(carts cartdom.Repository, stock stockdom.Repository, clock Clock) *CheckoutUsecase {
	uc := NewCheckoutUsecase(carts, stock)
	if clock != nil {
		uc.clock = clock
	}
	return uc
}

// Checkout validates the contact block (address fields only for delivery),
// prices the cart lines at current stock prices, waits out the simulated
// processing delay, clears the cart, and returns the confirmation.
func (uc *CheckoutUsecase) Checkout(
	ctx context.Context,
	ownerID string,
	info orderdom.CustomerInfo,
	method orderdom.DeliveryMethod,
) (*orderdom.Confirmation, error) {
	owner := strings.TrimSpace(ownerID)
	if owner == "" {
		return nil, ErrInvalidArgument
	}
	if !method.Valid() {
		return nil, ErrCheckoutInvalidMethod
	}
	if missing := info.MissingFields(method); len(missing) > 0 {
		return nil, requiredError(missing)
	}

	c, err := uc.carts.GetByOwnerID(ctx, owner)
	if err != nil {
		return nil, err
	}
	if c == nil || len(c.Lines) == 0 {
		return nil, orderdom.ErrEmptyCart
	}

	// Price the lines before consuming the cart.
	lines := make([]orderdom.Line, 0, len(c.Lines))
	var total int64
	for _, ln := range c.Lines {
		item, err := uc.stock.GetByID(ctx, ln.StockItemID)
		if err != nil {
			return nil, err
		}
		unit := item.EffectivePriceCents()
		lineTotal := unit * int64(ln.Qty)
		lines = append(lines, orderdom.Line{
			StockItemID:    item.ID,
			Name:           item.Name,
			Qty:            ln.Qty,
			UnitPriceCents: unit,
			TotalCents:     lineTotal,
		})
		total += lineTotal
	}

	// Simulated payment processing; context-aware so a dropped request does
	// not consume the cart.
	if uc.Delay > 0 {
		select {
		case <-time.After(uc.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	now := uc.clock.Now()
	if _, err := c.ConsumeAll(now); err != nil {
		return nil, err
	}
	if err := uc.carts.Upsert(ctx, c); err != nil {
		return nil, err
	}

	conf := &orderdom.Confirmation{
		OrderNumber:    orderNumber(),
		OwnerID:        owner,
		Lines:          lines,
		TotalCents:     total,
		DeliveryMethod: method,
		Customer:       info,
		CreatedAt:      now,
	}

	log.Printf("[checkout_uc] OK: order confirmed owner=%s number=%s total=%d", owner, conf.OrderNumber, total)
	return conf, nil
}

func orderNumber() string {
	return "FEN-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
}
