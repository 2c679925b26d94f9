// backend/internal/application/usecase/cart_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"

	cartdom "fenestra/internal/domain/cart"
)

var (
	ErrCartInvalidArgument = errors.New("cart_usecase: invalid argument")
	ErrCartNotFound        = errors.New("cart_usecase: not found")
)

// CartUsecase coordinates cart operations.
type CartUsecase struct {
	repo  cartdom.Repository
	clock Clock
}

func NewCartUsecase(repo cartdom.Repository) *CartUsecase {
	return &CartUsecase{repo: repo, clock: systemClock{}}
}

// NewCartUsecaseWithClock is useful for tests.
func NewCartUsecaseWithClock(repo cartdom.Repository, clock Clock) *CartUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &CartUsecase{repo: repo, clock: clock}
}

// Get returns the cart for the owner, or ErrCartNotFound.
func (uc *CartUsecase) Get(ctx context.Context, ownerID string) (*cartdom.Cart, error) {
	owner := strings.TrimSpace(ownerID)
	if owner == "" {
		return nil, ErrCartInvalidArgument
	}

	c, err := uc.repo.GetByOwnerID(ctx, owner)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCartNotFound
	}
	return c, nil
}

// GetOrCreate returns an existing cart; if absent, creates an empty one and
// persists it.
func (uc *CartUsecase) GetOrCreate(ctx context.Context, ownerID string) (*cartdom.Cart, error) {
	owner := strings.TrimSpace(ownerID)
	if owner == "" {
		return nil, ErrCartInvalidArgument
	}

	c, err := uc.repo.GetByOwnerID(ctx, owner)
	if err != nil {
		return nil, err
	}
	if c != nil {
		return c, nil
	}

	now := uc.clock.Now()
	newCart, err := cartdom.NewCart(owner, nil, now)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Upsert(ctx, newCart); err != nil {
		return nil, err
	}
	return newCart, nil
}

// AddItem increments qty for a stock item. qty must be >= 1.
func (uc *CartUsecase) AddItem(ctx context.Context, ownerID, stockItemID string, qty int) (*cartdom.Cart, error) {
	owner := strings.TrimSpace(ownerID)
	sid := strings.TrimSpace(stockItemID)
	if owner == "" || sid == "" || qty <= 0 {
		return nil, ErrCartInvalidArgument
	}

	c, err := uc.GetOrCreate(ctx, owner)
	if err != nil {
		return nil, err
	}
	if err := c.Add(sid, qty, uc.clock.Now()); err != nil {
		return nil, err
	}
	if err := uc.repo.Upsert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// SetQty sets the quantity for a stock item; qty <= 0 removes the line.
func (uc *CartUsecase) SetQty(ctx context.Context, ownerID, stockItemID string, qty int) (*cartdom.Cart, error) {
	owner := strings.TrimSpace(ownerID)
	sid := strings.TrimSpace(stockItemID)
	if owner == "" || sid == "" {
		return nil, ErrCartInvalidArgument
	}

	c, err := uc.GetOrCreate(ctx, owner)
	if err != nil {
		return nil, err
	}
	if err := c.SetQty(sid, qty, uc.clock.Now()); err != nil {
		return nil, err
	}
	if err := uc.repo.Upsert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// RemoveItem removes one unit of a stock item. Removing an absent item is a
// no-op so the call is safely idempotent.
func (uc *CartUsecase) RemoveItem(ctx context.Context, ownerID, stockItemID string) (*cartdom.Cart, error) {
	owner := strings.TrimSpace(ownerID)
	sid := strings.TrimSpace(stockItemID)
	if owner == "" || sid == "" {
		return nil, ErrCartInvalidArgument
	}

	c, err := uc.GetOrCreate(ctx, owner)
	if err != nil {
		return nil, err
	}
	if err := c.Remove(sid, uc.clock.Now()); err != nil {
		return nil, err
	}
	if err := uc.repo.Upsert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
