// backend/internal/domain/stockitem/entity.go
package stockitem

import (
	"errors"
)

var (
	ErrNotFound = errors.New("stockitem: not found")
)

// StockItem is one shop article sold as-is (no configuration): showroom
// models, leftover stock, hardware.
type StockItem struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	PriceCents      int64             `json:"priceCents"`
	StockQuantity   int               `json:"stockQuantity"`
	ImageFile       string            `json:"imageFile"`
	Specifications  map[string]string `json:"specifications,omitempty"`
	DiscountPercent int               `json:"discountPercent"`
}

// EffectivePriceCents applies the discount percentage, rounding down.
func (s StockItem) EffectivePriceCents() int64 {
	if s.DiscountPercent <= 0 {
		return s.PriceCents
	}
	if s.DiscountPercent >= 100 {
		return 0
	}
	return s.PriceCents * int64(100-s.DiscountPercent) / 100
}
