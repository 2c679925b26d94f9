// backend/internal/domain/cart/entity.go
package cart

import (
	"errors"
	"sort"
	"strings"
	"time"
)

var (
	ErrInvalidCart = errors.New("cart: invalid")
)

// DefaultCartTTL is the inactivity window after which the cart becomes
// eligible for auto deletion (Firestore TTL configured on expiresAt).
const DefaultCartTTL = 30 * 24 * time.Hour

// Line is one line item: a stock item and how many of it.
type Line struct {
	StockItemID string `json:"stockItemId" firestore:"stockItemId"`
	Qty         int    `json:"qty" firestore:"qty"`
}

// Cart is the per-owner shop cart.
//   - docId = ownerId (auth uid)
//   - Lines never hold a zero or negative quantity: removing the last unit
//     removes the line entirely
//   - ExpiresAt is refreshed on every mutation
type Cart struct {
	// ID is the Firestore docId (= ownerId).
	ID string `json:"id" firestore:"id"`

	Lines []Line `json:"lines" firestore:"lines"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`

	// ExpiresAt is used for Firestore TTL.
	ExpiresAt time.Time `json:"expiresAt" firestore:"expiresAt"`
}

// NewCart creates a new cart doc. id is the Firestore docId (ownerId).
// lines can be nil (treated as empty).
func NewCart(id string, lines []Line, now time.Time) (*Cart, error) {
	c := &Cart{
		ID:        strings.TrimSpace(id),
		Lines:     cloneLines(lines),
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(DefaultCartTTL),
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Add increases the quantity for a stock item. qty must be >= 1.
func (c *Cart) Add(stockItemID string, qty int, now time.Time) error {
	if c == nil {
		return ErrInvalidCart
	}
	sid := strings.TrimSpace(stockItemID)
	if sid == "" || qty <= 0 {
		return ErrInvalidCart
	}

	idx := findLineIndex(c.Lines, sid)
	if idx >= 0 {
		c.Lines[idx].Qty += qty
	} else {
		c.Lines = append(c.Lines, Line{StockItemID: sid, Qty: qty})
	}

	c.touch(now)
	return c.validate()
}

// SetQty sets the quantity for a stock item. qty <= 0 removes the line.
func (c *Cart) SetQty(stockItemID string, qty int, now time.Time) error {
	if c == nil {
		return ErrInvalidCart
	}
	sid := strings.TrimSpace(stockItemID)
	if sid == "" {
		return ErrInvalidCart
	}

	idx := findLineIndex(c.Lines, sid)

	if qty <= 0 {
		// Removing an absent line is a no-op.
		if idx >= 0 {
			c.Lines = removeIndex(c.Lines, idx)
		}
		c.touch(now)
		return c.validate()
	}

	if idx >= 0 {
		c.Lines[idx].Qty = qty
	} else {
		c.Lines = append(c.Lines, Line{StockItemID: sid, Qty: qty})
	}

	c.touch(now)
	return c.validate()
}

// Remove removes one unit; the last unit removes the line.
func (c *Cart) Remove(stockItemID string, now time.Time) error {
	if c == nil {
		return ErrInvalidCart
	}
	sid := strings.TrimSpace(stockItemID)
	if sid == "" {
		return ErrInvalidCart
	}
	idx := findLineIndex(c.Lines, sid)
	if idx < 0 {
		// no-op
		return nil
	}
	return c.SetQty(sid, c.Lines[idx].Qty-1, now)
}

// Qty returns the quantity for a stock item (0 when absent).
func (c *Cart) Qty(stockItemID string) int {
	if c == nil {
		return 0
	}
	idx := findLineIndex(c.Lines, strings.TrimSpace(stockItemID))
	if idx < 0 {
		return 0
	}
	return c.Lines[idx].Qty
}

// ConsumeAll clears the lines for order creation and returns a snapshot.
// Checkout flow: build the order from the snapshot, then persist the emptied
// cart in the same request.
func (c *Cart) ConsumeAll(now time.Time) ([]Line, error) {
	if c == nil {
		return nil, ErrInvalidCart
	}
	snap := cloneLines(c.Lines)
	c.Lines = []Line{}
	c.touch(now)
	if err := c.validate(); err != nil {
		return nil, err
	}
	return snap, nil
}

func (c *Cart) touch(now time.Time) {
	c.UpdatedAt = now
	c.ExpiresAt = now.Add(DefaultCartTTL)
}

func (c *Cart) validate() error {
	if c == nil {
		return ErrInvalidCart
	}
	if strings.TrimSpace(c.ID) == "" {
		return ErrInvalidCart
	}
	if c.CreatedAt.IsZero() || c.UpdatedAt.IsZero() || c.ExpiresAt.IsZero() {
		return ErrInvalidCart
	}
	if c.UpdatedAt.Before(c.CreatedAt) || c.ExpiresAt.Before(c.UpdatedAt) {
		return ErrInvalidCart
	}

	if len(c.Lines) == 0 {
		return nil
	}

	c.Lines = normalizeAndMerge(c.Lines)

	for _, ln := range c.Lines {
		if strings.TrimSpace(ln.StockItemID) == "" || ln.Qty <= 0 {
			return ErrInvalidCart
		}
	}
	return nil
}

// ----------------------------
// Helpers
// ----------------------------

func findLineIndex(lines []Line, sid string) int {
	for i := range lines {
		if lines[i].StockItemID == sid {
			return i
		}
	}
	return -1
}

func removeIndex(lines []Line, idx int) []Line {
	if idx < 0 || idx >= len(lines) {
		return lines
	}
	// preserve order
	return append(lines[:idx], lines[idx+1:]...)
}

func normalizeAndMerge(src []Line) []Line {
	m := map[string]int{}
	for _, ln := range src {
		sid := strings.TrimSpace(ln.StockItemID)
		if sid == "" || ln.Qty <= 0 {
			continue
		}
		m[sid] += ln.Qty
	}

	ids := make([]string, 0, len(m))
	for sid := range m {
		ids = append(ids, sid)
	}
	sort.Strings(ids)

	out := make([]Line, 0, len(ids))
	for _, sid := range ids {
		out = append(out, Line{StockItemID: sid, Qty: m[sid]})
	}
	return out
}

func cloneLines(src []Line) []Line {
	if len(src) == 0 {
		return []Line{}
	}
	cp := make([]Line, len(src))
	copy(cp, src)
	return normalizeAndMerge(cp)
}
