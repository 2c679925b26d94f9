// backend/internal/domain/stockitem/repository_port.go
package stockitem

import "context"

// Repository reads shop stock items.
//
// Storage (Postgres):
// - table: stock_items
// - specifications stored as key/value rows in stock_item_specs
type Repository interface {
	// List returns all stock items, name-ordered.
	List(ctx context.Context) ([]StockItem, error)

	// GetByID returns one stock item, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*StockItem, error)
}
