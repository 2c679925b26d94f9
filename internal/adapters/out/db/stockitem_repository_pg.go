// backend/internal/adapters/out/db/stockitem_repository_pg.go
package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	stockdom "fenestra/internal/domain/stockitem"
)

// StockItemRepositoryPG implements stockitem.Repository using PostgreSQL.
//
// Table design:
//
//	stock_items(
//	  id               TEXT PRIMARY KEY,
//	  name             TEXT NOT NULL,
//	  price_cents      BIGINT NOT NULL,
//	  stock_quantity   INT NOT NULL,
//	  image_file       TEXT NOT NULL DEFAULT '',
//	  discount_percent INT NOT NULL DEFAULT 0
//	)
//
//	stock_item_specs(
//	  stock_item_id TEXT NOT NULL REFERENCES stock_items(id) ON DELETE CASCADE,
//	  spec_key      TEXT NOT NULL,
//	  spec_value    TEXT NOT NULL,
//	  PRIMARY KEY (stock_item_id, spec_key)
//	)
type StockItemRepositoryPG struct {
	DB *sql.DB
}

func NewStockItemRepositoryPG(db *sql.DB) *StockItemRepositoryPG {
	return &StockItemRepositoryPG{DB: db}
}

func (r *StockItemRepositoryPG) List(ctx context.Context) ([]stockdom.StockItem, error) {
	const q = `
SELECT id, name, price_cents, stock_quantity, image_file, discount_percent
FROM stock_items
ORDER BY name
`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []stockdom.StockItem
	for rows.Next() {
		var s stockdom.StockItem
		if err := rows.Scan(&s.ID, &s.Name, &s.PriceCents, &s.StockQuantity, &s.ImageFile, &s.DiscountPercent); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Specs are loaded in one pass and distributed over the items.
	specs, err := r.loadAllSpecs(ctx)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Specifications = specs[out[i].ID]
	}
	return out, nil
}

func (r *StockItemRepositoryPG) GetByID(ctx context.Context, id string) (*stockdom.StockItem, error) {
	const q = `
SELECT id, name, price_cents, stock_quantity, image_file, discount_percent
FROM stock_items
WHERE id = $1
`
	var s stockdom.StockItem
	err := r.DB.QueryRowContext(ctx, q, strings.TrimSpace(id)).
		Scan(&s.ID, &s.Name, &s.PriceCents, &s.StockQuantity, &s.ImageFile, &s.DiscountPercent)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, stockdom.ErrNotFound
		}
		return nil, err
	}

	specs, err := r.loadSpecs(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	s.Specifications = specs
	return &s, nil
}

func (r *StockItemRepositoryPG) loadSpecs(ctx context.Context, id string) (map[string]string, error) {
	const q = `SELECT spec_key, spec_value FROM stock_item_specs WHERE stock_item_id = $1`

	rows, err := r.DB.QueryContext(ctx, q, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]string{}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, rows.Err()
}

func (r *StockItemRepositoryPG) loadAllSpecs(ctx context.Context) (map[string]map[string]string, error) {
	const q = `SELECT stock_item_id, spec_key, spec_value FROM stock_item_specs`

	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]map[string]string{}
	for rows.Next() {
		var id, k, v string
		if err := rows.Scan(&id, &k, &v); err != nil {
			return nil, err
		}
		if out[id] == nil {
			out[id] = map[string]string{}
		}
		out[id][k] = v
	}
	return out, rows.Err()
}

var _ stockdom.Repository = (*StockItemRepositoryPG)(nil)
