// backend/internal/adapters/out/db/variant_repository_pg.go
package db

import (
	"context"
	"database/sql"
	"strings"

	catalogdom "fenestra/internal/domain/catalog"
)

// VariantRepositoryPG implements catalog.VariantRepository using PostgreSQL.
//
// Table design:
//
//	product_variants(
//	  collection   TEXT NOT NULL,
//	  name         TEXT NOT NULL,
//	  category     TEXT NOT NULL,
//	  image_file   TEXT NOT NULL,
//	  material     TEXT NOT NULL,
//	  width_min    INT NOT NULL,
//	  width_max    INT NOT NULL,
//	  height_min   INT NOT NULL,
//	  height_max   INT NOT NULL,
//	  PRIMARY KEY (collection, name, material)
//	)
//
// One row per material; rows aggregate into a catalog.Variant per
// (collection, name). Material order follows insertion order (ordinal of the
// row's ctid is not relied on; materials are sorted by the query).
type VariantRepositoryPG struct {
	DB *sql.DB
}

func NewVariantRepositoryPG(db *sql.DB) *VariantRepositoryPG {
	return &VariantRepositoryPG{DB: db}
}

func (r *VariantRepositoryPG) ListCollections(ctx context.Context) ([]string, error) {
	const q = `SELECT DISTINCT collection FROM product_variants ORDER BY collection`

	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *VariantRepositoryPG) ListByCollection(ctx context.Context, collection string) ([]catalogdom.Variant, error) {
	const q = `
SELECT collection, name, category, image_file, material,
       width_min, width_max, height_min, height_max
FROM product_variants
WHERE collection = $1
ORDER BY name, material
`
	rows, err := r.DB.QueryContext(ctx, q, strings.TrimSpace(collection))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return aggregateVariantRows(rows)
}

func (r *VariantRepositoryPG) GetByName(ctx context.Context, collection, name string) (*catalogdom.Variant, error) {
	const q = `
SELECT collection, name, category, image_file, material,
       width_min, width_max, height_min, height_max
FROM product_variants
WHERE collection = $1 AND name = $2
ORDER BY material
`
	rows, err := r.DB.QueryContext(ctx, q, strings.TrimSpace(collection), strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	variants, err := aggregateVariantRows(rows)
	if err != nil {
		return nil, err
	}
	if len(variants) == 0 {
		return nil, catalogdom.ErrVariantNotFound
	}
	return &variants[0], nil
}

// aggregateVariantRows folds per-material rows into variants. Rows must be
// ordered by name so a variant's rows are adjacent.
func aggregateVariantRows(rows *sql.Rows) ([]catalogdom.Variant, error) {
	var out []catalogdom.Variant
	var cur *catalogdom.Variant

	for rows.Next() {
		var (
			collection, name, category, imageFile, material string
			b                                               catalogdom.DimensionBounds
		)
		if err := rows.Scan(
			&collection, &name, &category, &imageFile, &material,
			&b.WidthMin, &b.WidthMax, &b.HeightMin, &b.HeightMax,
		); err != nil {
			return nil, err
		}

		if cur == nil || cur.Name != name || cur.Collection != collection {
			out = append(out, catalogdom.Variant{
				Collection: collection,
				Name:       name,
				Category:   catalogdom.Category(category),
				ImageFile:  imageFile,
				Bounds:     map[string]catalogdom.DimensionBounds{},
			})
			cur = &out[len(out)-1]
		}

		cur.Materials = append(cur.Materials, material)
		cur.Bounds[material] = b
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

var _ catalogdom.VariantRepository = (*VariantRepositoryPG)(nil)
