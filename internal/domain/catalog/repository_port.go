// backend/internal/domain/catalog/repository_port.go
package catalog

import "context"

// VariantRepository is the persistence port for paneled variant collections.
//
// Storage (Postgres):
// - table: product_variants
// - one row per (collection, name, material) with the material's bounds
// - rows are aggregated into a Variant per (collection, name)
type VariantRepository interface {
	// ListCollections returns the known collection identifiers.
	ListCollections(ctx context.Context) ([]string, error)

	// ListByCollection returns all variants of a collection, name-ordered.
	ListByCollection(ctx context.Context, collection string) ([]Variant, error)

	// GetByName returns one variant, or ErrVariantNotFound.
	GetByName(ctx context.Context, collection, name string) (*Variant, error)
}
