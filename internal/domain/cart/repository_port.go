// backend/internal/domain/cart/repository_port.go
package cart

import "context"

// Repository is the persistence port for Cart.
//
// Storage (Firestore):
// - collection: carts
// - docId: ownerId (auth uid)
// - fields: lines, createdAt, updatedAt, expiresAt
//
// TTL:
// - Configure Firestore TTL on "expiresAt"; the domain refreshes it on every
//   mutation via touch().
type Repository interface {
	// GetByOwnerID returns (nil, nil) when the owner has no cart yet.
	GetByOwnerID(ctx context.Context, ownerID string) (*Cart, error)

	// Upsert saves the cart (create or update).
	Upsert(ctx context.Context, c *Cart) error

	// DeleteByOwnerID deletes the cart (e.g. after checkout).
	DeleteByOwnerID(ctx context.Context, ownerID string) error
}
