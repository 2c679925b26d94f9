// backend/internal/adapters/out/firestore/cart_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	cartdom "fenestra/internal/domain/cart"
)

// CartRepositoryFS implements cart.Repository using Firestore.
//
// Collection design:
// - collection: carts
// - docId: ownerId ✅ (docId is the source of truth)
// - fields: lines, createdAt, updatedAt, expiresAt
//
// TTL:
// - Configure Firestore TTL on "expiresAt".
type CartRepositoryFS struct {
	Client *firestore.Client
}

func NewCartRepositoryFS(client *firestore.Client) *CartRepositoryFS {
	return &CartRepositoryFS{Client: client}
}

func (r *CartRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("carts")
}

// GetByOwnerID returns (nil, nil) if not found (nil policy: the application
// layer treats nil as "no cart yet").
func (r *CartRepositoryFS) GetByOwnerID(ctx context.Context, ownerID string) (*cartdom.Cart, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("cart_repository_fs: firestore client is nil")
	}
	owner := strings.TrimSpace(ownerID)
	if owner == "" {
		return nil, errors.New("cart_repository_fs: ownerID is empty")
	}

	snap, err := r.col().Doc(owner).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var c cartdom.Cart
	if err := snap.DataTo(&c); err != nil {
		return nil, err
	}
	c.ID = owner
	if c.Lines == nil {
		c.Lines = []cartdom.Line{}
	}
	return &c, nil
}

// Upsert saves the cart by docId = cart.ID (= ownerId), overwriting the full
// doc (simple & predictable).
func (r *CartRepositoryFS) Upsert(ctx context.Context, c *cartdom.Cart) error {
	if r == nil || r.Client == nil {
		return errors.New("cart_repository_fs: firestore client is nil")
	}
	if c == nil {
		return errors.New("cart_repository_fs: cart is nil")
	}
	owner := strings.TrimSpace(c.ID)
	if owner == "" {
		return errors.New("cart_repository_fs: Upsert requires cart.ID (= ownerId) as docId")
	}
	_, err := r.col().Doc(owner).Set(ctx, c)
	return err
}

func (r *CartRepositoryFS) DeleteByOwnerID(ctx context.Context, ownerID string) error {
	if r == nil || r.Client == nil {
		return errors.New("cart_repository_fs: firestore client is nil")
	}
	owner := strings.TrimSpace(ownerID)
	if owner == "" {
		return errors.New("cart_repository_fs: ownerID is empty")
	}
	_, err := r.col().Doc(owner).Delete(ctx)
	return err
}
