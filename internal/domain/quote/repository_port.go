// backend/internal/domain/quote/repository_port.go
package quote

import (
	"context"
	"time"
)

// Repository is the persistence port for quotes.
//
// Storage (Firestore):
// - collection: quotes
// - docId: server-assigned
// - fields: ownerId, items([]map), status, customerDetails, createdAt, updatedAt
//
// The two multi-step operations are transactional by contract, not by
// accident: implementations must make AppendItemToConcept and
// SubmitAllConcept atomic so that the at-most-one-concept invariant and the
// all-or-nothing submission hold even across concurrent callers.
type Repository interface {
	// GetByID returns a quote or ErrNotFound.
	GetByID(ctx context.Context, id string) (*Quote, error)

	// ListByOwner returns the owner's quotes, newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]Quote, error)

	// AppendItemToConcept finds the owner's concept draft (most recent first),
	// creates one when absent, and appends item — all inside one transaction.
	// After it returns, exactly one concept draft exists for the owner and its
	// last item is the appended one.
	AppendItemToConcept(ctx context.Context, ownerID string, item ConfiguredItem, now time.Time) (*Quote, error)

	// SubmitAllConcept stamps every concept draft of the owner to submitted
	// with identical customer details, atomically. On error no draft moves.
	// Returns the submitted quotes.
	SubmitAllConcept(ctx context.Context, ownerID string, details CustomerDetails, now time.Time) ([]Quote, error)

	// Delete removes a quote document. Ownership is checked by the caller.
	Delete(ctx context.Context, id string) error
}
