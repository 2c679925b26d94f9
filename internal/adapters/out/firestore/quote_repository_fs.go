// backend/internal/adapters/out/firestore/quote_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	quotedom "fenestra/internal/domain/quote"
)

// QuoteRepositoryFS implements quote.Repository using Firestore.
//
// Collection design:
// - collection: quotes
// - docId: server-assigned
// - fields: ownerId, items, status, customerDetails, createdAt, updatedAt
//
// The (ownerId, status, createdAt desc) query needs a composite index.
type QuoteRepositoryFS struct {
	Client *firestore.Client
}

func NewQuoteRepositoryFS(client *firestore.Client) *QuoteRepositoryFS {
	return &QuoteRepositoryFS{Client: client}
}

func (r *QuoteRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("quotes")
}

func (r *QuoteRepositoryFS) GetByID(ctx context.Context, id string) (*quotedom.Quote, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("quote_repository_fs: firestore client is nil")
	}
	qid := strings.TrimSpace(id)
	if qid == "" {
		return nil, errors.New("quote_repository_fs: id is empty")
	}

	snap, err := r.col().Doc(qid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, quotedom.ErrNotFound
		}
		return nil, err
	}
	return quoteFromSnapshot(snap)
}

func (r *QuoteRepositoryFS) ListByOwner(ctx context.Context, ownerID string) ([]quotedom.Quote, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("quote_repository_fs: firestore client is nil")
	}
	owner := strings.TrimSpace(ownerID)
	if owner == "" {
		return nil, errors.New("quote_repository_fs: ownerID is empty")
	}

	snaps, err := r.col().
		Where("ownerId", "==", owner).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}

	out := make([]quotedom.Quote, 0, len(snaps))
	for _, snap := range snaps {
		q, err := quoteFromSnapshot(snap)
		if err != nil {
			return nil, err
		}
		out = append(out, *q)
	}
	return out, nil
}

// AppendItemToConcept runs find-or-create-append in one transaction.
// Two concurrent appends for the same owner serialize here, so a second
// concept draft can never be created (the at-most-one-concept invariant).
func (r *QuoteRepositoryFS) AppendItemToConcept(
	ctx context.Context,
	ownerID string,
	item quotedom.ConfiguredItem,
	now time.Time,
) (*quotedom.Quote, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("quote_repository_fs: firestore client is nil")
	}
	owner := strings.TrimSpace(ownerID)
	if owner == "" {
		return nil, errors.New("quote_repository_fs: ownerID is empty")
	}

	var result *quotedom.Quote

	err := r.Client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		query := r.col().
			Where("ownerId", "==", owner).
			Where("status", "==", string(quotedom.StatusConcept)).
			OrderBy("createdAt", firestore.Desc).
			Limit(1)

		snaps, err := tx.Documents(query).GetAll()
		if err != nil {
			return err
		}

		if len(snaps) == 0 {
			draft, err := quotedom.NewConcept(owner, now)
			if err != nil {
				return err
			}
			ref := r.col().NewDoc()
			draft.ID = ref.ID
			if err := draft.AppendItem(item, now); err != nil {
				return err
			}
			result = draft
			return tx.Create(ref, draft)
		}

		draft, err := quoteFromSnapshot(snaps[0])
		if err != nil {
			return err
		}
		if err := draft.AppendItem(item, now); err != nil {
			return err
		}
		result = draft
		return tx.Set(snaps[0].Ref, draft)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// SubmitAllConcept stamps all of the owner's concept drafts to submitted with
// identical customer details in one transaction: either the whole batch moves
// forward, or none of it does.
func (r *QuoteRepositoryFS) SubmitAllConcept(
	ctx context.Context,
	ownerID string,
	details quotedom.CustomerDetails,
	now time.Time,
) ([]quotedom.Quote, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("quote_repository_fs: firestore client is nil")
	}
	owner := strings.TrimSpace(ownerID)
	if owner == "" {
		return nil, errors.New("quote_repository_fs: ownerID is empty")
	}

	var submitted []quotedom.Quote

	err := r.Client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		submitted = nil

		query := r.col().
			Where("ownerId", "==", owner).
			Where("status", "==", string(quotedom.StatusConcept))

		snaps, err := tx.Documents(query).GetAll()
		if err != nil {
			return err
		}

		for _, snap := range snaps {
			draft, err := quoteFromSnapshot(snap)
			if err != nil {
				return err
			}
			if err := draft.Submit(details, now); err != nil {
				return err
			}
			if err := tx.Set(snap.Ref, draft); err != nil {
				return err
			}
			submitted = append(submitted, *draft)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return submitted, nil
}

func (r *QuoteRepositoryFS) Delete(ctx context.Context, id string) error {
	if r == nil || r.Client == nil {
		return errors.New("quote_repository_fs: firestore client is nil")
	}
	qid := strings.TrimSpace(id)
	if qid == "" {
		return errors.New("quote_repository_fs: id is empty")
	}
	_, err := r.col().Doc(qid).Delete(ctx)
	return err
}

// quoteFromSnapshot decodes a quote doc. The docId is the source of truth for
// the id, whatever the stored field says.
func quoteFromSnapshot(snap *firestore.DocumentSnapshot) (*quotedom.Quote, error) {
	var q quotedom.Quote
	if err := snap.DataTo(&q); err != nil {
		return nil, err
	}
	q.ID = snap.Ref.ID
	if q.Items == nil {
		q.Items = []quotedom.ConfiguredItem{}
	}
	return &q, nil
}
