// backend/internal/adapters/out/firestore/profile_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	profiledom "fenestra/internal/domain/profile"
)

// ProfileRepositoryFS implements profile.Repository using Firestore.
//
// Collection design:
// - collection: profiles
// - docId: auth uid ✅ (docId is the source of truth)
type ProfileRepositoryFS struct {
	Client *firestore.Client
}

func NewProfileRepositoryFS(client *firestore.Client) *ProfileRepositoryFS {
	return &ProfileRepositoryFS{Client: client}
}

func (r *ProfileRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("profiles")
}

func (r *ProfileRepositoryFS) GetByID(ctx context.Context, id string) (*profiledom.Profile, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("profile_repository_fs: firestore client is nil")
	}
	uid := strings.TrimSpace(id)
	if uid == "" {
		return nil, errors.New("profile_repository_fs: id is empty")
	}

	snap, err := r.col().Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, profiledom.ErrNotFound
		}
		return nil, err
	}

	var p profiledom.Profile
	if err := snap.DataTo(&p); err != nil {
		return nil, err
	}
	p.ID = snap.Ref.ID
	return &p, nil
}

// Upsert overwrites the full doc (simple & predictable).
func (r *ProfileRepositoryFS) Upsert(ctx context.Context, p *profiledom.Profile) error {
	if r == nil || r.Client == nil {
		return errors.New("profile_repository_fs: firestore client is nil")
	}
	if p == nil {
		return errors.New("profile_repository_fs: profile is nil")
	}
	if err := p.Validate(); err != nil {
		return err
	}
	_, err := r.col().Doc(strings.TrimSpace(p.ID)).Set(ctx, p)
	return err
}
