// backend/internal/adapters/out/firestore/photo_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	photodom "fenestra/internal/domain/photo"
)

// PhotoRepositoryFS implements photo.Repository using Firestore.
//
// Collection design:
// - collection: photos
// - docId: server-assigned (this id is the photoId used everywhere else)
type PhotoRepositoryFS struct {
	Client *firestore.Client
}

func NewPhotoRepositoryFS(client *firestore.Client) *PhotoRepositoryFS {
	return &PhotoRepositoryFS{Client: client}
}

func (r *PhotoRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("photos")
}

func (r *PhotoRepositoryFS) Insert(ctx context.Context, p *photodom.Photo) (string, error) {
	if r == nil || r.Client == nil {
		return "", errors.New("photo_repository_fs: firestore client is nil")
	}
	if p == nil {
		return "", errors.New("photo_repository_fs: photo is nil")
	}
	if err := p.Validate(); err != nil {
		return "", err
	}

	ref := r.col().NewDoc()
	p.ID = ref.ID
	if _, err := ref.Create(ctx, p); err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (r *PhotoRepositoryFS) GetByID(ctx context.Context, id string) (*photodom.Photo, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("photo_repository_fs: firestore client is nil")
	}
	pid := strings.TrimSpace(id)
	if pid == "" {
		return nil, errors.New("photo_repository_fs: id is empty")
	}

	snap, err := r.col().Doc(pid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, photodom.ErrNotFound
		}
		return nil, err
	}

	var p photodom.Photo
	if err := snap.DataTo(&p); err != nil {
		return nil, err
	}
	p.ID = snap.Ref.ID
	return &p, nil
}

func (r *PhotoRepositoryFS) Delete(ctx context.Context, id string) error {
	if r == nil || r.Client == nil {
		return errors.New("photo_repository_fs: firestore client is nil")
	}
	pid := strings.TrimSpace(id)
	if pid == "" {
		return errors.New("photo_repository_fs: id is empty")
	}
	_, err := r.col().Doc(pid).Delete(ctx)
	return err
}
