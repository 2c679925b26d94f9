// backend/internal/application/usecase/photo_usecase.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	photodom "fenestra/internal/domain/photo"
)

// SignedURLTTL is how long resolved photo URLs stay valid.
const SignedURLTTL = time.Hour

var (
	ErrPhotoForbidden = errors.New("photo_usecase: photo is owned by another user")
)

// PhotoUsecase coordinates customer photo uploads: local validation, object
// storage write, metadata row, signed URL resolution, cascade delete.
type PhotoUsecase struct {
	repo  photodom.Repository
	store photodom.ObjectStore
	clock Clock
}

func NewPhotoUsecase(repo photodom.Repository, store photodom.ObjectStore) *PhotoUsecase {
	return &PhotoUsecase{repo: repo, store: store, clock: systemClock{}}
}

// NewPhotoUsecaseWithClock is useful for tests.
func NewPhotoUsecaseWithClock(repo photodom.Repository, store photodom.ObjectStore, clock Clock) *PhotoUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &PhotoUsecase{repo: repo, store: store, clock: clock}
}

// Upload validates the file locally (non-image MIME and >5 MB are rejected
// before any network call), writes the object under a collision-resistant
// owner-scoped path, and records the metadata row. The metadata doc id is
// the photoId used everywhere else.
func (uc *PhotoUsecase) Upload(ctx context.Context, ownerID, fileName, mimeType string, data []byte) (*photodom.Photo, error) {
	owner := strings.TrimSpace(ownerID)
	if owner == "" {
		return nil, ErrInvalidArgument
	}

	// Local checks first: a rejected file must never leave the request.
	if err := photodom.CheckUpload(mimeType, int64(len(data))); err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	objectPath := fmt.Sprintf("photos/%s/%d-%s%s",
		owner, now.UnixNano(), shortSuffix(), strings.ToLower(path.Ext(fileName)))

	if err := uc.store.Put(ctx, objectPath, mimeType, data); err != nil {
		return nil, err
	}

	p := &photodom.Photo{
		OwnerID:      owner,
		StoragePath:  objectPath,
		OriginalName: strings.TrimSpace(fileName),
		Size:         int64(len(data)),
		MimeType:     strings.TrimSpace(mimeType),
		CreatedAt:    now,
	}
	id, err := uc.repo.Insert(ctx, p)
	if err != nil {
		// The object is already up; compensate so nothing unreferenced stays
		// behind in the bucket.
		if derr := uc.store.Delete(ctx, objectPath); derr != nil {
			log.Printf("[photo_uc] WARN: compensation delete failed path=%s err=%v", objectPath, derr)
		}
		return nil, err
	}
	p.ID = id
	return p, nil
}

// ResolveURL turns a photoId into a time-limited signed URL.
//
// When the metadata row is missing, the id is treated as a raw object path.
// This is a deliberate backward-compatibility branch for legacy identifiers
// that predate the metadata collection; it is logged so its use is visible.
func (uc *PhotoUsecase) ResolveURL(ctx context.Context, photoID string) (string, error) {
	pid := strings.TrimSpace(photoID)
	if pid == "" {
		return "", ErrInvalidArgument
	}

	objectPath := pid
	p, err := uc.repo.GetByID(ctx, pid)
	switch {
	case err == nil:
		objectPath = p.StoragePath
	case err == photodom.ErrNotFound:
		log.Printf("[photo_uc] WARN: metadata missing, treating id as object path id=%s", pid)
	default:
		return "", err
	}

	return uc.store.SignedDownloadURL(ctx, objectPath, SignedURLTTL)
}

// Delete removes the storage object first and the metadata row second.
// A failing object delete aborts before the metadata delete: orphaned
// metadata pointing at nothing must never exist.
func (uc *PhotoUsecase) Delete(ctx context.Context, ownerID, photoID string) error {
	owner := strings.TrimSpace(ownerID)
	pid := strings.TrimSpace(photoID)
	if owner == "" || pid == "" {
		return ErrInvalidArgument
	}

	p, err := uc.repo.GetByID(ctx, pid)
	if err != nil {
		return err
	}
	if p.OwnerID != owner {
		return ErrPhotoForbidden
	}

	if err := uc.store.Delete(ctx, p.StoragePath); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, pid)
}

func shortSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
