// backend/internal/domain/photo/repository_port.go
package photo

import (
	"context"
	"time"
)

// Repository persists photo metadata.
//
// Storage (Firestore):
// - collection: photos
// - docId: server-assigned (this doc id IS the public photoId)
type Repository interface {
	// Insert stores metadata and returns the assigned id.
	Insert(ctx context.Context, p *Photo) (string, error)

	// GetByID returns metadata or ErrNotFound.
	GetByID(ctx context.Context, id string) (*Photo, error)

	// Delete removes the metadata row.
	Delete(ctx context.Context, id string) error
}

// ObjectStore is the outbound port to the private photo bucket.
type ObjectStore interface {
	// Put writes the object bytes.
	Put(ctx context.Context, objectPath, contentType string, data []byte) error

	// Delete removes the object. Deleting a missing object is not an error.
	Delete(ctx context.Context, objectPath string) error

	// SignedDownloadURL issues a time-limited V4 GET URL for the object.
	SignedDownloadURL(ctx context.Context, objectPath string, expiresIn time.Duration) (string, error)
}
