// backend/internal/domain/photo/entity.go
package photo

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound = errors.New("photo: not found")
	ErrInvalid  = errors.New("photo: invalid")

	// User-facing upload rejections (checked before any network call).
	ErrTooLarge   = errors.New("photo: bestand is te groot (maximaal 5 MB)")
	ErrNotAnImage = errors.New("photo: alleen afbeeldingen zijn toegestaan")
)

// MaxUploadBytes is the upload size cap.
const MaxUploadBytes = 5 << 20 // 5 MB

// Photo is the metadata row for one uploaded customer photo. The binary
// itself lives in object storage under StoragePath; everywhere else in the
// system the photo travels as its metadata id.
type Photo struct {
	ID           string    `json:"id" firestore:"id"`
	OwnerID      string    `json:"ownerId" firestore:"ownerId"`
	StoragePath  string    `json:"storagePath" firestore:"storagePath"`
	OriginalName string    `json:"originalName" firestore:"originalName"`
	Size         int64     `json:"size" firestore:"size"`
	MimeType     string    `json:"mimeType" firestore:"mimeType"`
	CreatedAt    time.Time `json:"createdAt" firestore:"createdAt"`
}

func (p *Photo) Validate() error {
	if p == nil {
		return ErrInvalid
	}
	if strings.TrimSpace(p.OwnerID) == "" || strings.TrimSpace(p.StoragePath) == "" {
		return ErrInvalid
	}
	if p.Size <= 0 {
		return ErrInvalid
	}
	return nil
}

// CheckUpload validates an upload candidate locally. It must be called
// before touching the network so rejected files never leave the request.
func CheckUpload(mimeType string, size int64) error {
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(mimeType)), "image/") {
		return ErrNotAnImage
	}
	if size > MaxUploadBytes {
		return ErrTooLarge
	}
	if size <= 0 {
		return ErrInvalid
	}
	return nil
}
