// backend/internal/domain/profile/repository_port.go
package profile

import "context"

// Repository persists customer profiles (Firestore collection: profiles,
// docId = auth uid).
type Repository interface {
	// GetByID returns the profile, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*Profile, error)

	// Upsert creates or fully overwrites the profile.
	Upsert(ctx context.Context, p *Profile) error
}
