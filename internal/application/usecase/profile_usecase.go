// backend/internal/application/usecase/profile_usecase.go
package usecase

import (
	"context"
	"strings"

	profiledom "fenestra/internal/domain/profile"
)

// ProfileUsecase reads the customer contact record, used by the storefront
// to pre-fill the submission and checkout forms.
type ProfileUsecase struct {
	repo profiledom.Repository
}

func NewProfileUsecase(repo profiledom.Repository) *ProfileUsecase {
	return &ProfileUsecase{repo: repo}
}

// Get returns the owner's profile, or profile.ErrNotFound.
func (uc *ProfileUsecase) Get(ctx context.Context, ownerID string) (*profiledom.Profile, error) {
	owner := strings.TrimSpace(ownerID)
	if owner == "" {
		return nil, ErrInvalidArgument
	}
	return uc.repo.GetByID(ctx, owner)
}
