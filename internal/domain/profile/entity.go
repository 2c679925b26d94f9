// backend/internal/domain/profile/entity.go
package profile

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound = errors.New("profile: not found")
	ErrInvalid  = errors.New("profile: invalid")
)

// Profile is the customer contact record, keyed by the auth uid.
// It is upserted whenever a quote batch is submitted so the next submission
// form can be pre-filled.
type Profile struct {
	ID         string    `json:"id" firestore:"id"` // auth uid
	FullName   string    `json:"fullName" firestore:"fullName"`
	Address    string    `json:"address" firestore:"address"`
	PostalCode string    `json:"postalCode" firestore:"postalCode"`
	City       string    `json:"city" firestore:"city"`
	Phone      string    `json:"phone" firestore:"phone"`
	UpdatedAt  time.Time `json:"updatedAt" firestore:"updatedAt"`
}

func (p *Profile) Validate() error {
	if p == nil || strings.TrimSpace(p.ID) == "" {
		return ErrInvalid
	}
	return nil
}
