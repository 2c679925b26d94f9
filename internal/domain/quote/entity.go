// backend/internal/domain/quote/entity.go
package quote

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidQuote    = errors.New("quote: invalid")
	ErrNotFound        = errors.New("quote: not found")
	ErrNotConcept      = errors.New("quote: draft is not in concept state")
	ErrBadTransition   = errors.New("quote: illegal status transition")
	ErrDuplicateItemID = errors.New("quote: duplicate item id in draft")
	ErrForbidden       = errors.New("quote: draft is owned by another user")
)

// MaxPhotoRefsPerItem caps attachments per configured item.
const MaxPhotoRefsPerItem = 5

// Status of a draft aggregate. Transitions are strictly forward:
// concept → submitted → reviewed → approved. There is no way back to concept.
type Status string

const (
	StatusConcept   Status = "concept"
	StatusSubmitted Status = "submitted"
	StatusReviewed  Status = "reviewed"
	StatusApproved  Status = "approved"
)

var statusOrder = map[Status]int{
	StatusConcept:   0,
	StatusSubmitted: 1,
	StatusReviewed:  2,
	StatusApproved:  3,
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	_, ok := statusOrder[s]
	return ok
}

// CanTransitionTo reports whether next is a legal forward step from s.
func (s Status) CanTransitionTo(next Status) bool {
	a, okA := statusOrder[s]
	b, okB := statusOrder[next]
	return okA && okB && b == a+1
}

// ConfiguredItem is one fully specified product configuration. Once appended
// to a draft it is immutable; changing one means deleting the draft item and
// configuring again.
type ConfiguredItem struct {
	// ID is unique within its draft. Clients may supply one; the service
	// generates one otherwise.
	ID            string            `json:"id" firestore:"id"`
	Model         string            `json:"model" firestore:"model"`
	Category      string            `json:"category" firestore:"category"`
	FormData      map[string]string `json:"formData" firestore:"formData"`
	PhotoRefs     []string          `json:"photoRefs" firestore:"photoRefs"`
	ModelImageRef string            `json:"modelImageRef" firestore:"modelImageRef"`
	AddedAt       time.Time         `json:"addedAt" firestore:"addedAt"`
}

func (it *ConfiguredItem) validate() error {
	if it == nil {
		return ErrInvalidQuote
	}
	if strings.TrimSpace(it.ID) == "" || strings.TrimSpace(it.Model) == "" {
		return ErrInvalidQuote
	}
	if strings.TrimSpace(it.Category) == "" {
		return ErrInvalidQuote
	}
	if len(it.PhotoRefs) > MaxPhotoRefsPerItem {
		return ErrInvalidQuote
	}
	return nil
}

// CustomerDetails is the contact record captured at submission time.
type CustomerDetails struct {
	FullName   string `json:"fullName" firestore:"fullName"`
	Address    string `json:"address" firestore:"address"`
	PostalCode string `json:"postalCode" firestore:"postalCode"`
	City       string `json:"city" firestore:"city"`
	Phone      string `json:"phone" firestore:"phone"`
	Email      string `json:"email" firestore:"email"`
}

// MissingFields returns the names of unset contact fields. Submission
// requires all of them.
func (d CustomerDetails) MissingFields() []string {
	var missing []string
	check := func(name, v string) {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	check("fullName", d.FullName)
	check("address", d.Address)
	check("postalCode", d.PostalCode)
	check("city", d.City)
	check("phone", d.Phone)
	check("email", d.Email)
	return missing
}

// Quote is the draft aggregate: the per-user accumulating collection of
// configured items.
//
// Invariant: at most one quote with StatusConcept exists per owner. The
// repository enforces it by running find-or-create-append inside a single
// transaction.
type Quote struct {
	ID              string           `json:"id" firestore:"id"`
	OwnerID         string           `json:"ownerId" firestore:"ownerId"`
	Items           []ConfiguredItem `json:"items" firestore:"items"`
	Status          Status           `json:"status" firestore:"status"`
	CustomerDetails *CustomerDetails `json:"customerDetails,omitempty" firestore:"customerDetails,omitempty"`
	CreatedAt       time.Time        `json:"createdAt" firestore:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt" firestore:"updatedAt"`
}

// NewConcept creates an empty concept draft for owner.
func NewConcept(ownerID string, now time.Time) (*Quote, error) {
	q := &Quote{
		OwnerID:   strings.TrimSpace(ownerID),
		Items:     []ConfiguredItem{},
		Status:    StatusConcept,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if strings.TrimSpace(q.OwnerID) == "" {
		return nil, ErrInvalidQuote
	}
	return q, nil
}

// AppendItem appends a configured item. Only legal while the draft is in
// concept state; item ids must be unique within the draft.
func (q *Quote) AppendItem(item ConfiguredItem, now time.Time) error {
	if q == nil {
		return ErrInvalidQuote
	}
	if q.Status != StatusConcept {
		return ErrNotConcept
	}
	if err := item.validate(); err != nil {
		return err
	}
	for _, ex := range q.Items {
		if ex.ID == item.ID {
			return ErrDuplicateItemID
		}
	}
	item.AddedAt = now
	q.Items = append(q.Items, item)
	q.touch(now)
	return nil
}

// Submit moves the draft from concept to submitted and attaches the customer
// details. The caller must have validated the details first.
func (q *Quote) Submit(details CustomerDetails, now time.Time) error {
	if q == nil {
		return ErrInvalidQuote
	}
	if !q.Status.CanTransitionTo(StatusSubmitted) {
		return ErrBadTransition
	}
	d := details
	q.CustomerDetails = &d
	q.Status = StatusSubmitted
	q.touch(now)
	return nil
}

// Advance moves the quote one step forward (submitted → reviewed → approved),
// the back-office side of the lifecycle.
func (q *Quote) Advance(next Status, now time.Time) error {
	if q == nil {
		return ErrInvalidQuote
	}
	if !q.Status.CanTransitionTo(next) {
		return ErrBadTransition
	}
	q.Status = next
	q.touch(now)
	return nil
}

// OwnedBy reports whether owner owns the quote.
func (q *Quote) OwnedBy(ownerID string) bool {
	return q != nil && q.OwnerID == strings.TrimSpace(ownerID)
}

func (q *Quote) touch(now time.Time) {
	q.UpdatedAt = now
}

// PhotoRefs collects every photo reference across the draft's items,
// in item order. Used for cascade delete.
func (q *Quote) PhotoRefs() []string {
	if q == nil {
		return nil
	}
	var refs []string
	for _, it := range q.Items {
		refs = append(refs, it.PhotoRefs...)
	}
	return refs
}
