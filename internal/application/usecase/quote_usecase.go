// backend/internal/application/usecase/quote_usecase.go
package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	catalogdom "fenestra/internal/domain/catalog"
	"fenestra/internal/domain/configurator"
	profiledom "fenestra/internal/domain/profile"
	quotedom "fenestra/internal/domain/quote"
)

// SubmissionNotifier is the outbound port for the two submission emails
// (internal summary + customer confirmation).
type SubmissionNotifier interface {
	NotifySubmission(ctx context.Context, quotes []quotedom.Quote, details quotedom.CustomerDetails) error
}

// AppendItemInput describes one completed configuration from the wizard.
type AppendItemInput struct {
	// ItemID may be supplied by the client; generated when empty.
	ItemID string

	Model    string
	Category string

	// Collection+Variant identify a paneled variant; empty for generic flows.
	Collection string
	Variant    string

	FormData      map[string]string
	PhotoRefs     []string
	ModelImageRef string
}

// SubmitResult reports a committed submission. NotifyWarning carries the
// email failure, if any; the status transition it follows is already
// committed and is never rolled back for it.
type SubmitResult struct {
	Quotes        []quotedom.Quote `json:"quotes"`
	NotifyWarning string           `json:"notifyWarning,omitempty"`
}

// QuoteUsecase owns the draft aggregate workflow: append configured items to
// the single concept draft, submit the whole batch, delete drafts.
type QuoteUsecase struct {
	repo     quotedom.Repository
	variants catalogdom.VariantRepository
	profiles profiledom.Repository
	photos   *PhotoUsecase
	notifier SubmissionNotifier
	clock    Clock
}

func NewQuoteUsecase(
	repo quotedom.Repository,
	variants catalogdom.VariantRepository,
	profiles profiledom.Repository,
	photos *PhotoUsecase,
	notifier SubmissionNotifier,
) *QuoteUsecase {
	return &QuoteUsecase{
		repo:     repo,
		variants: variants,
		profiles: profiles,
		photos:   photos,
		notifier: notifier,
		clock:    systemClock{},
	}
}

// NewQuoteUsecaseWithClock is useful for tests.
func NewQuoteUsecaseWithClock(
	repo quotedom.Repository,
	variants catalogdom.VariantRepository,
	profiles profiledom.Repository,
	photos *PhotoUsecase,
	notifier SubmissionNotifier,
	clock Clock,
) *QuoteUsecase {
	uc := NewQuoteUsecase(repo, variants, profiles, photos, notifier)
	if clock != nil {
		uc.clock = clock
	}
	return uc
}

// AppendItem validates the configuration against its field schema and
// appends it to the owner's concept draft (creating the draft when absent).
// Validation failures block the append entirely: the repository is not
// touched and the returned ValidationError names every offending field.
func (uc *QuoteUsecase) AppendItem(ctx context.Context, ownerID string, in AppendItemInput) (*quotedom.Quote, error) {
	owner := strings.TrimSpace(ownerID)
	if owner == "" || strings.TrimSpace(in.Model) == "" {
		return nil, ErrInvalidArgument
	}

	category := catalogdom.Category(strings.TrimSpace(in.Category))
	if !category.Valid() {
		return nil, ErrUnknownCategory
	}

	formData := configurator.NormalizeFormData(in.FormData)

	schema, err := uc.resolveSchema(ctx, category, in.Collection, in.Variant, formData["material"])
	if err != nil {
		return nil, err
	}
	if schema.Empty() {
		return nil, ErrUnknownCategory
	}

	var fieldErrs []configurator.FieldError
	fieldErrs = append(fieldErrs, schema.Validate(formData)...)
	if len(in.PhotoRefs) > quotedom.MaxPhotoRefsPerItem {
		fieldErrs = append(fieldErrs, configurator.FieldError{
			Field:   "photos",
			Message: "maximaal 5 foto's per product",
		})
	}
	if len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	itemID := strings.TrimSpace(in.ItemID)
	if itemID == "" {
		itemID = uuid.NewString()
	}

	item := quotedom.ConfiguredItem{
		ID:            itemID,
		Model:         strings.TrimSpace(in.Model),
		Category:      string(category),
		FormData:      formData,
		PhotoRefs:     append([]string(nil), in.PhotoRefs...),
		ModelImageRef: strings.TrimSpace(in.ModelImageRef),
	}

	return uc.repo.AppendItemToConcept(ctx, owner, item, uc.clock.Now())
}

// resolveSchema picks the variant schema when a paneled variant is selected,
// the generic category schema otherwise. The chosen material steers which
// dimension bounds apply.
func (uc *QuoteUsecase) resolveSchema(
	ctx context.Context,
	category catalogdom.Category,
	collection, variantName, material string,
) (configurator.Schema, error) {
	col := strings.TrimSpace(collection)
	vn := strings.TrimSpace(variantName)
	if col == "" || vn == "" {
		return configurator.ForCategory(category), nil
	}
	if uc.variants == nil {
		return configurator.Schema{}, ErrInvalidArgument
	}
	v, err := uc.variants.GetByName(ctx, col, vn)
	if err != nil {
		return configurator.Schema{}, err
	}
	return configurator.ForVariant(v, material), nil
}

// List returns the owner's quotes, newest first.
func (uc *QuoteUsecase) List(ctx context.Context, ownerID string) ([]quotedom.Quote, error) {
	owner := strings.TrimSpace(ownerID)
	if owner == "" {
		return nil, ErrInvalidArgument
	}
	return uc.repo.ListByOwner(ctx, owner)
}

// Get returns one quote after an ownership check.
func (uc *QuoteUsecase) Get(ctx context.Context, ownerID, quoteID string) (*quotedom.Quote, error) {
	owner := strings.TrimSpace(ownerID)
	qid := strings.TrimSpace(quoteID)
	if owner == "" || qid == "" {
		return nil, ErrInvalidArgument
	}
	q, err := uc.repo.GetByID(ctx, qid)
	if err != nil {
		return nil, err
	}
	if !q.OwnedBy(owner) {
		return nil, quotedom.ErrForbidden
	}
	return q, nil
}

// SubmitAll transitions every concept draft of the owner to submitted with
// the given customer details, in one atomic step, and upserts the contact
// details into the owner's profile. The two notification emails go out after
// the commit; their failure is reported as a warning, never as a rollback.
func (uc *QuoteUsecase) SubmitAll(ctx context.Context, ownerID string, details quotedom.CustomerDetails) (*SubmitResult, error) {
	owner := strings.TrimSpace(ownerID)
	if owner == "" {
		return nil, ErrInvalidArgument
	}

	if missing := details.MissingFields(); len(missing) > 0 {
		return nil, requiredError(missing)
	}

	if uc.profiles != nil {
		p := &profiledom.Profile{
			ID:         owner,
			FullName:   details.FullName,
			Address:    details.Address,
			PostalCode: details.PostalCode,
			City:       details.City,
			Phone:      details.Phone,
			UpdatedAt:  uc.clock.Now(),
		}
		if err := uc.profiles.Upsert(ctx, p); err != nil {
			return nil, err
		}
	}

	submitted, err := uc.repo.SubmitAllConcept(ctx, owner, details, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	if len(submitted) == 0 {
		return nil, ErrNoConceptDraft
	}

	result := &SubmitResult{Quotes: submitted}
	if uc.notifier != nil {
		if nerr := uc.notifier.NotifySubmission(ctx, submitted, details); nerr != nil {
			log.Printf("[quote_uc] WARN: submission mail failed owner=%s err=%v", owner, nerr)
			result.NotifyWarning = "De offerte is verstuurd, maar de bevestigingsmail kon niet worden verzonden."
		}
	}
	return result, nil
}

// DeleteDraft hard-deletes a quote after an ownership check, cleaning up its
// photos best-effort beforehand.
func (uc *QuoteUsecase) DeleteDraft(ctx context.Context, ownerID, quoteID string) error {
	q, err := uc.Get(ctx, ownerID, quoteID)
	if err != nil {
		return err
	}

	if uc.photos != nil {
		for _, ref := range q.PhotoRefs() {
			if derr := uc.photos.Delete(ctx, ownerID, ref); derr != nil {
				log.Printf("[quote_uc] WARN: photo cleanup failed quote=%s photo=%s err=%v", q.ID, ref, derr)
			}
		}
	}

	return uc.repo.Delete(ctx, q.ID)
}
