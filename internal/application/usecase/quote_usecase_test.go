// backend/internal/application/usecase/quote_usecase_test.go
package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdom "fenestra/internal/domain/catalog"
	photodom "fenestra/internal/domain/photo"
	quotedom "fenestra/internal/domain/quote"
)

func newQuoteFixture() (*QuoteUsecase, *memQuoteRepo, *memProfileRepo, *memNotifier) {
	repo := newMemQuoteRepo()
	profiles := newMemProfileRepo()
	notifier := &memNotifier{}
	variants := &memVariantRepo{variants: []catalogdom.Variant{
		{
			Collection: "Despiro",
			Name:       "Panel X",
			Category:   catalogdom.CategoryExteriorDoors,
			Materials:  []string{"aluminum", "pvc"},
			Bounds: map[string]catalogdom.DimensionBounds{
				"aluminum": {WidthMin: 700, WidthMax: 1300, HeightMin: 1900, HeightMax: 2600},
			},
		},
	}}
	uc := NewQuoteUsecaseWithClock(repo, variants, profiles, nil, notifier, fixedClock{t: testNow})
	return uc, repo, profiles, notifier
}

func windowInput(itemID string) AppendItemInput {
	return AppendItemInput{
		ItemID:   itemID,
		Model:    "Draaikiepraam",
		Category: "windows",
		FormData: map[string]string{
			"material":     "pvc",
			"width":        "1200",
			"height":       "1400",
			"colorInside":  "RAL 9016",
			"colorOutside": "RAL 7016",
			"glazing":      "HR++",
		},
	}
}

func TestAppendItemCreatesSingleConceptDraft(t *testing.T) {
	uc, repo, _, _ := newQuoteFixture()
	ctx := context.Background()

	q1, err := uc.AppendItem(ctx, "user-1", windowInput("a"))
	require.NoError(t, err)
	q2, err := uc.AppendItem(ctx, "user-1", windowInput("b"))
	require.NoError(t, err)
	q3, err := uc.AppendItem(ctx, "user-1", windowInput("c"))
	require.NoError(t, err)

	// All three appends land in the same draft, in order.
	assert.Equal(t, q1.ID, q2.ID)
	assert.Equal(t, q2.ID, q3.ID)
	require.Len(t, q3.Items, 3)
	assert.Equal(t, []string{"a", "b", "c"},
		[]string{q3.Items[0].ID, q3.Items[1].ID, q3.Items[2].ID})
	assert.Equal(t, 1, repo.conceptCount("user-1"))

	// A different owner gets their own draft.
	qOther, err := uc.AppendItem(ctx, "user-2", windowInput("a"))
	require.NoError(t, err)
	assert.NotEqual(t, q1.ID, qOther.ID)
}

func TestAppendItemValidationBlocksWithoutRepoCall(t *testing.T) {
	uc, repo, _, _ := newQuoteFixture()
	ctx := context.Background()

	in := windowInput("a")
	delete(in.FormData, "material")
	in.FormData["width"] = "9000"
	in.FormData["bogus"] = "x"

	_, err := uc.AppendItem(ctx, "user-1", in)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 3)

	fields := map[string]bool{}
	for _, fe := range verr.Fields {
		fields[fe.Field] = true
	}
	assert.True(t, fields["material"])
	assert.True(t, fields["width"])
	assert.True(t, fields["bogus"])

	// Nothing was created or mutated.
	assert.Equal(t, 0, repo.conceptCount("user-1"))
}

func TestAppendItemRejectsUnknownCategory(t *testing.T) {
	uc, _, _, _ := newQuoteFixture()

	in := windowInput("a")
	in.Category = "garage-doors"
	_, err := uc.AppendItem(context.Background(), "user-1", in)
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestAppendItemUsesVariantBounds(t *testing.T) {
	uc, _, _, _ := newQuoteFixture()
	ctx := context.Background()

	in := AppendItemInput{
		Model:      "Panel X",
		Category:   "exterior-doors",
		Collection: "Despiro",
		Variant:    "Panel X",
		FormData: map[string]string{
			"material":       "aluminum",
			"width":          "900",
			"height":         "2100",
			"colorInside":    "RAL 9016",
			"colorOutside":   "RAL 9016",
			"glazing":        "triple",
			"threshold":      "low",
			"swingDirection": "left",
			"hardware":       "security",
			"stopBead":       "standard",
		},
	}

	q, err := uc.AppendItem(ctx, "user-1", in)
	require.NoError(t, err)
	require.Len(t, q.Items, 1)
	// The client omitted an item id, so the service assigned one.
	assert.NotEmpty(t, q.Items[0].ID)
	assert.Equal(t, "900", q.Items[0].FormData["width"])
	assert.Equal(t, "2100", q.Items[0].FormData["height"])
	assert.Equal(t, "aluminum", q.Items[0].FormData["material"])
	assert.Equal(t, "RAL 9016", q.Items[0].FormData["colorInside"])
	assert.Empty(t, q.Items[0].PhotoRefs)

	// The same configuration outside the aluminum bounds is rejected.
	in.FormData["width"] = "1400"
	_, err = uc.AppendItem(ctx, "user-1", in)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "width", verr.Fields[0].Field)
	assert.Equal(t, "Breedte moet tussen 700 en 1300 mm liggen", verr.Fields[0].Message)
}

func TestAppendItemRejectsTooManyPhotos(t *testing.T) {
	uc, _, _, _ := newQuoteFixture()

	in := windowInput("a")
	in.PhotoRefs = []string{"1", "2", "3", "4", "5", "6"}
	_, err := uc.AppendItem(context.Background(), "user-1", in)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "photos", verr.Fields[0].Field)
}

func TestSubmitAllStampsEveryDraftIdentically(t *testing.T) {
	uc, repo, profiles, notifier := newQuoteFixture()
	ctx := context.Background()

	// One draft via the usecase, two more concept drafts directly in the
	// repo, as if left behind by earlier sessions.
	_, err := uc.AppendItem(ctx, "user-1", windowInput("a"))
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		q, _ := quotedom.NewConcept("user-1", testNow.Add(-time.Duration(i+1)*time.Hour))
		q.ID = "old-" + string(rune('a'+i))
		repo.quotes[q.ID] = q
	}
	require.Equal(t, 3, repo.conceptCount("user-1"))

	details := quotedom.CustomerDetails{
		FullName:   "J. de Vries",
		Address:    "Dorpsstraat 1",
		PostalCode: "1234 AB",
		City:       "Utrecht",
		Phone:      "0612345678",
		Email:      "j.devries@example.nl",
	}
	result, err := uc.SubmitAll(ctx, "user-1", details)
	require.NoError(t, err)
	require.Len(t, result.Quotes, 3)
	assert.Empty(t, result.NotifyWarning)

	for _, q := range result.Quotes {
		assert.Equal(t, quotedom.StatusSubmitted, q.Status)
		require.NotNil(t, q.CustomerDetails)
		assert.Equal(t, details, *q.CustomerDetails)
		assert.Equal(t, testNow, q.UpdatedAt)
	}
	assert.Equal(t, 0, repo.conceptCount("user-1"))

	// The profile was refreshed from the submitted details.
	p, err := profiles.GetByID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "J. de Vries", p.FullName)

	assert.Equal(t, 1, notifier.calls)
	assert.Len(t, notifier.quotes, 3)
}

func TestSubmitAllRequiresCompleteDetails(t *testing.T) {
	uc, repo, _, _ := newQuoteFixture()
	ctx := context.Background()

	_, err := uc.AppendItem(ctx, "user-1", windowInput("a"))
	require.NoError(t, err)

	_, err = uc.SubmitAll(ctx, "user-1", quotedom.CustomerDetails{FullName: "J. de Vries"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 5)

	// The draft stays untouched in concept.
	assert.Equal(t, 1, repo.conceptCount("user-1"))
}

func TestSubmitAllWithoutDraft(t *testing.T) {
	uc, _, _, _ := newQuoteFixture()

	_, err := uc.SubmitAll(context.Background(), "user-1", quotedom.CustomerDetails{
		FullName: "a", Address: "b", PostalCode: "c", City: "d", Phone: "e", Email: "f",
	})
	assert.ErrorIs(t, err, ErrNoConceptDraft)
}

func TestSubmitAllMailFailureIsNotFatal(t *testing.T) {
	uc, repo, _, notifier := newQuoteFixture()
	ctx := context.Background()
	notifier.err = errors.New("sendgrid down")

	_, err := uc.AppendItem(ctx, "user-1", windowInput("a"))
	require.NoError(t, err)

	result, err := uc.SubmitAll(ctx, "user-1", quotedom.CustomerDetails{
		FullName: "a", Address: "b", PostalCode: "c", City: "d", Phone: "e", Email: "f",
	})
	require.NoError(t, err)
	require.Len(t, result.Quotes, 1)
	assert.Equal(t, quotedom.StatusSubmitted, result.Quotes[0].Status)
	assert.NotEmpty(t, result.NotifyWarning)

	// The transition stayed committed despite the failed mail.
	assert.Equal(t, 0, repo.conceptCount("user-1"))
}

func TestGetEnforcesOwnership(t *testing.T) {
	uc, _, _, _ := newQuoteFixture()
	ctx := context.Background()

	q, err := uc.AppendItem(ctx, "user-1", windowInput("a"))
	require.NoError(t, err)

	got, err := uc.Get(ctx, "user-1", q.ID)
	require.NoError(t, err)
	assert.Equal(t, q.ID, got.ID)

	_, err = uc.Get(ctx, "user-2", q.ID)
	assert.ErrorIs(t, err, quotedom.ErrForbidden)

	_, err = uc.Get(ctx, "user-1", "missing")
	assert.ErrorIs(t, err, quotedom.ErrNotFound)
}

func TestDeleteDraftCleansUpPhotos(t *testing.T) {
	repo := newMemQuoteRepo()
	photoRepo := newMemPhotoRepo()
	store := newMemObjectStore()
	photoUC := NewPhotoUsecaseWithClock(photoRepo, store, fixedClock{t: testNow})
	uc := NewQuoteUsecaseWithClock(repo, &memVariantRepo{}, newMemProfileRepo(), photoUC, nil, fixedClock{t: testNow})
	ctx := context.Background()

	p, err := photoUC.Upload(ctx, "user-1", "kozijn.jpg", "image/jpeg", make([]byte, 1024))
	require.NoError(t, err)

	in := windowInput("a")
	in.PhotoRefs = []string{p.ID}
	q, err := uc.AppendItem(ctx, "user-1", in)
	require.NoError(t, err)

	require.NoError(t, uc.DeleteDraft(ctx, "user-1", q.ID))

	_, err = repo.GetByID(ctx, q.ID)
	assert.ErrorIs(t, err, quotedom.ErrNotFound)
	_, err = photoRepo.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, photodom.ErrNotFound)
	assert.Empty(t, store.objects)
}
