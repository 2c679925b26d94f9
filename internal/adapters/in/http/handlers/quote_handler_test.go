// backend/internal/adapters/in/http/handlers/quote_handler_test.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fenestra/internal/adapters/in/http/middleware"
	"fenestra/internal/application/usecase"
	catalogdom "fenestra/internal/domain/catalog"
	profiledom "fenestra/internal/domain/profile"
	quotedom "fenestra/internal/domain/quote"
)

// stubQuoteRepo keeps quotes in a map and honors the transactional contract
// well enough for handler-level tests.
type stubQuoteRepo struct {
	seq    int
	quotes map[string]*quotedom.Quote
}

func newStubQuoteRepo() *stubQuoteRepo {
	return &stubQuoteRepo{quotes: map[string]*quotedom.Quote{}}
}

func (r *stubQuoteRepo) GetByID(_ context.Context, id string) (*quotedom.Quote, error) {
	q, ok := r.quotes[id]
	if !ok {
		return nil, quotedom.ErrNotFound
	}
	return q, nil
}

func (r *stubQuoteRepo) ListByOwner(_ context.Context, ownerID string) ([]quotedom.Quote, error) {
	var out []quotedom.Quote
	for _, q := range r.quotes {
		if q.OwnerID == ownerID {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (r *stubQuoteRepo) AppendItemToConcept(_ context.Context, ownerID string, item quotedom.ConfiguredItem, now time.Time) (*quotedom.Quote, error) {
	for _, q := range r.quotes {
		if q.OwnerID == ownerID && q.Status == quotedom.StatusConcept {
			if err := q.AppendItem(item, now); err != nil {
				return nil, err
			}
			return q, nil
		}
	}
	q, err := quotedom.NewConcept(ownerID, now)
	if err != nil {
		return nil, err
	}
	r.seq++
	q.ID = fmt.Sprintf("q-%d", r.seq)
	if err := q.AppendItem(item, now); err != nil {
		return nil, err
	}
	r.quotes[q.ID] = q
	return q, nil
}

func (r *stubQuoteRepo) SubmitAllConcept(_ context.Context, ownerID string, details quotedom.CustomerDetails, now time.Time) ([]quotedom.Quote, error) {
	var out []quotedom.Quote
	for _, q := range r.quotes {
		if q.OwnerID == ownerID && q.Status == quotedom.StatusConcept {
			if err := q.Submit(details, now); err != nil {
				return nil, err
			}
			out = append(out, *q)
		}
	}
	return out, nil
}

func (r *stubQuoteRepo) Delete(_ context.Context, id string) error {
	delete(r.quotes, id)
	return nil
}

type stubVariantRepo struct{}

func (stubVariantRepo) ListCollections(context.Context) ([]string, error) { return nil, nil }
func (stubVariantRepo) ListByCollection(context.Context, string) ([]catalogdom.Variant, error) {
	return nil, nil
}
func (stubVariantRepo) GetByName(context.Context, string, string) (*catalogdom.Variant, error) {
	return nil, catalogdom.ErrVariantNotFound
}

type stubProfileRepo struct{}

func (stubProfileRepo) GetByID(context.Context, string) (*profiledom.Profile, error) {
	return nil, profiledom.ErrNotFound
}
func (stubProfileRepo) Upsert(context.Context, *profiledom.Profile) error { return nil }

func newQuoteTestHandler() (http.Handler, *stubQuoteRepo) {
	repo := newStubQuoteRepo()
	uc := usecase.NewQuoteUsecase(repo, stubVariantRepo{}, stubProfileRepo{}, nil, nil)
	return NewQuoteHandler(uc), repo
}

func doAuthed(h http.Handler, method, target, owner string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req = req.WithContext(middleware.WithOwner(req.Context(), owner))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func validItemBody() map[string]any {
	return map[string]any{
		"model":    "Draaikiepraam",
		"category": "windows",
		"formData": map[string]string{
			"material":     "pvc",
			"width":        "1200",
			"height":       "1400",
			"colorInside":  "RAL 9016",
			"colorOutside": "RAL 7016",
			"glazing":      "HR++",
		},
	}
}

func TestQuoteHandlerAppendAndList(t *testing.T) {
	h, _ := newQuoteTestHandler()

	rec := doAuthed(h, http.MethodPost, "/quotes/items", "user-1", validItemBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	var created quotedom.Quote
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	require.Len(t, created.Items, 1)

	rec = doAuthed(h, http.MethodGet, "/quotes", "user-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []quotedom.Quote
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)
}

func TestQuoteHandlerValidationFailureReturns422(t *testing.T) {
	h, _ := newQuoteTestHandler()

	body := validItemBody()
	body["formData"] = map[string]string{"width": "50"}
	rec := doAuthed(h, http.MethodPost, "/quotes/items", "user-1", body)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Error  string `json:"error"`
		Fields []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "validation_failed", resp.Error)
	assert.NotEmpty(t, resp.Fields)
}

func TestQuoteHandlerSubmitFlow(t *testing.T) {
	h, _ := newQuoteTestHandler()

	rec := doAuthed(h, http.MethodPost, "/quotes/items", "user-1", validItemBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	details := map[string]string{
		"fullName":   "J. de Vries",
		"address":    "Dorpsstraat 1",
		"postalCode": "1234 AB",
		"city":       "Utrecht",
		"phone":      "0612345678",
		"email":      "j.devries@example.nl",
	}
	rec = doAuthed(h, http.MethodPost, "/quotes/submit", "user-1", details)
	require.Equal(t, http.StatusOK, rec.Code)

	var result usecase.SubmitResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Len(t, result.Quotes, 1)
	assert.Equal(t, quotedom.StatusSubmitted, result.Quotes[0].Status)

	// Nothing left to submit.
	rec = doAuthed(h, http.MethodPost, "/quotes/submit", "user-1", details)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQuoteHandlerOwnershipAndAuth(t *testing.T) {
	h, repo := newQuoteTestHandler()

	rec := doAuthed(h, http.MethodPost, "/quotes/items", "user-1", validItemBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	var quoteID string
	for id := range repo.quotes {
		quoteID = id
	}

	// Another user cannot read or delete it.
	rec = doAuthed(h, http.MethodGet, "/quotes/"+quoteID, "user-2", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = doAuthed(h, http.MethodDelete, "/quotes/"+quoteID, "user-2", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// No owner in context at all: unauthorized.
	req := httptest.NewRequest(http.MethodGet, "/quotes", nil)
	plain := httptest.NewRecorder()
	h.ServeHTTP(plain, req)
	assert.Equal(t, http.StatusUnauthorized, plain.Code)

	// The owner can delete their own draft.
	rec = doAuthed(h, http.MethodDelete, "/quotes/"+quoteID, "user-1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = doAuthed(h, http.MethodGet, "/quotes/"+quoteID, "user-1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
