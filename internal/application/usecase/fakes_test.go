// backend/internal/application/usecase/fakes_test.go
package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	cartdom "fenestra/internal/domain/cart"
	catalogdom "fenestra/internal/domain/catalog"
	photodom "fenestra/internal/domain/photo"
	profiledom "fenestra/internal/domain/profile"
	quotedom "fenestra/internal/domain/quote"
	stockdom "fenestra/internal/domain/stockitem"
)

// fixedClock always returns the same instant.
type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var testNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

// ----------------------------
// quote repository fake
// ----------------------------

// memQuoteRepo mimics the Firestore implementation's transactional contract
// in memory, including the at-most-one-concept rule.
type memQuoteRepo struct {
	mu     sync.Mutex
	seq    int
	quotes map[string]*quotedom.Quote
}

func newMemQuoteRepo() *memQuoteRepo {
	return &memQuoteRepo{quotes: map[string]*quotedom.Quote{}}
}

func (r *memQuoteRepo) GetByID(_ context.Context, id string) (*quotedom.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.quotes[id]
	if !ok {
		return nil, quotedom.ErrNotFound
	}
	cp := *q
	return &cp, nil
}

func (r *memQuoteRepo) ListByOwner(_ context.Context, ownerID string) ([]quotedom.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []quotedom.Quote
	for _, q := range r.quotes {
		if q.OwnerID == ownerID {
			out = append(out, *q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memQuoteRepo) AppendItemToConcept(_ context.Context, ownerID string, item quotedom.ConfiguredItem, now time.Time) (*quotedom.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var concept *quotedom.Quote
	for _, q := range r.quotes {
		if q.OwnerID == ownerID && q.Status == quotedom.StatusConcept {
			concept = q
			break
		}
	}
	if concept == nil {
		q, err := quotedom.NewConcept(ownerID, now)
		if err != nil {
			return nil, err
		}
		r.seq++
		q.ID = fmt.Sprintf("q-%d", r.seq)
		r.quotes[q.ID] = q
		concept = q
	}
	if err := concept.AppendItem(item, now); err != nil {
		return nil, err
	}
	cp := *concept
	return &cp, nil
}

func (r *memQuoteRepo) SubmitAllConcept(_ context.Context, ownerID string, details quotedom.CustomerDetails, now time.Time) ([]quotedom.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []quotedom.Quote
	for _, q := range r.quotes {
		if q.OwnerID != ownerID || q.Status != quotedom.StatusConcept {
			continue
		}
		if err := q.Submit(details, now); err != nil {
			return nil, err
		}
		out = append(out, *q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memQuoteRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.quotes, id)
	return nil
}

func (r *memQuoteRepo) conceptCount(ownerID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, q := range r.quotes {
		if q.OwnerID == ownerID && q.Status == quotedom.StatusConcept {
			n++
		}
	}
	return n
}

// ----------------------------
// variant repository fake
// ----------------------------

type memVariantRepo struct {
	variants []catalogdom.Variant
}

func (r *memVariantRepo) ListCollections(context.Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, v := range r.variants {
		if !seen[v.Collection] {
			seen[v.Collection] = true
			out = append(out, v.Collection)
		}
	}
	return out, nil
}

func (r *memVariantRepo) ListByCollection(_ context.Context, collection string) ([]catalogdom.Variant, error) {
	var out []catalogdom.Variant
	for _, v := range r.variants {
		if v.Collection == collection {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *memVariantRepo) GetByName(_ context.Context, collection, name string) (*catalogdom.Variant, error) {
	for _, v := range r.variants {
		if v.Collection == collection && v.Name == name {
			cp := v
			return &cp, nil
		}
	}
	return nil, catalogdom.ErrVariantNotFound
}

// ----------------------------
// profile repository fake
// ----------------------------

type memProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]*profiledom.Profile
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{profiles: map[string]*profiledom.Profile{}}
}

func (r *memProfileRepo) GetByID(_ context.Context, id string) (*profiledom.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[id]
	if !ok {
		return nil, profiledom.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memProfileRepo) Upsert(_ context.Context, p *profiledom.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.profiles[p.ID] = &cp
	return nil
}

// ----------------------------
// photo fakes
// ----------------------------

type memPhotoRepo struct {
	mu     sync.Mutex
	seq    int
	photos map[string]*photodom.Photo

	insertErr error
	inserts   int
}

func newMemPhotoRepo() *memPhotoRepo {
	return &memPhotoRepo{photos: map[string]*photodom.Photo{}}
}

func (r *memPhotoRepo) Insert(_ context.Context, p *photodom.Photo) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inserts++
	if r.insertErr != nil {
		return "", r.insertErr
	}
	r.seq++
	id := fmt.Sprintf("photo-%d", r.seq)
	cp := *p
	cp.ID = id
	r.photos[id] = &cp
	return id, nil
}

func (r *memPhotoRepo) GetByID(_ context.Context, id string) (*photodom.Photo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.photos[id]
	if !ok {
		return nil, photodom.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memPhotoRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.photos, id)
	return nil
}

type memObjectStore struct {
	mu      sync.Mutex
	objects map[string][]byte

	puts      int
	deletes   int
	deleteErr error
	signed    []string
}

func newMemObjectStore() *memObjectStore {
	return &memObjectStore{objects: map[string][]byte{}}
}

func (s *memObjectStore) Put(_ context.Context, objectPath, _ string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puts++
	s.objects[objectPath] = data
	return nil
}

func (s *memObjectStore) Delete(_ context.Context, objectPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletes++
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.objects, objectPath)
	return nil
}

func (s *memObjectStore) SignedDownloadURL(_ context.Context, objectPath string, _ time.Duration) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.signed = append(s.signed, objectPath)
	return "https://signed.example/" + objectPath, nil
}

// ----------------------------
// cart repository fake
// ----------------------------

type memCartRepo struct {
	mu    sync.Mutex
	carts map[string]*cartdom.Cart
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{carts: map[string]*cartdom.Cart{}}
}

func (r *memCartRepo) GetByOwnerID(_ context.Context, ownerID string) (*cartdom.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.carts[ownerID]
	if !ok {
		return nil, nil
	}
	cp := *c
	cp.Lines = append([]cartdom.Line(nil), c.Lines...)
	return &cp, nil
}

func (r *memCartRepo) Upsert(_ context.Context, c *cartdom.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	cp.Lines = append([]cartdom.Line(nil), c.Lines...)
	r.carts[c.ID] = &cp
	return nil
}

func (r *memCartRepo) DeleteByOwnerID(_ context.Context, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, ownerID)
	return nil
}

// ----------------------------
// stock repository fake
// ----------------------------

type memStockRepo struct {
	items map[string]stockdom.StockItem
}

func (r *memStockRepo) List(context.Context) ([]stockdom.StockItem, error) {
	var out []stockdom.StockItem
	for _, it := range r.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memStockRepo) GetByID(_ context.Context, id string) (*stockdom.StockItem, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, stockdom.ErrNotFound
	}
	return &it, nil
}

// ----------------------------
// notifier fake
// ----------------------------

type memNotifier struct {
	mu      sync.Mutex
	err     error
	calls   int
	quotes  []quotedom.Quote
	details quotedom.CustomerDetails
}

func (n *memNotifier) NotifySubmission(_ context.Context, quotes []quotedom.Quote, details quotedom.CustomerDetails) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls++
	n.quotes = quotes
	n.details = details
	return n.err
}
