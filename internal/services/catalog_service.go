package services

import (
	"math/rand/v2"
	"sync"

	"edshop/internal/domain"
	"edshop/internal/validate"
)

// Page sizes are fixed per call site so a request can never ask for an
// unbounded result.
const (
	BrowsePageSize = 20 // full-catalog browse page
	FilterPageSize = 12 // filtered/search API
)

// ProductStore is the storage contract the catalog engine runs against.
// The sqlite-backed ProductRepo implements it; tests use an in-memory fake.
type ProductStore interface {
	List(category, search string, limit, offset int) ([]domain.Product, error)
	Count(category, search string) (int, error)
	ReplaceAll(ps []domain.Product) error
}

// Filter is the normalized listing predicate. Build it with
// NormalizeFilter; a zero Filter means browse-all.
type Filter struct {
	Category string
	Search   string
}

// NormalizeFilter applies the input rules: a category outside
// {homme, femme, enfant} is dropped, a search term shorter than two
// characters after trimming is dropped, and a valid category suppresses
// search entirely. Invalid input is never an error.
func NormalizeFilter(category, search string) Filter {
	if c, ok := validate.Category(category); ok {
		return Filter{Category: c}
	}
	if s, ok := validate.Search(search); ok {
		return Filter{Search: s}
	}
	return Filter{}
}

type Page struct {
	Items      []domain.Product `json:"items"`
	Total      int              `json:"total"`
	TotalPages int              `json:"totalPages"`
	Page       int              `json:"page"`
}

type CatalogService struct {
	store ProductStore

	mu  sync.Mutex // rand.Rand is not safe for concurrent use
	rng *rand.Rand
}

func NewCatalogService(store ProductStore) *CatalogService {
	return &CatalogService{
		store: store,
		rng:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// NewCatalogServiceWithRand fixes the shuffle source, letting tests assert
// against a deterministic ordering.
func NewCatalogServiceWithRand(store ProductStore, rng *rand.Rand) *CatalogService {
	return &CatalogService{store: store, rng: rng}
}

// List returns one page of the filtered catalog plus the total count for
// the same predicate. Items come back in random presentation order on
// every call; membership and cardinality are deterministic. A page past
// the end yields an empty item list with Total/TotalPages still correct.
//
// The page fetch and the count are two independent reads, not one frozen
// snapshot: a reseed landing between them can make Total disagree with
// Items. That window is accepted — reseeding is a rare operator action.
func (s *CatalogService) List(f Filter, page, pageSize int) (Page, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = FilterPageSize
	}
	offset := (page - 1) * pageSize

	items, err := s.store.List(f.Category, f.Search, pageSize, offset)
	if err != nil {
		return Page{}, err
	}
	total, err := s.store.Count(f.Category, f.Search)
	if err != nil {
		return Page{}, err
	}
	s.shuffle(items)

	return Page{
		Items:      items,
		Total:      total,
		TotalPages: (total + pageSize - 1) / pageSize,
		Page:       page,
	}, nil
}

func (s *CatalogService) shuffle(items []domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}
