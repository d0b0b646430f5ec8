package services

import (
	"sync"

	"edshop/internal/seed"
)

// ReseedService bulk-replaces the whole catalog with freshly generated
// demo products. Runs serialize against each other; concurrent catalog
// reads are tolerated (the engine re-derives everything from storage on
// each call, so readers pick up the new set on their next request).
type ReseedService struct {
	Store ProductStore
	Count int

	mu sync.Mutex
}

func NewReseedService(store ProductStore, count int) *ReseedService {
	if count <= 0 {
		count = 50
	}
	return &ReseedService{Store: store, Count: count}
}

// Run regenerates and replaces the catalog, returning how many products
// were inserted.
func (s *ReseedService) Run() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ps := seed.Generate(s.Count, seed.NewRand())
	if err := s.Store.ReplaceAll(ps); err != nil {
		return 0, err
	}
	return len(ps), nil
}
