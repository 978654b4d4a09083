package catalog

import (
	"context"
	"sort"
	"sync"
	"time"

	"product-console/internal/model"
	"product-console/prometheus"
)

// MemoryStore keeps products in a map. It is safe for concurrent use.
type MemoryStore struct {
	mu       sync.RWMutex
	products map[float64]model.Product
}

// NewMemoryStore creates a store seeded with the given products
func NewMemoryStore(seed ...model.Product) *MemoryStore {
	s := &MemoryStore{products: make(map[float64]model.Product, len(seed))}
	for _, p := range seed {
		s.products[p.ID] = p
	}
	return s
}

// List returns every product ordered by ID
func (s *MemoryStore) List(ctx context.Context) ([]model.Product, error) {
	defer observe("list", time.Now())

	s.mu.RLock()
	products := make([]model.Product, 0, len(s.products))
	for _, p := range s.products {
		products = append(products, p)
	}
	s.mu.RUnlock()

	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

// Create adds a product, rejecting duplicate IDs
func (s *MemoryStore) Create(ctx context.Context, product model.Product) error {
	defer observe("create", time.Now())

	if !validID(product.ID) {
		return ErrInvalidProduct
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.products[product.ID]; exists {
		return ErrDuplicateProduct
	}
	s.products[product.ID] = product
	return nil
}

func observe(op string, start time.Time) {
	prometheus.ObserveStore(op, time.Since(start))
}
