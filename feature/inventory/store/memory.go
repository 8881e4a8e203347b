package store

import (
	"context"
	"sync"

	"inventory-manager/feature/inventory/models"
)

// MemoryStore keeps the catalog in process. Used for tests and throwaway runs.
type MemoryStore struct {
	mu       sync.RWMutex
	products []models.Product
}

// NewMemoryStore creates a store seeded with a copy of products.
func NewMemoryStore(products []models.Product) *MemoryStore {
	return &MemoryStore{products: clone(products)}
}

// Name implements Store.
func (s *MemoryStore) Name() string { return BackendMemory }

// Load implements Store.
func (s *MemoryStore) Load(ctx context.Context) ([]models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.products), nil
}

// Replace implements Store.
func (s *MemoryStore) Replace(ctx context.Context, products []models.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	next := clone(products)
	s.mu.Lock()
	s.products = next
	s.mu.Unlock()
	return nil
}
