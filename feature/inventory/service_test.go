package inventory

import (
	"context"
	"errors"
	"testing"
	"time"

	"inventory-manager/feature/inventory/importer"
	"inventory-manager/feature/inventory/models"
	"inventory-manager/feature/inventory/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, products ...models.Product) (*Service, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore(products)
	svc := NewService(st, nil, "inventory", importer.DefaultConfig(), zap.NewNop())
	svc.now = func() time.Time { return fixedNow }
	return svc, st
}

func load(t *testing.T, st store.Store) []models.Product {
	t.Helper()
	products, err := st.Load(context.Background())
	require.NoError(t, err)
	return products
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// failingStore loads normally and refuses every write.
type failingStore struct {
	*store.MemoryStore
}

func (failingStore) Replace(context.Context, []models.Product) error {
	return errors.New("write refused")
}
