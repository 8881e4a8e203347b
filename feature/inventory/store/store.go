package store

import (
	"context"
	"fmt"

	"inventory-manager/core/storage"
	"inventory-manager/feature/inventory/models"

	"gorm.io/gorm"
)

// Store persists the whole catalog. Records are returned in catalog order.
type Store interface {
	// Name identifies the backend in logs and reports.
	Name() string
	// Load returns a copy of the stored catalog. An empty store yields no error.
	Load(ctx context.Context) ([]models.Product, error)
	// Replace swaps the stored catalog for products in one step.
	// On error the previous catalog is left as it was.
	Replace(ctx context.Context, products []models.Product) error
}

// Migrator is implemented by backends that need schema setup.
type Migrator interface {
	Migrate(ctx context.Context) error
}

// SchemaChecker is implemented by backends with a fixed schema.
type SchemaChecker interface {
	MissingColumns(ctx context.Context) ([]string, error)
}

// New builds the backend selected by cfg.
func New(cfg Config, db *gorm.DB, client storage.Client, bucket string) (Store, error) {
	switch cfg.Backend {
	case BackendDatabase, "":
		if db == nil {
			return nil, fmt.Errorf("catalog backend %s needs a database connection", BackendDatabase)
		}
		return NewGormStore(db, cfg.BatchSize), nil
	case BackendStorage:
		if client == nil {
			return nil, fmt.Errorf("catalog backend %s needs a storage client", BackendStorage)
		}
		return NewObjectStore(client, bucket, cfg.ObjectName), nil
	case BackendMemory:
		return NewMemoryStore(nil), nil
	default:
		return nil, fmt.Errorf("unknown catalog backend %q", cfg.Backend)
	}
}

func clone(products []models.Product) []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}
