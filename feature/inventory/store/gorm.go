package store

import (
	"context"
	"fmt"

	"inventory-manager/core/database"
	"inventory-manager/feature/inventory/models"

	"gorm.io/gorm"
)

const defaultBatchSize = 500

// GormStore keeps the catalog in the products table.
type GormStore struct {
	db        *gorm.DB
	batchSize int
}

// NewGormStore creates a table-backed store.
func NewGormStore(db *gorm.DB, batchSize int) *GormStore {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &GormStore{db: db, batchSize: batchSize}
}

// Name implements Store.
func (s *GormStore) Name() string { return BackendDatabase }

// Migrate creates or updates the products table.
func (s *GormStore) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&models.Product{}); err != nil {
		return fmt.Errorf("failed to migrate products table: %w", err)
	}
	return nil
}

// Load implements Store. Ids grow with insertion, so id order is catalog order.
func (s *GormStore) Load(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	return products, nil
}

// Replace implements Store inside a single transaction.
func (s *GormStore) Replace(ctx context.Context, products []models.Product) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Product{}).Error; err != nil {
			return fmt.Errorf("failed to clear products: %w", err)
		}
		if len(products) == 0 {
			return nil
		}
		rows := clone(products)
		if err := tx.CreateInBatches(&rows, s.batchSize).Error; err != nil {
			return fmt.Errorf("failed to insert products: %w", err)
		}
		return nil
	})
}

// MissingColumns implements SchemaChecker.
func (s *GormStore) MissingColumns(ctx context.Context) ([]string, error) {
	return database.MissingColumns(ctx, s.db, models.Product{}.TableName(), models.Product{}.Columns())
}
