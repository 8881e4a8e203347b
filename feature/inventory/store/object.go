package store

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"inventory-manager/core/storage"
	"inventory-manager/feature/inventory/models"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
)

// ObjectStore keeps the catalog as one JSON array in a bucket.
// A single PutObject is the swap, so readers never see a partial catalog.
type ObjectStore struct {
	client storage.Client
	bucket string
	object string
}

// NewObjectStore creates a bucket-backed store.
func NewObjectStore(client storage.Client, bucket, object string) *ObjectStore {
	return &ObjectStore{client: client, bucket: bucket, object: object}
}

// Name implements Store.
func (s *ObjectStore) Name() string { return BackendStorage }

// Migrate makes sure the bucket exists.
func (s *ObjectStore) Migrate(ctx context.Context) error {
	return storage.EnsureBucket(ctx, s.client, s.bucket, "")
}

// Load implements Store. A missing document is an empty catalog.
func (s *ObjectStore) Load(ctx context.Context) ([]models.Product, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get catalog %s: %w", s.object, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read catalog %s: %w", s.object, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to decode catalog %s: %w", s.object, err)
	}
	return products, nil
}

// Replace implements Store.
func (s *ObjectStore) Replace(ctx context.Context, products []models.Product) error {
	if products == nil {
		products = []models.Product{}
	}
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	_, err = s.client.PutObject(ctx, s.bucket, s.object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to put catalog %s: %w", s.object, err)
	}
	return nil
}
