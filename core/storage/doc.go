// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small Client interface. The inventory
// feature uses it to keep the catalog as a JSON document and to read import
// sheets that were uploaded to the bucket. Both AWS S3 and self-hosted MinIO work.
//
// The Client interface can be mocked for unit tests (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
//	    return err
//	}
package storage
