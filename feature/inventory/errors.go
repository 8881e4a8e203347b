package inventory

import (
	"errors"

	"inventory-manager/core/reconcile"
	"inventory-manager/feature/inventory/importer"
)

var (
	// ErrProductNotFound is returned when no product has the requested id or code.
	ErrProductNotFound = errors.New("product not found")
	// ErrObjectNotFound is returned when an import object is missing from the bucket.
	ErrObjectNotFound = errors.New("import object not found")
	// ErrNoCandidates is returned when an import produced no rows. The catalog is left as it was.
	ErrNoCandidates = errors.New("nothing to import")
	// ErrStorageDisabled is returned for bucket operations without a storage client.
	ErrStorageDisabled = errors.New("object storage is not configured")
	// ErrInvalidMode is returned for an unknown import mode.
	ErrInvalidMode = reconcile.ErrInvalidMode
	// ErrUnsupportedFormat is returned for files that cannot be read as rows.
	ErrUnsupportedFormat = importer.ErrUnsupportedFormat
)
