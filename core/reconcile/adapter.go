package reconcile

import "context"

// Adapter defines the record-specific logic the engine needs.
// Implementations must be pure: they receive values and return values.
type Adapter[T any] interface {
	// Name returns the unique name of this adapter (e.g., "products").
	Name() string

	// KeyNames names the matching keys in precedence order (e.g., "barcode", "sku").
	KeyNames() []string

	// Keys returns the record's key values, aligned with KeyNames.
	// An empty value never matches anything.
	Keys(item T) []string

	// ID returns the record id.
	ID(item T) int

	// WithID returns a copy of item carrying id.
	WithID(item T, id int) T

	// Merge returns existing overwritten by incoming. The result keeps the id of existing.
	Merge(existing, incoming T) T
}

// Sink persists a reconciled catalog. Replace must swap the whole catalog atomically.
type Sink[T any] interface {
	Replace(ctx context.Context, catalog []T) error
}
