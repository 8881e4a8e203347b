package reconcile

import (
	"inventory-manager/core/reconcile"
	"inventory-manager/feature/inventory/models"
)

// Adapter matches products by barcode, then SKU.
type Adapter struct{}

var _ reconcile.Adapter[models.Product] = Adapter{}

// NewAdapter creates the product adapter.
func NewAdapter() Adapter {
	return Adapter{}
}

// Name implements reconcile.Adapter.
func (Adapter) Name() string { return "products" }

// KeyNames implements reconcile.Adapter.
func (Adapter) KeyNames() []string { return []string{"barcode", "sku"} }

// Keys implements reconcile.Adapter.
func (Adapter) Keys(p models.Product) []string { return []string{p.Barcode, p.SKU} }

// ID implements reconcile.Adapter.
func (Adapter) ID(p models.Product) int { return p.ID }

// WithID implements reconcile.Adapter.
func (Adapter) WithID(p models.Product, id int) models.Product {
	p.ID = id
	return p
}

// Merge overwrites every field of existing with incoming except the id.
func (Adapter) Merge(existing, incoming models.Product) models.Product {
	incoming.ID = existing.ID
	return incoming
}
