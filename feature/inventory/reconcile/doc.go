// Package reconcile binds the generic reconcile engine to products.
// Barcode is the primary matching key and SKU the secondary one.
package reconcile
