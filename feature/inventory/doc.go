// Package inventory implements the product catalog feature of the POS.
//
// Products enter the catalog through manual entry, the quick-add shortcut or bulk
// import. An import reads a csv, tsv or xlsx file (uploaded, sent as JSON rows, or
// already stored in the bucket), turns it into candidate products with the
// importer package and reconciles them against the stored catalog:
//
//   - merge (default): candidates matching an existing product by barcode, then
//     SKU, overwrite it and keep its id; the rest are appended with new ids.
//   - replace: the catalog is rebuilt from the candidates with ids 1..n. It is
//     only written when the caller confirms it.
//
// The new catalog is computed in full before the store swaps it in, so a failed
// write leaves the previous catalog untouched. Catalog writes are serialized.
//
// # Components
//
//   - Service: Import, catalog edits, reports, export and integrity checks.
//   - Handler: Exposes HTTP endpoints under /inventory.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET    /inventory/products               : List products (optional ?category=).
//   - POST   /inventory/products               : Add a product.
//   - DELETE /inventory/products?confirm=true  : Empty the catalog.
//   - POST   /inventory/products/quick         : Add from name and price.
//   - GET    /inventory/products/barcode/:code : Find by barcode or SKU.
//   - GET    /inventory/products/:id           : Get one product.
//   - PUT    /inventory/products/:id           : Edit a product.
//   - PATCH  /inventory/products/:id/stock     : Adjust stock by a delta.
//   - DELETE /inventory/products/:id           : Delete a product.
//   - POST   /inventory/import                 : Import an uploaded file.
//   - POST   /inventory/import/rows            : Import JSON rows.
//   - POST   /inventory/import/object          : Import a bucket object.
//   - GET    /inventory/import/objects         : List importable bucket objects.
//   - GET    /inventory/report                 : Stock and value summary.
//   - GET    /inventory/report/low-stock       : Products to reorder.
//   - GET    /inventory/export                 : Download as csv or xlsx.
//   - GET    /inventory/integrity              : Duplicate keys and invalid records.
package inventory
