// Package database handles database connections and schema inspection.
//
// It wraps GORM to open either a MySQL server or a SQLite file based on the
// application's configuration. SQLite is the default so the catalog works on a
// single machine without extra services.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns report the actual columns of a table. The
// inventory integrity check uses them to verify the products table.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(ctx, db, "products", []string{"id", "barcode"})
package database
