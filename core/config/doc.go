// Package config provides configuration management for the Inventory Manager.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults are declared next to each partial configuration
// through `default` struct tags.
//
// # Configuration Structure
//
//   - Server: HTTP server settings (port, API key)
//   - Database: MySQL or SQLite connection details
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Catalog: catalog backend (database, storage, memory) and object name
//   - Import: defaults applied to imported rows (min stock, category, supplier, icon)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Catalog.Backend)
package config
