package store

// Backend names.
const (
	BackendDatabase = "database"
	BackendStorage  = "storage"
	BackendMemory   = "memory"
)

// Config selects where the catalog lives.
type Config struct {
	// Backend is one of database, storage or memory.
	Backend string `mapstructure:"backend" default:"database"`
	// ObjectName is the catalog document key for the storage backend.
	ObjectName string `mapstructure:"object_name" default:"catalog/products.json"`
	// BatchSize is the insert batch size for the database backend.
	BatchSize int `mapstructure:"batch_size" default:"500"`
}
