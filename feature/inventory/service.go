package inventory

import (
	"sync"
	"time"

	"inventory-manager/core/storage"
	"inventory-manager/feature/inventory/importer"
	"inventory-manager/feature/inventory/reconcile"
	"inventory-manager/feature/inventory/store"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Service handles catalog and import operations.
type Service struct {
	store   store.Store
	client  storage.Client
	bucket  string
	cfg     importer.Config
	logger  *zap.Logger
	adapter reconcile.Adapter

	// mu serializes read-modify-write cycles on the catalog.
	mu    sync.Mutex
	group singleflight.Group
	now   func() time.Time
}

// NewService creates a new inventory service. client may be nil when no bucket is configured.
func NewService(st store.Store, client storage.Client, bucket string, cfg importer.Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if st != nil {
		logger = logger.With(zap.String("catalog", st.Name()))
	}
	return &Service{
		store:   st,
		client:  client,
		bucket:  bucket,
		cfg:     cfg,
		logger:  logger,
		adapter: reconcile.NewAdapter(),
		now:     time.Now,
	}
}

// Store returns the catalog backend.
func (s *Service) Store() store.Store {
	return s.store
}
