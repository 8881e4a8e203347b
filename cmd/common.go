package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"inventory-manager/core/config"
	"inventory-manager/core/database"
	"inventory-manager/core/logger"
	"inventory-manager/core/storage"
	"inventory-manager/feature/inventory"
	"inventory-manager/feature/inventory/store"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime bundles what every command needs.
type runtime struct {
	cfg     *config.Config
	logger  *zap.Logger
	db      *gorm.DB
	client  storage.Client
	catalog store.Store
}

// bootstrap loads config, connects the backends and prepares the catalog store.
func bootstrap(ctx context.Context) (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	// Only the database backend requires a connection
	var db *gorm.DB
	if conn, err := database.Connect(cfg.Database); err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
	} else {
		db = conn
	}

	st, err := store.New(cfg.Catalog, db, client, cfg.Storage.Bucket)
	if err != nil {
		return nil, err
	}
	if m, ok := st.(store.Migrator); ok {
		if err := m.Migrate(ctx); err != nil {
			return nil, err
		}
	}
	logg = logg.With(zap.String("catalog", st.Name()))

	return &runtime{cfg: cfg, logger: logg, db: db, client: client, catalog: st}, nil
}

// service builds the inventory service over the runtime's backends.
func (r *runtime) service() *inventory.Service {
	return inventory.NewService(r.catalog, r.client, r.cfg.Storage.Bucket, r.cfg.Import, r.logger)
}

// confirm asks the operator to type yes, unless auto is set.
func confirm(prompt string, auto bool) bool {
	if auto {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Printf("\n⚠️  %s Type 'yes' to confirm: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}
