package cmd

import (
	"fmt"

	"menu-manager/core/config"
	"menu-manager/core/database"
	"menu-manager/core/logger"
	"menu-manager/core/storage"
	"menu-manager/feature/menus"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime bundles the dependencies every command builds from configuration.
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
	store  storage.Client
}

// bootstrap loads configuration and opens the database and object storage.
// A database failure is fatal only when requireDB is set. Storage is skipped when no bucket is configured.
func bootstrap(requireDB bool) (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	rt := &runtime{cfg: cfg, logger: logg}

	if conn, err := database.Connect(cfg.Database); err != nil {
		if requireDB {
			return nil, fmt.Errorf("database connection required: %w", err)
		}
		logg.Warn("Optional database connection failed", zap.Error(err))
	} else {
		rt.db = conn
		logg.Info("Connected to menu database", zap.String("driver", cfg.Database.Driver))
	}

	if cfg.Storage.Bucket == "" {
		logg.Info("No storage bucket configured, menu photos disabled")
		return rt, nil
	}
	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	rt.store = store

	return rt, nil
}

// menuService builds the menu service from the runtime configuration.
func (r *runtime) menuService() (*menus.Service, error) {
	if r.db == nil {
		return nil, fmt.Errorf("menu service requires a database")
	}
	loc, err := r.cfg.Server.Location()
	if err != nil {
		return nil, err
	}

	opts := menus.Options{
		PhotoPrefix: r.cfg.Storage.PhotoPrefix,
		Location:    loc,
		PageLimit:   r.cfg.Server.EffectivePageLimit(),
	}
	if r.store != nil {
		opts.Bucket = r.cfg.Storage.Bucket
	}
	return menus.NewService(r.db, r.store, r.logger, opts)
}
