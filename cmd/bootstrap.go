package cmd

import (
	"context"
	"fmt"

	"quotes-lake/core/config"
	"quotes-lake/core/database"
	"quotes-lake/core/logger"
	"quotes-lake/core/storage"
	"quotes-lake/core/storage/layout"
	"quotes-lake/feature/integrity/checks"
	"quotes-lake/feature/lake"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime bundles the dependencies shared by every command.
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
	client storage.Client
	store  *lake.Store
	db     *gorm.DB
}

// bootstrap loads configuration, the logger and the lake store.
func bootstrap() (*runtime, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	logg = logg.With(zap.String("project", cfg.App.ProjectName))

	l, err := layout.Load(cfg.Storage.LayoutFile)
	if err != nil {
		return nil, err
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	store, err := lake.NewStore(client, l, cfg.Storage.LocalDir, logg, cfg.App.Debug)
	if err != nil {
		return nil, err
	}

	return &runtime{cfg: cfg, logger: logg, client: client, store: store}, nil
}

// connectDatabase opens the database, applying the schema when migrate is set.
// When required is false a failed connection is logged and the runtime continues
// without a database.
func (rt *runtime) connectDatabase(ctx context.Context, required, migrate bool) error {
	db, err := database.Connect(rt.cfg.Database)
	if err != nil {
		if required {
			return fmt.Errorf("database connection required: %w", err)
		}
		rt.logger.Warn("Optional database connection failed", zap.Error(err))
		return nil
	}

	if migrate {
		if err := database.EnsureSchema(ctx, db); err != nil {
			return err
		}
	}
	rt.db = db
	rt.logger.Info("Connected to database",
		zap.String("driver", rt.cfg.Database.Driver),
		zap.String("name", rt.cfg.Database.Name))
	return nil
}

// runsTarget points the run reconciliation at the backup folder of the pipeline space.
func (rt *runtime) runsTarget() checks.RunsTarget {
	target := checks.RunsTarget{Bucket: rt.cfg.Scraper.Bucket}
	if sp, ok := rt.store.Layout().Space(rt.cfg.Scraper.Bucket, rt.cfg.Scraper.Space); ok {
		target.Prefix = sp.BackupPath()
	}
	return target
}
