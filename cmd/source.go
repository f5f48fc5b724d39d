package cmd

import (
	"context"
	"fmt"

	"registry-server/core/config"
	"registry-server/core/database"
	"registry-server/core/source"
	"registry-server/core/storage"

	"go.uber.org/zap"
)

// openSource builds the configured registry source. The returned static root is
// the local directory static files can be served from, empty for remote drivers.
func openSource(ctx context.Context, cfg *config.Config, logg *zap.Logger) (source.Source, string, error) {
	switch cfg.Source.Driver {
	case source.DriverFS, "":
		logg.Info("Serving registry from disk", zap.String("root", cfg.Source.Root))
		return source.NewFS(cfg.Source.Root), cfg.Source.Root, nil

	case source.DriverS3:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create storage client: %w", err)
		}
		// Not fatal: the bucket may be created after the server starts.
		if exists, err := client.BucketExists(ctx, cfg.Storage.Bucket); err != nil {
			logg.Warn("Could not verify registry bucket", zap.String("bucket", cfg.Storage.Bucket), zap.Error(err))
		} else if !exists {
			logg.Warn("Registry bucket does not exist", zap.String("bucket", cfg.Storage.Bucket))
		}
		logg.Info("Serving registry from bucket",
			zap.String("bucket", cfg.Storage.Bucket),
			zap.String("prefix", cfg.Source.Prefix))
		return source.NewBucket(client, cfg.Storage.Bucket, cfg.Source.Prefix), "", nil

	case source.DriverDatabase:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, "", err
		}
		if err := database.RequireColumns(db, cfg.Source.Table, "path", "content"); err != nil {
			return nil, "", fmt.Errorf("registry table is not usable: %w", err)
		}
		logg.Info("Serving registry from database",
			zap.String("driver", cfg.Database.Driver),
			zap.String("table", cfg.Source.Table))
		return source.NewTable(db, cfg.Source.Table), "", nil

	default:
		return nil, "", fmt.Errorf("unsupported source driver %q", cfg.Source.Driver)
	}
}
