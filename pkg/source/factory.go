// pkg/source/factory.go
package source

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/peopleops/hr-insights/pkg/config"
)

// LoaderFactory creates the configured source loader
type LoaderFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewLoaderFactory creates a new loader factory
func NewLoaderFactory(cfg *config.Config, logger *zap.Logger) *LoaderFactory {
	return &LoaderFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateLoader builds the loader for the configured source kind.
func (f *LoaderFactory) CreateLoader(ctx context.Context) (Loader, error) {
	switch f.cfg.SourceKind {
	case config.SourceKindXML:
		f.logger.Info("Creating XML file loader", zap.String("dir", f.cfg.DataDir))
		var fetcher *Fetcher
		if f.cfg.DownloadMissing {
			fetcher = NewFetcher(f.cfg)
		}
		return NewXMLLoader(f.cfg, fetcher), nil

	case config.SourceKindPostgres:
		f.logger.Info("Creating PostgreSQL loader")
		loader, err := NewPostgresLoader(ctx, f.cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL loader: %w", err)
		}
		return loader, nil

	case config.SourceKindSnowflake:
		f.logger.Info("Creating Snowflake loader")
		loader, err := NewSnowflakeLoader(ctx, f.cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create Snowflake loader: %w", err)
		}
		return loader, nil

	default:
		return nil, fmt.Errorf("unknown source kind: %s", f.cfg.SourceKind)
	}
}
