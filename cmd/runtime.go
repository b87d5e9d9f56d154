package cmd

import (
	"context"
	"fmt"

	"sptid/core/config"
	"sptid/core/logger"
	"sptid/core/storage"
	"sptid/feature/items"
	"sptid/feature/overrides"

	"go.uber.org/zap"
)

// loadSettings loads and validates the configuration and builds the logger.
func loadSettings() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, logg, nil
}

// runtime is a loaded resolution service with its workspace watcher.
type runtime struct {
	service *items.Service
	watcher *overrides.Watcher
}

// openRuntime constructs the service, loads the active language and runs the
// initial workspace rescan. A nil watcher means no workspace is attached.
func openRuntime(ctx context.Context, cfg *config.Config, logg *zap.Logger, withWorkspace bool) (*runtime, error) {
	tables, err := storage.NewClient(cfg.Data.TablesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open tables: %w", err)
	}

	var translations storage.Client
	if cfg.Data.TranslationsDir != "" {
		if translations, err = storage.NewClient(cfg.Data.TranslationsDir); err != nil {
			return nil, fmt.Errorf("failed to open translations: %w", err)
		}
	}

	svc := items.NewService(tables, translations, logg, cfg.Data.Options()...)
	svc.Load(ctx, cfg.Data.Language)

	rt := &runtime{service: svc}
	if withWorkspace {
		rt.watcher = &overrides.Watcher{
			Root:     cfg.Workspace.Root,
			Filename: cfg.Workspace.Filename,
			Exclude:  cfg.Workspace.Exclude,
			Workers:  cfg.Workspace.Workers,
			Layer:    svc,
			Language: svc.Language,
			Logger:   logg,
		}
		rt.watcher.Rescan(ctx)
	}
	return rt, nil
}

// rescanner returns the watcher as an items.Rescanner, or nil.
func (rt *runtime) rescanner() items.Rescanner {
	if rt.watcher == nil {
		return nil
	}
	return rt.watcher
}
