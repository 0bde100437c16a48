// Command titanic is a terminal dashboard over the Titanic passenger manifest.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/titanic-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/titanic-cli/internal/adapters/driven/dataset"
	"github.com/custodia-labs/titanic-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/titanic-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/titanic-cli/internal/core/domain"
	"github.com/custodia-labs/titanic-cli/internal/core/ports/driven"
	"github.com/custodia-labs/titanic-cli/internal/core/ports/driving"
	"github.com/custodia-labs/titanic-cli/internal/core/services"
	"github.com/custodia-labs/titanic-cli/internal/logger"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetFactory(buildServices)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx)
	stop()
	os.Exit(code)
}

// buildServices wires the config store, settings and dataset loader.
func buildServices(opts cli.Options) (*cli.Services, error) {
	var store driven.ConfigStore
	if opts.NoConfig {
		store = memory.NewConfigStore()
	} else {
		fs, err := file.NewConfigStore(opts.ConfigDir)
		if err != nil {
			return nil, fmt.Errorf("opening config: %w", err)
		}
		store = fs
	}
	logger.Debug("Config: %s", store.Path())

	settings := services.NewSettingsService(store)
	if err := settings.Validate(); err != nil {
		logger.Warn("Invalid settings, defaults apply: %v", err)
	}

	sources := dataset.NewFactory()
	load := func(ctx context.Context, ds domain.DatasetSettings) (driving.DashboardService, error) {
		src, err := sources.Create(ds)
		if err != nil {
			return nil, err
		}
		return services.LoadDashboard(ctx, src, settings)
	}

	return &cli.Services{
		Settings:      settings,
		LoadDashboard: load,
	}, nil
}
