// Package cli provides the cobra command tree for the titanic binary.
// It is a driving adapter: commands call core services through the
// driving ports only.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/titanic-cli/internal/core/domain"
	"github.com/custodia-labs/titanic-cli/internal/core/ports/driving"
	"github.com/custodia-labs/titanic-cli/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Global flags.
var (
	verbose      bool
	logTimes     bool
	datasetPath  string
	datasetSheet string
	configDir    string
	noConfig     bool
)

// Options are the global flag values handed to the service factory.
type Options struct {
	Verbose   bool
	ConfigDir string
	NoConfig  bool
}

// Services are the driving ports the commands use.
type Services struct {
	Settings driving.SettingsService

	// LoadDashboard reads the dataset and builds the dashboard. It is
	// called at most once per process, on first use.
	LoadDashboard func(ctx context.Context, dataset domain.DatasetSettings) (driving.DashboardService, error)
}

// Factory builds services once global flags are parsed.
type Factory func(opts Options) (*Services, error)

var (
	factory          Factory
	services         *Services
	dashboardService driving.DashboardService
)

var rootCmd = &cobra.Command{
	Use:   "titanic",
	Short: "Passenger manifest dashboard",
	Long: `titanic is a terminal dashboard over the Titanic passenger manifest.

It loads the dataset once and renders five sections: Dataset Overview,
Data Cleaning, Survival Analysis, Correlation Analysis and Additional
Analysis. Run without a subcommand to open the interactive dashboard.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initServices,
	RunE:              runTUI,
}

func init() {
	f := rootCmd.PersistentFlags()
	f.BoolVarP(&verbose, "verbose", "v", false, "log pipeline activity to stderr")
	f.BoolVar(&logTimes, "log-time", false, "prefix log lines with a timestamp")
	f.StringVarP(&datasetPath, "dataset", "d", "", "dataset file (.csv, .tsv or .xlsx), overrides settings")
	f.StringVar(&datasetSheet, "sheet", "", "XLSX worksheet, overrides settings")
	f.StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.titanic)")
	f.BoolVar(&noConfig, "no-config", false, "ignore the configuration file and keep settings in memory")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetFactory sets the function that builds services after flag parsing.
func SetFactory(f Factory) {
	factory = f
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		return 1
	}
	return 0
}

// initServices applies logging flags and builds services on first use.
func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	logger.SetTimestamps(logTimes)

	if services != nil || factory == nil {
		return nil
	}
	s, err := factory(Options{Verbose: verbose, ConfigDir: configDir, NoConfig: noConfig})
	if err != nil {
		return fmt.Errorf("initialising: %w", err)
	}
	services = s
	return nil
}

// requireSettings returns the settings service or an error.
func requireSettings() (driving.SettingsService, error) {
	if services == nil || services.Settings == nil {
		return nil, errors.New("settings service not configured")
	}
	return services.Settings, nil
}

// datasetSettings resolves the dataset location: settings first, then
// command-line overrides.
func datasetSettings() domain.DatasetSettings {
	ds := domain.DefaultAppSettings().Dataset
	if services != nil && services.Settings != nil {
		if s, err := services.Settings.Get(); err == nil {
			ds = s.Dataset
		} else {
			logger.Warn("Reading settings failed, using defaults: %v", err)
		}
	}
	if datasetPath != "" {
		ds.Path = datasetPath
		ds.Sheet = ""
	}
	if datasetSheet != "" {
		ds.Sheet = datasetSheet
	}
	return ds
}

// requireDashboard returns the dashboard, loading the dataset on first
// use. A dataset that cannot be loaded is fatal for the command.
func requireDashboard(ctx context.Context) (driving.DashboardService, error) {
	if dashboardService != nil {
		return dashboardService, nil
	}
	if services == nil || services.LoadDashboard == nil {
		return nil, errors.New("dashboard service not configured")
	}
	d, err := services.LoadDashboard(ctx, datasetSettings())
	if err != nil {
		return nil, err
	}
	dashboardService = d
	return d, nil
}
