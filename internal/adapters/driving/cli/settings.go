package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/titanic-cli/internal/core/domain"
)

// Setting keys accepted by "settings set".
const (
	settingDatasetPath   = "dataset.path"
	settingDatasetSheet  = "dataset.sheet"
	settingSampleRows    = "display.sample_rows"
	settingHistogramBins = "display.histogram_bins"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the dataset location and display options.

Settings are stored in ~/.titanic/config.toml unless --config-dir or
--no-config is given.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a setting and save it.

Keys:
  dataset.path            dataset file (.csv, .tsv or .xlsx)
  dataset.sheet           XLSX worksheet (empty = first sheet)
  display.sample_rows     rows shown by Overview and Cleaning (1-100)
  display.histogram_bins  age histogram bins (0 = Sturges' rule, max 200)`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsReset,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	settingsService, err := requireSettings()
	if err != nil {
		return err
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Dataset]")
	cmd.Printf("  Path: %s\n", settings.Dataset.Path)
	if settings.Dataset.Sheet != "" {
		cmd.Printf("  Sheet: %s\n", settings.Dataset.Sheet)
	} else {
		cmd.Println("  Sheet: (first sheet)")
	}
	cmd.Println()

	cmd.Println("[Display]")
	cmd.Printf("  Sample rows: %d\n", settings.Display.SampleRows)
	if settings.Display.HistogramBins == 0 {
		cmd.Println("  Histogram bins: auto (Sturges)")
	} else {
		cmd.Printf("  Histogram bins: %d\n", settings.Display.HistogramBins)
	}
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'titanic settings set' to fix configuration issues.")
	} else {
		cmd.Println("Configuration is valid.")
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	settingsService, err := requireSettings()
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	current, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	switch key {
	case settingDatasetPath:
		err = settingsService.SetDatasetPath(value, current.Dataset.Sheet)
	case settingDatasetSheet:
		err = settingsService.SetDatasetPath(current.Dataset.Path, value)
	case settingSampleRows, settingHistogramBins:
		n, convErr := strconv.Atoi(value)
		if convErr != nil {
			return fmt.Errorf("%w: %s must be a whole number, got %q", domain.ErrInvalidInput, key, value)
		}
		if key == settingSampleRows {
			err = settingsService.SetSampleRows(n)
		} else {
			err = settingsService.SetHistogramBins(n)
		}
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	if err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}

	cmd.Printf("Set %s to %s\n", key, value)
	return nil
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	settingsService, err := requireSettings()
	if err != nil {
		return err
	}

	defaults := settingsService.GetDefaults()
	if err := settingsService.Save(&defaults); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Println("Settings restored to defaults.")
	return nil
}
