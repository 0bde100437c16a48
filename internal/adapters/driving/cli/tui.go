package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/titanic-cli/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	Long: `Launch the interactive terminal dashboard.

Choose a section from the menu to render it. Each selection runs that
section's analysis over the loaded dataset.

Controls:
  ↑/k, ↓/j      - Navigate menu / scroll
  Enter         - Select
  c             - Toggle code snippet
  r             - Re-run section
  Tab/Shift+Tab - Next / previous section
  Esc           - Back to menu
  q             - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	// Recover so the stack trace is printed and the command still fails.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	dashboard, err := requireDashboard(cmd.Context())
	if err != nil {
		return err
	}

	ports := tui.NewPorts(dashboard, nil)
	if services != nil {
		ports.Settings = services.Settings
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	if err := app.WithContext(cmd.Context()).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
