package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/titanic-cli/internal/core/domain"
)

var (
	showJSON bool
	showCode bool
)

var showCmd = &cobra.Command{
	Use:   "show <section>",
	Short: "Render one section to stdout",
	Long: `Render a single dashboard section and print it.

The section may be given by label ("Survival Analysis") or by slug:
  overview, cleaning, survival, correlation, additional

Output is plain text when stdout is not a terminal. Use --json for the
raw section result.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output the section result as JSON")
	showCmd.Flags().BoolVar(&showCode, "code", false, "include the section's code snippet")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	section, err := domain.ParseSection(args[0])
	if err != nil {
		return err
	}

	dashboard, err := requireDashboard(cmd.Context())
	if err != nil {
		return err
	}

	result, err := dashboard.Render(cmd.Context(), section)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if showJSON {
		return printJSON(cmd, result)
	}

	cmd.Print(outputRenderer(cmd).Section(result, showCode))
	return nil
}
