package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/titanic-cli/internal/core/domain"
)

var sectionsJSON bool

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List dashboard sections",
	Args:  cobra.NoArgs,
	RunE:  runSections,
}

func init() {
	sectionsCmd.Flags().BoolVar(&sectionsJSON, "json", false, "output sections as JSON")
	rootCmd.AddCommand(sectionsCmd)
}

type sectionEntry struct {
	Label string `json:"label"`
	Slug  string `json:"slug"`
}

func runSections(cmd *cobra.Command, _ []string) error {
	entries := make([]sectionEntry, 0, len(domain.Sections()))
	for _, s := range domain.Sections() {
		entries = append(entries, sectionEntry{Label: s.String(), Slug: s.Slug()})
	}

	if sectionsJSON {
		return printJSON(cmd, entries)
	}

	for _, e := range entries {
		cmd.Printf("%-12s %s\n", e.Slug, e.Label)
	}
	return nil
}
