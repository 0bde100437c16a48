package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/titanic-cli/internal/adapters/driving/render"
)

// outputRenderer returns a styled renderer sized to the terminal when the
// command writes to one, and a plain renderer otherwise.
func outputRenderer(cmd *cobra.Command) *render.Renderer {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return render.Plain(render.DefaultWidth)
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		width = render.DefaultWidth
	}
	return render.New(nil, width)
}

// printJSON writes v as indented JSON.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
