package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/titanic-cli/internal/adapters/driving/httpapi"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve dashboard sections over HTTP",
	Long: `Serve the dashboard as a small HTTP API.

Routes:
  GET /healthz
  GET /api/sections
  GET /api/sections/{section}          JSON result
  GET /api/sections/{section}?format=text[&code=true]

Without --addr the first free loopback port from 8080 is used.

Examples:
  titanic serve
  titanic serve --addr 127.0.0.1:9000`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default: first free port from 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	addr, _ := cmd.Flags().GetString("addr")
	addr, err := httpapi.ResolveAddr(addr)
	if err != nil {
		return err
	}

	dashboard, err := requireDashboard(cmd.Context())
	if err != nil {
		return err
	}

	server, err := httpapi.NewServer(dashboard)
	if err != nil {
		return err
	}

	cmd.Printf("Serving %s on http://%s\n", dashboard.Dataset().Location, addr)
	return server.Run(cmd.Context(), addr)
}
