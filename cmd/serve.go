package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/blackhillsconsortium/annualreport/internal/mcp"
	"github.com/blackhillsconsortium/annualreport/internal/pages"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the entities, financials, goals, comparisons, flywheel and cached backend snapshots as tools.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ds, err := loadDataset(cfg)
		if err != nil {
			return err
		}

		snaps, closeSnaps, err := existingSnapshots(cfg)
		if err != nil {
			return err
		}
		defer closeSnaps()

		var store mcpserver.Snapshots
		if snaps != nil {
			store = snaps
		}

		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "annualreport MCP server started on stdio (entities=%d)\n", len(ds.Entities))

		srv := mcpserver.NewServer(pages.New(ds, cfg.PageSite()), store)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
