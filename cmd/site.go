package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/blackhillsconsortium/annualreport/internal/pages"
	"github.com/blackhillsconsortium/annualreport/internal/progress"
	"github.com/blackhillsconsortium/annualreport/internal/site"
)

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Export the report as a static website",
	Long:  `Renders every route, the stylesheet, the page script and the JSON API into a self-contained static site.`,
	RunE:  runSite,
}

func init() {
	siteCmd.Flags().Bool("serve", false, "start a local HTTP server after generating")
	siteCmd.Flags().Int("port", 8080, "port for the local dev server")
	siteCmd.Flags().Bool("open", false, "open browser automatically when serving")
	siteCmd.Flags().String("output", "", "override output directory (defaults to output_dir)")
	rootCmd.AddCommand(siteCmd)
}

func runSite(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	ds, err := loadDataset(cfg)
	if err != nil {
		return err
	}

	generator, err := site.NewGenerator(pages.New(ds, cfg.PageSite()), outputDir)
	if err != nil {
		return err
	}
	generator.Reporter = progress.NewReporter("Exporting site")
	generator.Logger = logger

	pageCount, err := generator.Generate()
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	fmt.Printf("Static site generated: %s (%d pages)\n", outputDir, pageCount)

	serve, _ := cmd.Flags().GetBool("serve")
	if !serve {
		return nil
	}

	port, _ := cmd.Flags().GetInt("port")
	openBrowser, _ := cmd.Flags().GetBool("open")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Serving at http://localhost:%d, press Ctrl+C to stop\n", port)
	if err := site.Serve(ctx, outputDir, port, openBrowser, logger); err != nil {
		return fmt.Errorf("serving site: %w", err)
	}
	return nil
}
