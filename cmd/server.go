package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blackhillsconsortium/annualreport/internal/report"
	"github.com/blackhillsconsortium/annualreport/internal/server"
	"github.com/blackhillsconsortium/annualreport/internal/site"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the annual report web server",
	Long: `Serves every report page, the JSON API and /healthz. With --watch and a
data_dir, edits to the data files reload the site in open browsers.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().Int("port", 0, "port to listen on (defaults to server.port)")
	serverCmd.Flags().Bool("watch", false, "reload when files in data_dir change (defaults to server.watch)")
	serverCmd.Flags().Bool("allow-all-origins", false, "allow CORS requests from any origin")
	rootCmd.AddCommand(serverCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port, _ = cmd.Flags().GetInt("port")
	}
	if cmd.Flags().Changed("watch") {
		cfg.Server.Watch, _ = cmd.Flags().GetBool("watch")
	}
	if cmd.Flags().Changed("allow-all-origins") {
		cfg.Server.AllowAllOrigins, _ = cmd.Flags().GetBool("allow-all-origins")
	}
	if cfg.Server.Watch && cfg.DataDir == "" {
		return fmt.Errorf("--watch needs data_dir in %s: the embedded data cannot change", cfgFile)
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

	var store server.Snapshots
	if snaps != nil {
		store = snaps
	}
	srv, err := server.New(server.Config{
		Port:       cfg.Server.Port,
		AllowAll:   cfg.Server.AllowAllOrigins,
		LiveReload: cfg.Server.Watch,
		Site:       cfg.PageSite(),
	}, ds, store, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Server.Watch {
		reload := func() error {
			next, err := report.LoadDir(cfg.DataDir)
			if err != nil {
				return err
			}
			srv.SetDataset(next)
			return nil
		}
		w, err := site.NewWatcher(cfg.DataDir, srv.Hub(), reload, logger)
		if err != nil {
			return fmt.Errorf("watching %s: %w", cfg.DataDir, err)
		}
		go func() {
			if err := w.Run(ctx); err != nil {
				logger.Warn("watcher stopped", zap.Error(err))
			}
		}()
		logger.Info("watching data", zap.String("dir", cfg.DataDir))
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown", zap.Error(err))
		}
	}()

	fmt.Fprintf(os.Stderr, "annualreport server %s starting on port %d\n", Version, cfg.Server.Port)
	fmt.Fprintf(os.Stderr, "  Entities: %d\n", len(ds.Entities))
	if snaps != nil {
		fmt.Fprintf(os.Stderr, "  Snapshot cache: %s\n", cfg.Database.Path)
	}

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
