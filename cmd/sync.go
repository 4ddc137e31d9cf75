package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blackhillsconsortium/annualreport/internal/remote"
	"github.com/blackhillsconsortium/annualreport/internal/snapshot"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Cache the hosted backend's entities and totals locally",
	Long: `Calls the hosted backend's read procedures and stores each response as a
snapshot in the local SQLite cache, where /api/remote and the MCP server can
read it without network access.`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringSlice("slug", nil, "entity slugs to fetch details for (defaults to every entity in the report)")
	syncCmd.Flags().Duration("prune", 0, "delete snapshots older than this after syncing (0 keeps everything)")
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client, err := remote.NewClient(cfg.RemoteClient())
	if errors.Is(err, remote.ErrNotConfigured) {
		return fmt.Errorf("%w: set remote.url and remote.anon_key in %s", err, cfgFile)
	}
	if err != nil {
		return err
	}

	slugs, _ := cmd.Flags().GetStringSlice("slug")
	if len(slugs) == 0 {
		ds, err := loadDataset(cfg)
		if err != nil {
			return err
		}
		for _, e := range ds.Entities {
			slugs = append(slugs, e.Slug)
		}
	}

	store, closeStore, err := openSnapshots(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	syncer := &snapshot.Syncer{Fetcher: client, Store: store, Logger: logger}
	res, err := syncer.Sync(cmd.Context(), slugs)
	if err != nil {
		var rerr *remote.Error
		if errors.As(err, &rerr) && rerr.Hint != "" {
			logger.Error("backend error", zap.String("code", rerr.Code), zap.String("hint", rerr.Hint))
		}
		return fmt.Errorf("sync from %s: %w", client.URL(), err)
	}

	fmt.Printf("Synced %d entities, %d details", res.Entities, res.Details)
	if res.Totals {
		fmt.Print(", ecosystem totals")
	}
	fmt.Printf(" into %s\n", cfg.Database.Path)

	if age, _ := cmd.Flags().GetDuration("prune"); age > 0 {
		n, err := store.Prune(cmd.Context(), time.Now().Add(-age))
		if err != nil {
			return err
		}
		fmt.Printf("Pruned %d snapshots older than %s\n", n, age)
	}
	return nil
}
