package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackhillsconsortium/annualreport/internal/remote"
	"github.com/blackhillsconsortium/annualreport/internal/snapshot"
)

var remoteCmd = &cobra.Command{
	Use:   "remote <entities|entity|totals> [slug]",
	Short: "Query the hosted backend directly",
	Long: `Calls one of the hosted backend's read procedures and prints the JSON it
returns. Nothing is cached; use sync for that.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runRemote,
}

func init() {
	rootCmd.AddCommand(remoteCmd)
}

func runRemote(cmd *cobra.Command, args []string) error {
	kind, err := snapshot.ParseKind(args[0])
	if err != nil {
		return err
	}

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

	ctx := cmd.Context()
	var payload json.RawMessage
	switch kind {
	case snapshot.KindEntities:
		payload, err = client.Entities(ctx)
	case snapshot.KindEntity:
		if len(args) < 2 {
			return fmt.Errorf("remote entity needs a slug")
		}
		payload, err = client.EntityDetail(ctx, args[1])
	case snapshot.KindTotals:
		payload, err = client.EcosystemTotals(ctx)
	}
	if err != nil {
		return err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, payload, "", "  "); err != nil {
		return fmt.Errorf("formatting response: %w", err)
	}
	out.WriteByte('\n')
	_, err = out.WriteTo(os.Stdout)
	return err
}
