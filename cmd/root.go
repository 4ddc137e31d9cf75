package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blackhillsconsortium/annualreport/internal/config"
	"github.com/blackhillsconsortium/annualreport/internal/logging"
)

var (
	cfgFile string
	verbose bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "annualreport",
	Short: "Black Hills Consortium annual report site",
	Long: `annualreport renders the consortium's annual report: the entity portfolio,
financials, flywheel, goals, investor and team pages. It can run as a live
web server, export a static site, cache the hosted backend locally and
answer agents over MCP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(verbose)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
