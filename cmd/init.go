package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackhillsconsortium/annualreport/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize annualreport configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the site branding, data source, export directory and server, and writes .annualreport.yml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(cfgFile); err == nil && !initForce {
			return fmt.Errorf("%s already exists; use --force to overwrite it", cfgFile)
		}
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}
