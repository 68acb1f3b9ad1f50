package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/config"
)

var (
	initForce       bool
	initInteractive bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(cfgFile); err == nil && !initForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", cfgFile)
		}
		cfg := config.DefaultConfig()
		if initInteractive {
			var err error
			if cfg, err = config.RunWizard(); err != nil {
				return err
			}
		}
		if err := cfg.Save(cfgFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", cfgFile)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
	initCmd.Flags().BoolVarP(&initInteractive, "interactive", "i", false, "prompt for each setting")
	rootCmd.AddCommand(initCmd)
}
