package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Single-page personal portfolio site",
	Long: `Portfolio serves a single scrolling page with about, skills, experience,
projects, education, AI and contact sections. The contact form hands a
prepared message to the visitor's own mail client.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "portfolio.yml", "config file path")
}
