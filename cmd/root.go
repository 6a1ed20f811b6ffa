package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/serviqo/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "serviqo",
	Short: "Marketing site server with per-visitor light and dark themes",
	Long: `Serviqo serves the marketing site for an AI automation consultancy.
Each visitor's light, dark or system theme preference is remembered across
visits and follows their operating system's color scheme while set to system.
The same page can also be exported as a static site.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
