package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "deckshelf",
	Short: "Serve a browsable shelf of embedded presentations",
	Long: `Deckshelf renders a folder grid and per-folder presentation listings from
a single JSON content document, and opens Prezi and SlidesGPT decks in an
embedded viewer. Light and dark themes are remembered per visitor.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".deckshelf.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
