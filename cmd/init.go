package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/deckshelf/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize deckshelf configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the content source, listener and theme storage, and writes a .deckshelf.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
