package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/deckshelf/internal/content"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Load the content document and report problems",
	Long: `Fetches the configured content document the same way the site does and
lists structural problems such as missing or duplicate IDs, or Prezi and
SlidesGPT entries without a usable presentationUrl.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	loader := content.NewLoader(cfg.Content.Source, stderrLogger(cfg))
	doc, err := loader.Fetch(cmd.Context())
	if err != nil {
		return fmt.Errorf("loading %s: %w", cfg.Content.Source, err)
	}

	out := cmd.OutOrStdout()
	issues := content.Validate(doc)
	fmt.Fprintf(out, "%s: %d folders, %d presentations\n", cfg.Content.Source, len(doc.Folders), doc.PresentationCount())
	if len(issues) == 0 {
		fmt.Fprintln(out, "No problems found.")
		return nil
	}

	for _, issue := range issues {
		fmt.Fprintf(out, "  - %s\n", issue)
	}
	return fmt.Errorf("%d problem(s) found", len(issues))
}
