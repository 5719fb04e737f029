package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to deckshelf! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Content source.
	sourcePrompt := promptui.Prompt{
		Label:   "Content document (file path or http(s) URL)",
		Default: cfg.Content.Source,
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("a content source is required")
			}
			return nil
		},
	}
	source, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content source: %w", err)
	}
	cfg.Content.Source = strings.TrimSpace(source)

	// 2. Site title.
	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: cfg.Site.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site title: %w", err)
	}
	cfg.Site.Title = title

	// 3. Port.
	portPrompt := promptui.Prompt{
		Label:    "Port to listen on",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 4. Theme persistence.
	storePrompt := promptui.Select{
		Label: "Where should theme preferences be stored",
		Items: []string{
			"cookie (kept in the visitor's browser)",
			"sqlite (kept in a local database, keyed by visitor)",
		},
	}
	storeIdx, _, err := storePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("theme store selection: %w", err)
	}
	stores := []ThemeStoreType{ThemeStoreCookie, ThemeStoreSQLite}
	cfg.Theme.Store = stores[storeIdx]

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// validatePort accepts decimal port numbers in the TCP range.
func validatePort(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if n < 0 || n > 65535 {
		return fmt.Errorf("port must be between 0 and 65535")
	}
	return nil
}
