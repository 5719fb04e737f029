package config

// DefaultContentSource is where the content document lives unless configured otherwise.
const DefaultContentSource = "data/content.json"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Content: ContentConfig{
			Source: DefaultContentSource,
		},
		Server: ServerConfig{
			Host: "",
			Port: 8080,
		},
		Theme: ThemeConfig{
			Store: ThemeStoreCookie,
		},
		Site: SiteConfig{
			Title: "Presentations",
		},
		Log: LogConfig{
			Level:  "info",
			Format: LogFormatConsole,
		},
		DataDir: ".deckshelf",
	}
}
