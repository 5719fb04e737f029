package config

// ThemeStoreType selects where the visitor's theme preference is kept.
type ThemeStoreType string

const (
	ThemeStoreCookie ThemeStoreType = "cookie"
	ThemeStoreSQLite ThemeStoreType = "sqlite"
)

// LogFormat controls how log lines are written.
type LogFormat string

const (
	LogFormatConsole LogFormat = "console"
	LogFormatJSON    LogFormat = "json"
)

// Config is the top-level deckshelf configuration, corresponding to .deckshelf.yml.
type Config struct {
	Content ContentConfig `yaml:"content" koanf:"content"`
	Server  ServerConfig  `yaml:"server" koanf:"server"`
	Theme   ThemeConfig   `yaml:"theme" koanf:"theme"`
	Site    SiteConfig    `yaml:"site" koanf:"site"`
	Log     LogConfig     `yaml:"log" koanf:"log"`
	DataDir string        `yaml:"data_dir" koanf:"data_dir"`
}

// ContentConfig points at the JSON content document.
type ContentConfig struct {
	// Source is a local file path or an http(s) URL.
	Source string `yaml:"source" koanf:"source"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host            string `yaml:"host" koanf:"host"`
	Port            int    `yaml:"port" koanf:"port"`
	AllowAllOrigins bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// ThemeConfig holds theme persistence settings.
type ThemeConfig struct {
	Store ThemeStoreType `yaml:"store" koanf:"store"`
}

// SiteConfig holds presentation settings for the rendered pages.
type SiteConfig struct {
	Title string `yaml:"title" koanf:"title"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string    `yaml:"level" koanf:"level"`
	Format LogFormat `yaml:"format" koanf:"format"`
}
