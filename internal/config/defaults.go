package config

import "time"

// DefaultConfigFile is the config path used when --config is not given.
const DefaultConfigFile = ".serviqo.yml"

// DefaultAssets are the patterns copied from the assets directory by the
// static build.
var DefaultAssets = []string{
	"images/**",
	"pdfs/*.pdf",
	"favicon.ico",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:         8080,
		DataDir:      "data",
		WatchContent: true,
		Theme: ThemeConfig{
			StorageKey:    "theme",
			VisitorCookie: "serviqo_visitor",
		},
		Export: ExportConfig{
			OutputDir: "dist",
			AssetsDir: "public",
			Assets:    DefaultAssets,
		},
		Activity: ActivityConfig{
			Retention: 90 * 24 * time.Hour,
		},
		Log: LogConfig{
			Level:  "info",
			Format: LogFormatJSON,
		},
	}
}
