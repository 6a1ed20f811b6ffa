package config

import "time"

// LogFormat selects the zap encoder.
type LogFormat string

const (
	LogFormatJSON    LogFormat = "json"
	LogFormatConsole LogFormat = "console"
)

// Config is the top-level serviqo configuration, corresponding to .serviqo.yml.
type Config struct {
	Port            int            `yaml:"port" koanf:"port"`
	DataDir         string         `yaml:"data_dir" koanf:"data_dir"`
	ContentFile     string         `yaml:"content_file" koanf:"content_file"`
	WatchContent    bool           `yaml:"watch_content" koanf:"watch_content"`
	AllowAllOrigins bool           `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	Theme           ThemeConfig    `yaml:"theme" koanf:"theme"`
	Export          ExportConfig   `yaml:"export" koanf:"export"`
	Activity        ActivityConfig `yaml:"activity" koanf:"activity"`
	Log             LogConfig      `yaml:"log" koanf:"log"`
}

// ThemeConfig controls where visitor preferences are kept.
type ThemeConfig struct {
	StorageKey    string `yaml:"storage_key" koanf:"storage_key"`
	VisitorCookie string `yaml:"visitor_cookie" koanf:"visitor_cookie"`
}

// ExportConfig holds settings for the static build.
type ExportConfig struct {
	OutputDir string   `yaml:"output_dir" koanf:"output_dir"`
	AssetsDir string   `yaml:"assets_dir" koanf:"assets_dir"`
	Assets    []string `yaml:"assets" koanf:"assets"`
}

// ActivityConfig holds activity log settings.
type ActivityConfig struct {
	Retention time.Duration `yaml:"retention" koanf:"retention"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string    `yaml:"level" koanf:"level"`
	Format LogFormat `yaml:"format" koanf:"format"`
}
