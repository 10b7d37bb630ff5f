// Package config provides configuration management for herbario.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Fetch: start_page, page_retries, timeout_sec, language
//   - Log: level, format, destination
//   - General: clean_logs, clean_temp
//
// Runtime-only fields (CLI flags only):
//   - WorkDir (set once at startup)
//
// # Environment Variables
//
// Use HERBARIO_ prefix with underscores for nesting:
//
//	HERBARIO_FETCH_START_PAGE=1
//	HERBARIO_FETCH_PAGE_RETRIES=3
//	HERBARIO_LOG_LEVEL=info
package config

// Config represents the complete herbario configuration.
type Config struct {
	// Fetch contains settings for the species list and detail downloads.
	Fetch FetchConfig `mapstructure:"fetch" yaml:"fetch"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// CleanLogs removes empty error log files after a run.
	CleanLogs bool `mapstructure:"clean_logs" yaml:"clean_logs"`

	// CleanTemp removes stage checkpoint files after a run. A cleaned
	// run cannot be resumed and starts from scratch next time.
	CleanTemp bool `mapstructure:"clean_temp" yaml:"clean_temp"`

	// WorkDir is the directory where data/, data/temp/ and errors/ live.
	// It is set by the CLI during init, there is no persistent value for it.
	WorkDir string
}

// FetchConfig contains settings for the paginated collection and the
// per-species detail downloads.
type FetchConfig struct {
	// StartPage is the first page requested from the species list endpoint.
	StartPage int `mapstructure:"start_page" yaml:"start_page"`

	// PageRetries is the number of attempts for a list page that answers
	// with a non-200 status before the collection aborts with partial
	// results.
	PageRetries int `mapstructure:"page_retries" yaml:"page_retries"`

	// TimeoutSec is the per-request HTTP timeout in seconds.
	TimeoutSec int `mapstructure:"timeout_sec" yaml:"timeout_sec"`

	// Language selects the language of the detail documents.
	Language string `mapstructure:"language" yaml:"language"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a dated log file at errors/, STDERR or STDOUT.
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Fetch: FetchConfig{
			StartPage:   1,
			PageRetries: 3,
			TimeoutSec:  30,
			Language:    "en",
		},
		Log: LogConfig{
			Format: "text",
			Level:  "error",
			// errors/<timestamp>.log, append mode
			Destination: "file",
		},
		CleanLogs: true,
		CleanTemp: false,
		WorkDir:   ".",
	}

	return res
}
