// Package config provides configuration management for webnlg.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
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
//   - Corpus: data_dir, release, seed, with_progress
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use WEBNLG_ prefix with underscores for nesting:
//
//	WEBNLG_CORPUS_DATA_DIR=/data/webnlg
//	WEBNLG_CORPUS_RELEASE=v1.5
//	WEBNLG_CORPUS_SEED=42
//	WEBNLG_LOG_LEVEL=info
package config

// Config represents the complete webnlg configuration.
type Config struct {
	// Corpus contains settings for loading and sampling a release.
	Corpus CorpusConfig `mapstructure:"corpus" yaml:"corpus"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config, data and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// CorpusConfig contains settings for corpus releases.
type CorpusConfig struct {
	// DataDir is the root of the local release layout:
	// <DataDir>/<release>/<dataset>/**/*.xml
	// If empty, the data directory inside the cache dir is used.
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`

	// Release is the release identifier used when a command does not
	// provide one explicitly.
	Release string `mapstructure:"release" yaml:"release"`

	// Seed drives sampling when a command does not provide one.
	Seed int64 `mapstructure:"seed" yaml:"seed"`

	// WithProgress shows a progress bar while corpus files are read.
	WithProgress bool `mapstructure:"with_progress" yaml:"with_progress"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Corpus: CorpusConfig{
			Release:      DefaultRelease,
			Seed:         DefaultSeed,
			WithProgress: true,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}

// CorpusDataDir returns the directory with local releases. An explicitly
// configured DataDir wins over the default location in the cache dir.
func (c *Config) CorpusDataDir() string {
	if c.Corpus.DataDir != "" {
		return c.Corpus.DataDir
	}
	return DataDir(c.HomeDir)
}
