package config

import (
	"path/filepath"
)

var (
	// MinVersionDelex is the first corpus version whose files carry
	// entity maps and lexicalization templates. Files from this version
	// and later are read with the delexicalized schema.
	MinVersionDelex = "v1.2"
	// DefaultRelease is used when neither config nor flags name a release.
	DefaultRelease = "v1.5"
	// DefaultSeed drives sampling when no seed is given.
	DefaultSeed int64 = 1
	// AppName is used in generating file system paths.
	AppName = "webnlg"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/webnlg by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/webnlg by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// DataDir returns the default root of downloaded releases.
// Returns ~/.cache/webnlg/releases by default.
func DataDir(homeDir string) string {
	return filepath.Join(CacheDir(homeDir), "releases")
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/webnlg/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/webnlg/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// ReleasesFilePath returns the full path to the releases.yaml file.
// Returns ~/.config/webnlg/releases.yaml by default.
func ReleasesFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "releases.yaml")
}
