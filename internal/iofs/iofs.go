// Package iofs prepares directories and default configuration files of
// webnlg on the local file system.
package iofs

import (
	_ "embed"
	"os"

	"github.com/gnames/webnlg/pkg/config"
)

//go:embed config.yaml
var ConfigYAML string

//go:embed releases.yaml
var ReleasesYAML string

// EnsureDirs creates config, cache, data and log directories if they
// do not exist yet.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.CacheDir(homeDir),
		config.DataDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the default config.yaml unless the user
// already has one.
func EnsureConfigFile(homeDir string) error {
	return ensureFile(config.ConfigFilePath(homeDir), ConfigYAML)
}

// EnsureReleasesFile writes the default releases.yaml unless the user
// already has one.
func EnsureReleasesFile(homeDir string) error {
	return ensureFile(config.ReleasesFilePath(homeDir), ReleasesYAML)
}

func ensureFile(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return WriteDefaultFileError(path, err)
	}

	return nil
}
