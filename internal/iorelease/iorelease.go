// Package iorelease reads the release registry and locates corpus files
// of registered releases on the local file system.
package iorelease

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gnames/webnlg/pkg/config"
	"github.com/gnames/webnlg/pkg/releases"
	"gopkg.in/yaml.v3"
)

type iorelease struct {
	cfg *config.Config
}

// New creates a loader of releases.yaml from the config directory.
func New(cfg *config.Config) releases.Loader {
	res := iorelease{cfg: cfg}
	return &res
}

func (r *iorelease) Load() (*releases.Config, error) {
	path := config.ReleasesFilePath(r.cfg.HomeDir)
	res, err := LoadReleasesConfig(path)
	if err != nil {
		return nil, ReleasesConfigError(path, err)
	}
	return res, nil
}

// LoadReleasesConfig reads and validates a releases.yaml file.
func LoadReleasesConfig(path string) (*releases.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read releases config file: %w", err)
	}

	var res releases.Config
	if err := yaml.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("failed to parse releases config: %w", err)
	}

	if err := res.Validate(); err != nil {
		return nil, err
	}

	for _, w := range res.Warnings {
		slog.Warn("Release configuration warning",
			"release", w.ReleaseID,
			"field", w.Field,
			"message", w.Message,
			"suggestion", w.Suggestion)
	}

	return &res, nil
}
