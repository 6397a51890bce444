// Package releases provides the registry of WebNLG corpus releases.
//
// The registry is read from releases.yaml. Every release names the
// datasets (train, dev, test...) that exist in its directory under the
// data dir. The version of a release decides the schema of its corpus
// files.
package releases

import (
	"github.com/gnames/webnlg/pkg/corpus"
)

// Loader reads the registry from its storage.
type Loader interface {
	Load() (*Config, error)
}

// Config represents the complete releases.yaml file.
type Config struct {
	// Releases is the list of registered releases.
	Releases []Release `yaml:"releases"`

	// Warnings holds non-fatal validation warnings (not serialized)
	Warnings []ValidationWarning `yaml:"-"`
}

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	ReleaseID  string // ID of the release
	Field      string // Field name that has the issue
	Message    string // Description of the issue
	Suggestion string // How to fix it
}

// Release is one registered corpus release.
type Release struct {
	// ID is the release identifier and the name of its directory
	// under the data dir, for example "v1.5".
	ID string `yaml:"id"`

	// Version is a semantic version like "v1.5" or "v2.1".
	Version string `yaml:"version"`

	Description string `yaml:"description,omitempty"`

	// DataURL is the download page of the release. It is informational.
	DataURL string `yaml:"data_url,omitempty"`

	// Datasets are subdirectories of the release in load order.
	Datasets []string `yaml:"datasets"`
}

// Schema returns the schema of corpus files that the release version
// implies.
func (r Release) Schema() corpus.SchemaVersion {
	s, _ := corpus.VersionSchema(r.Version)
	return s
}

// Delexicalized is true for releases whose files carry entity maps and
// templates.
func (r Release) Delexicalized() bool {
	return r.Schema() == corpus.Delexicalized
}

// Find returns the release with the given ID.
func (c *Config) Find(id string) (Release, bool) {
	for _, r := range c.Releases {
		if r.ID == id {
			return r, true
		}
	}
	return Release{}, false
}

// IDs returns release identifiers in registry order.
func (c *Config) IDs() []string {
	res := make([]string, len(c.Releases))
	for i, r := range c.Releases {
		res[i] = r.ID
	}
	return res
}
