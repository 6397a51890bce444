package releases

import (
	"fmt"
	"net/url"

	"github.com/gnames/webnlg/pkg/corpus"
)

// Validate checks the registry for errors and collects warnings.
func (c *Config) Validate() error {
	if len(c.Releases) == 0 {
		return fmt.Errorf("no releases specified in configuration")
	}

	seen := make(map[string]struct{}, len(c.Releases))
	for i := range c.Releases {
		warnings, err := c.Releases[i].Validate()
		if err != nil {
			return fmt.Errorf("release %d: %w", i+1, err)
		}
		id := c.Releases[i].ID
		if _, ok := seen[id]; ok {
			return fmt.Errorf("release %d: duplicate id '%s'", i+1, id)
		}
		seen[id] = struct{}{}
		c.Warnings = append(c.Warnings, warnings...)
	}

	return nil
}

// Validate checks a single release. File system checks are left to the
// I/O layer.
func (r *Release) Validate() ([]ValidationWarning, error) {
	var warnings []ValidationWarning

	if r.ID == "" {
		return nil, fmt.Errorf("id is required")
	}

	if _, ok := corpus.VersionSchema(r.Version); !ok {
		return nil, fmt.Errorf(
			"release %s: invalid version '%s', use a form like 'v1.5'",
			r.ID, r.Version,
		)
	}

	if len(r.Datasets) == 0 {
		return nil, fmt.Errorf("release %s: at least one dataset is required", r.ID)
	}
	for _, d := range r.Datasets {
		if d == "" {
			return nil, fmt.Errorf("release %s: empty dataset name", r.ID)
		}
	}

	if r.DataURL != "" && !IsValidURL(r.DataURL) {
		warnings = append(warnings, ValidationWarning{
			ReleaseID:  r.ID,
			Field:      "data_url",
			Message:    fmt.Sprintf("'%s' is not an http(s) URL", r.DataURL),
			Suggestion: "Fix 'data_url' or remove it",
		})
		r.DataURL = ""
	}

	return warnings, nil
}

// IsValidURL checks if a string is a valid URL.
func IsValidURL(str string) bool {
	u, err := url.Parse(str)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}
