package releases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{Releases: []Release{
		{ID: "v1", Version: "v1.0", Datasets: []string{"train", "dev"}},
		{
			ID:       "v1.5",
			Version:  "v1.5",
			DataURL:  "https://gitlab.com/shimorina/webnlg-dataset",
			Datasets: []string{"train", "dev", "test"},
		},
	}}
}

func TestValidate(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.Validate())
	assert.Empty(t, cfg.Warnings)
	assert.Equal(t, []string{"v1", "v1.5"}, cfg.IDs())
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		msg    string
	}{
		{"no releases", func(c *Config) { c.Releases = nil }, "no releases"},
		{"no id", func(c *Config) { c.Releases[0].ID = "" }, "id is required"},
		{
			"bad version",
			func(c *Config) { c.Releases[1].Version = "1.5" },
			"invalid version",
		},
		{
			"no datasets",
			func(c *Config) { c.Releases[0].Datasets = nil },
			"at least one dataset",
		},
		{
			"empty dataset",
			func(c *Config) { c.Releases[0].Datasets = []string{"train", ""} },
			"empty dataset",
		},
		{
			"duplicate id",
			func(c *Config) { c.Releases[1].ID = "v1" },
			"duplicate id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestValidateBadURL(t *testing.T) {
	cfg := validConfig()
	cfg.Releases[1].DataURL = "gitlab.com/webnlg"
	require.NoError(t, cfg.Validate())
	require.Len(t, cfg.Warnings, 1)
	assert.Equal(t, "v1.5", cfg.Warnings[0].ReleaseID)
	assert.Equal(t, "data_url", cfg.Warnings[0].Field)
	assert.Empty(t, cfg.Releases[1].DataURL)
}

func TestFind(t *testing.T) {
	cfg := validConfig()

	r, ok := cfg.Find("v1.5")
	require.True(t, ok)
	assert.Equal(t, []string{"train", "dev", "test"}, r.Datasets)

	_, ok = cfg.Find("v3")
	assert.False(t, ok)
}

func TestDelexicalized(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"v1", false},
		{"v1.1", false},
		{"v1.2", true},
		{"v1.10", true},
		{"v2.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			r := Release{Version: tt.version}
			assert.Equal(t, tt.want, r.Delexicalized())
		})
	}
}
