package iorelease

import (
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/webnlg/internal/iotesting"
	"github.com/gnames/webnlg/internal/ioxml"
	"github.com/gnames/webnlg/pkg/config"
	"github.com/gnames/webnlg/pkg/corpus"
	"github.com/gnames/webnlg/pkg/errcode"
	"github.com/gnames/webnlg/pkg/releases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const releasesYAML = `
releases:
  - id: v1
    version: v1.0
    datasets: [train, dev]
  - id: v1.2
    version: v1.2
    data_url: https://gitlab.com/shimorina/webnlg-dataset
    datasets: [train]
`

func registry(t *testing.T) *releases.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "releases.yaml")
	iotesting.WriteFile(t, path, releasesYAML)
	res, err := LoadReleasesConfig(path)
	require.NoError(t, err)
	return res
}

func TestLoadReleasesConfig(t *testing.T) {
	reg := registry(t)
	assert.Equal(t, []string{"v1", "v1.2"}, reg.IDs())

	r, ok := reg.Find("v1.2")
	require.True(t, ok)
	assert.Equal(t, []string{"train"}, r.Datasets)
	assert.True(t, r.Delexicalized())
}

func TestLoadReleasesConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadReleasesConfig(filepath.Join(dir, "none.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read releases config file")

	path := filepath.Join(dir, "bad.yaml")
	iotesting.WriteFile(t, path, "releases: [")
	_, err = LoadReleasesConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")

	iotesting.WriteFile(t, path, "releases:\n  - id: v1\n    version: one\n    datasets: [train]\n")
	_, err = LoadReleasesConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid version")
}

func TestLoaderFromHomeDir(t *testing.T) {
	home := t.TempDir()
	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir(home)})

	_, err := New(cfg).Load()
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	assert.Equal(t, errcode.ReleasesConfigError, gnErr.Code)

	iotesting.WriteFile(t, config.ReleasesFilePath(home), releasesYAML)
	reg, err := New(cfg).Load()
	require.NoError(t, err)
	assert.Len(t, reg.Releases, 2)
}

func TestResolverFiles(t *testing.T) {
	dataDir := t.TempDir()
	iotesting.WriteFile(t, filepath.Join(dataDir, "v1", "train", "2triples", "b.xml"), iotesting.PlainXML)
	iotesting.WriteFile(t, filepath.Join(dataDir, "v1", "train", "1triples", "a.xml"), iotesting.PlainXML)
	iotesting.WriteFile(t, filepath.Join(dataDir, "v1", "train", "README.md"), "readme")
	iotesting.WriteFile(t, filepath.Join(dataDir, "v1", "dev", "c.XML"), iotesting.PlainXML)

	res := NewResolver(dataDir, registry(t))

	ds, err := res.Datasets("v1")
	require.NoError(t, err)
	assert.Equal(t, []string{"train", "dev"}, ds)

	files, err := res.Files("v1", "train")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dataDir, "v1", "train", "1triples", "a.xml"),
		filepath.Join(dataDir, "v1", "train", "2triples", "b.xml"),
	}, files)

	files, err = res.Files("v1", "dev")
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestResolverErrors(t *testing.T) {
	res := NewResolver(t.TempDir(), registry(t))

	_, err := res.Datasets("v9")
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	assert.Equal(t, errcode.UnknownReleaseError, gnErr.Code)

	_, err = res.Files("v9", "train")
	require.Error(t, err)
	gnErr, ok = err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	assert.Equal(t, errcode.UnknownReleaseError, gnErr.Code)

	_, err = res.Files("v1", "train")
	require.Error(t, err)
	gnErr, ok = err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	assert.Equal(t, errcode.DatasetNotFoundError, gnErr.Code)
}

func TestLoadFromDisk(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	dataDir := t.TempDir()
	iotesting.WriteFile(t, filepath.Join(dataDir, "v1", "train", "a.xml"), iotesting.PlainXML)
	iotesting.WriteFile(t, filepath.Join(dataDir, "v1", "dev", "a.xml"), iotesting.PlainXML)
	iotesting.WriteFile(t, filepath.Join(dataDir, "v1.2", "train", "a.xml"), iotesting.DelexXML)
	res := NewResolver(dataDir, registry(t))

	c, err := corpus.Load("v1", res, ioxml.New())
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	e, ok := c.Get("dev_Airport_1_Id1")
	require.True(t, ok)
	assert.Equal(t, corpus.Plain, e.Schema())
	assert.Equal(t, []string{"A b C."}, e.Texts())

	c, err = corpus.Load("v1.2", res, ioxml.New())
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	e, ok = c.Get("train_City_1_Id1")
	require.True(t, ok)
	assert.Equal(t, corpus.Delexicalized, e.Schema())
	assert.Equal(t, "France", *e.DelexicalizedData()[0].Object)
	assert.Equal(t,
		[]string{"ENTITY-1 is the capital of ENTITY-2."}, e.Templates())
}

func TestResolverSchema(t *testing.T) {
	// the data dir itself sits below a directory that looks like a version
	dataDir := filepath.Join(t.TempDir(), "v3", "corpora")
	path := filepath.Join(t.TempDir(), "releases.yaml")
	iotesting.WriteFile(t, path, `
releases:
  - id: webnlg2017
    version: v1.0
    datasets: [train]
  - id: v1.2
    version: v1.2
    datasets: [train]
  - id: challenge
    version: v2.0
    datasets: [train]
`)
	reg, err := LoadReleasesConfig(path)
	require.NoError(t, err)
	res := NewResolver(dataDir, reg)

	tests := []struct {
		name    string
		release string
		path    string
		want    corpus.SchemaVersion
	}{
		{
			"ancestor token is ignored", "webnlg2017",
			filepath.Join(dataDir, "webnlg2017", "train", "a.xml"), corpus.Plain,
		},
		{
			"file name token is ignored", "v1.2",
			filepath.Join(dataDir, "v1.2", "train", "a_v1.xml"), corpus.Delexicalized,
		},
		{
			"registry version without token", "challenge",
			filepath.Join(dataDir, "challenge", "train", "a.xml"), corpus.Delexicalized,
		},
		{
			"path outside data dir", "webnlg2017",
			filepath.Join("/srv", "v2.1", "train", "a.xml"), corpus.Plain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, res.Schema(tt.release, tt.path))
			// listing and loading agree
			assert.Equal(t, res.ReleaseSchema(tt.release),
				res.Schema(tt.release, filepath.Join(dataDir, tt.release, "x.xml")))
		})
	}
}
