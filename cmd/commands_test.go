package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/webnlg/internal/iofs"
	"github.com/gnames/webnlg/internal/iotesting"
	"github.com/gnames/webnlg/pkg/config"
	"github.com/gnames/webnlg/pkg/corpus"
	"github.com/gnames/webnlg/pkg/errcode"
	"github.com/gnames/webnlg/pkg/releases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupHome prepares a home dir and a data dir with release v1.5.
func setupHome(t *testing.T) {
	t.Helper()
	_, dataDir := iotesting.SetupHome(t)
	iotesting.WriteRelease(t, dataDir, "v1.5",
		[]string{"train", "dev", "test"},
		map[string]string{"1triples/mixed.xml": iotesting.DelexXML},
	)
	t.Setenv("WEBNLG_CORPUS_RELEASE", "v1.5")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := getRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestFilterFlags(t *testing.T) {
	cmd := getStatsCmd()
	for _, name := range []string{"release", "categories", "ntriples", "datasets"} {
		require.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	assert.Equal(t, "c", cmd.Flags().Lookup("categories").Shorthand)
	assert.Equal(t, "n", cmd.Flags().Lookup("ntriples").Shorthand)
	assert.Equal(t, "D", cmd.Flags().Lookup("datasets").Shorthand)
	assert.Equal(t, "r", cmd.Flags().Lookup("release").Shorthand)

	var f filterFlags
	assert.False(t, f.hasFilter())
	f.ntriples = []int{2}
	assert.True(t, f.hasFilter())
	assert.Equal(t, corpus.Filter{NTriples: []int{2}}, f.filter())
}

func TestFormatRelease(t *testing.T) {
	dataDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dataDir, "v1.2"), 0755))

	r := releases.Release{
		ID:       "v1.2",
		Version:  "v1.2",
		DataURL:  "https://example.org/v1.2",
		Datasets: []string{"train", "dev"},
	}
	s := formatRelease(r, corpus.Delexicalized, dataDir, true)
	assert.Contains(t, s, "* v1.2")
	assert.Contains(t, s, "delexicalized")
	assert.Contains(t, s, "local")
	assert.Contains(t, s, "train,dev")
	assert.Contains(t, s, "https://example.org/v1.2")

	r = releases.Release{ID: "v1", Version: "v1.0", Datasets: []string{"train"}}
	s = formatRelease(r, corpus.Plain, dataDir, false)
	assert.Contains(t, s, "plain")
	assert.Contains(t, s, "missing")
}

func TestPrintEntry(t *testing.T) {
	e, err := corpus.BuildEntry(corpus.RawEntry{
		Size:     1,
		Category: "Food",
		EID:      "Id3",
		MTriples: []string{"A | b | C"},
		Lexes:    []corpus.RawLex{{LID: "Id1", Chardata: "A b C."}},
	}, "dev", corpus.Plain)
	require.NoError(t, err)

	buf := new(bytes.Buffer)
	require.NoError(t, printEntry(buf, e, false))
	var res map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
	assert.Equal(t, "dev_Food_1_Id3", res["idx"])
	assert.NotContains(t, res, "content")

	buf.Reset()
	require.NoError(t, printEntry(buf, e, true))
	assert.Contains(t, buf.String(), "Entry info: Category=Food")
}

func TestInitConfigErrors(t *testing.T) {
	home, _ := iotesting.SetupHome(t)

	_, err := initConfig(home)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	assert.Equal(t, errcode.ReadConfigError, gnErr.Code)

	require.NoError(t, iofs.EnsureDirs(home))
	require.NoError(t, iofs.EnsureConfigFile(home))

	// the seed must be a number
	t.Setenv("WEBNLG_CORPUS_SEED", "forty-two")
	_, err = initConfig(home)
	require.Error(t, err)
	gnErr, ok = err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	assert.Equal(t, errcode.DecodeConfigError, gnErr.Code)

	t.Setenv("WEBNLG_CORPUS_SEED", "42")
	res, err := initConfig(home)
	require.NoError(t, err)
	assert.Equal(t, int64(42), res.Corpus.Seed)
}

func TestCommandsEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	setupHome(t)

	out, err := execute(t, "releases")
	require.NoError(t, err)
	assert.Contains(t, out, "* v1.5")
	assert.Equal(t, "v1.5", cfg.Corpus.Release)
	assert.False(t, cfg.Corpus.WithProgress)

	out, err = execute(t, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Entries: 6")
	assert.Contains(t, out, "lexicalizations")

	out, err = execute(t, "stats", "-c", "Food", "-D", "train,dev")
	require.NoError(t, err)
	assert.Contains(t, out, "Entries: 2")

	out, err = execute(t, "sample", "-c", "City", "--seed", "7")
	require.NoError(t, err)
	var e corpus.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &e))
	assert.Equal(t, "City", e.Category)
	assert.Equal(t, "Paris", *e.DelexMTriples[0].Subject)

	out2, err := execute(t, "sample", "-c", "City", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, out, out2)

	_, err = execute(t, "sample", "-c", "Astronaut")
	require.Error(t, err)

	out, err = execute(t, "show", "dev_Food_1_Id2", "--text")
	require.NoError(t, err)
	assert.Contains(t, out, "Bacon is from Italy.")
	assert.Contains(t, out, corpus.NotFound)

	out, err = execute(t, "show", "dev_Food_1_Id99")
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = execute(t, "stats", "-r", "v9")
	require.Error(t, err)

	outDir := filepath.Join(t.TempDir(), "tables")
	_, err = execute(t, "export", "-o", outDir, "-f", "tsv", "-n", "1")
	require.NoError(t, err)
	for _, name := range []string{
		"entries.tsv", "original_triples.tsv",
		"modified_triples.tsv", "lexicalizations.tsv",
	} {
		_, err = os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, name)
	}

	_, err = execute(t, "export", "-o", outDir, "-f", "xlsx")
	require.Error(t, err)

	_, err = os.Stat(config.ConfigFilePath(cfg.HomeDir))
	assert.NoError(t, err, "config file is created on first run")
}
