// Package iotesting provides shared test utilities for tests that read
// releases from the file system or run commands against a home dir.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"os"
	"path/filepath"
	"testing"
)

// PlainXML is a file of a plain release (before v1.2) with one entry.
// Lexicalizations carry their text directly.
const PlainXML = `<benchmark><entries>
<entry category="Airport" eid="Id1" size="1">
  <originaltripleset><otriple>A | b | C</otriple></originaltripleset>
  <modifiedtripleset><mtriple>A | b | C</mtriple></modifiedtripleset>
  <lex comment="good" lid="Id1">A b C.</lex>
</entry>
</entries></benchmark>`

// DelexXML is a file of a delexicalized release with two entries.
// The second entry has no template.
const DelexXML = `<benchmark><entries>
<entry category="City" eid="Id1" size="1">
  <originaltripleset><otriple>Paris | capitalOf | France</otriple></originaltripleset>
  <modifiedtripleset><mtriple>ENTITY-1 | capitalOf | ENTITY-2</mtriple></modifiedtripleset>
  <lex comment="good" lid="Id1">
    <text>Paris is the capital of France.</text>
    <template>ENTITY-1 is the capital of ENTITY-2.</template>
  </lex>
  <entitymap>
    <entity>ENTITY-1 | Paris</entity>
    <entity>ENTITY-2 | France</entity>
  </entitymap>
</entry>
<entry category="Food" eid="Id2" size="1">
  <originaltripleset><otriple>Bacon | country | Italy</otriple></originaltripleset>
  <modifiedtripleset><mtriple>ENTITY-1 | country | ENTITY-2</mtriple></modifiedtripleset>
  <lex comment="good" lid="Id1">
    <text>Bacon is from Italy.</text>
  </lex>
  <entitymap>
    <entity>ENTITY-1 | Bacon</entity>
    <entity>ENTITY-2 | Italy</entity>
  </entitymap>
</entry>
</entries></benchmark>`

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		t.Fatalf("Failed to create dir for %s: %v", path, err)
	}
	err = os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

// WriteRelease lays out files of a release under dataDir, the same
// content for every dataset:
//
//	<dataDir>/<release>/<dataset>/<name>
//
// Names may contain subdirectories, like "1triples/Airport.xml".
func WriteRelease(
	t *testing.T,
	dataDir, release string,
	datasets []string,
	files map[string]string,
) {
	t.Helper()

	for _, ds := range datasets {
		for name, content := range files {
			WriteFile(t, filepath.Join(dataDir, release, ds, name), content)
		}
	}
}

// SetupHome creates a temporary home directory and points HOME to it,
// so commands never touch ~/.config/webnlg of the user. The data dir
// is set to <home>/webnlg-data and the progress bar is switched off.
// Environment is restored automatically when the test finishes.
//
// Returns the home directory and the data directory.
func SetupHome(t *testing.T) (string, string) {
	t.Helper()

	home := t.TempDir()
	dataDir := filepath.Join(home, "webnlg-data")

	t.Setenv("HOME", home)
	t.Setenv("WEBNLG_CORPUS_DATA_DIR", dataDir)
	t.Setenv("WEBNLG_CORPUS_WITH_PROGRESS", "false")
	return home, dataDir
}
