/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/webnlg/internal/iorelease"
	"github.com/gnames/webnlg/pkg/corpus"
	"github.com/gnames/webnlg/pkg/releases"
	"github.com/spf13/cobra"
)

// getReleasesCmd returns the releases command.
func getReleasesCmd() *cobra.Command {
	releasesCmd := &cobra.Command{
		Use:   "releases",
		Short: "List registered WebNLG releases",
		Long: `List releases registered in ~/.config/webnlg/releases.yaml.

For every release the command shows its version, the schema of its
files (plain or delexicalized), datasets, whether the files are found
in the data dir, and where to download them.

Examples:
  webnlg releases`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runReleases(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}
	return releasesCmd
}

func runReleases(cmd *cobra.Command) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	dataDir := cfg.CorpusDataDir()
	res := iorelease.NewResolver(dataDir, reg)
	for _, r := range reg.Releases {
		schema := res.ReleaseSchema(r.ID)
		fmt.Fprintln(out, formatRelease(r, schema, dataDir, r.ID == cfg.Corpus.Release))
	}
	gn.Info("Data dir: <em>%s</em>", dataDir)
	return nil
}

func formatRelease(
	r releases.Release,
	schema corpus.SchemaVersion,
	dataDir string,
	isDefault bool,
) string {

	status := "missing"
	if info, err := os.Stat(filepath.Join(dataDir, r.ID)); err == nil && info.IsDir() {
		status = "local"
	}

	mark := " "
	if isDefault {
		mark = "*"
	}

	res := fmt.Sprintf("%s %-6s %-6s %-13s %-7s %s",
		mark, r.ID, r.Version, schema, status, strings.Join(r.Datasets, ","))
	if r.DataURL != "" {
		res += "\n    " + r.DataURL
	}
	return res
}
