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
	"github.com/gnames/gn"
	"github.com/gnames/webnlg/internal/ioexport"
	"github.com/spf13/cobra"
)

// getExportCmd returns the export command.
func getExportCmd() *cobra.Command {
	var (
		flags  filterFlags
		outDir string
		format string
	)

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export a release as four relational tables",
		Long: `Flatten a release into four tables and write them to files:

  entries           one row per entry
  original_triples  one row per original triple
  modified_triples  one row per modified triple
  lexicalizations   one row per lexicalization

Formats: csv, tsv, json (one file per table) and sqlite (one database
with four tables). An existing SQLite database is never overwritten.

Filters narrow the release before export.

Examples:
  webnlg export -r v1.5 -o ./tables
  webnlg export -r v1.5 -o ./tables -f sqlite -c Airport -D train,dev`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runExport(&flags, outDir, format)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addFilterFlags(exportCmd, &flags)
	exportCmd.Flags().StringVarP(&outDir, "output", "o", ".", "output directory")
	exportCmd.Flags().StringVarP(&format, "format", "f", "csv", "csv, tsv, json or sqlite")
	return exportCmd
}

func runExport(flags *filterFlags, outDir, format string) error {
	f, err := ioexport.NewFormat(format)
	if err != nil {
		return err
	}

	c, err := loadCorpus(flags.releaseID())
	if err != nil {
		return err
	}

	if c, err = flags.narrow(c); err != nil {
		return err
	}

	paths, err := ioexport.Export(c.Tables(), outDir, f)
	if err != nil {
		return err
	}

	for _, p := range paths {
		gn.Info("Created <em>%s</em>", p)
	}
	return nil
}
