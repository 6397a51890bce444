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
	"io"
	"maps"
	"slices"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/webnlg/pkg/corpus"
	"github.com/spf13/cobra"
)

// getStatsCmd returns the stats command.
func getStatsCmd() *cobra.Command {
	var flags filterFlags

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show counts of entries and table rows of a release",
		Long: `Load a release and show the number of entries per dataset and
category, and the number of rows of the four tables (entries, original
triples, modified triples, lexicalizations).

Filters narrow the release before counting.

Examples:
  webnlg stats -r v1.5
  webnlg stats -r v1.5 -c Airport,Food -n 1,2 -D train`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runStats(cmd, &flags)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addFilterFlags(statsCmd, &flags)
	return statsCmd
}

func runStats(cmd *cobra.Command, flags *filterFlags) error {
	c, err := loadCorpus(flags.releaseID())
	if err != nil {
		return err
	}

	if c, err = flags.narrow(c); err != nil {
		return err
	}

	printStats(cmd.OutOrStdout(), c)
	return nil
}

func printStats(w io.Writer, c *corpus.Corpus) {
	datasets := make(map[string]int)
	categories := make(map[string]int)
	for e := range c.Entries() {
		datasets[e.Dataset]++
		categories[e.Category]++
	}

	fmt.Fprintf(w, "Release: %s\n", c.Release())
	fmt.Fprintf(w, "Entries: %s\n\n", humanize.Comma(int64(c.Len())))

	fmt.Fprintln(w, "Datasets:")
	for _, k := range slices.Sorted(maps.Keys(datasets)) {
		fmt.Fprintf(w, "  %-20s %10s\n", k, humanize.Comma(int64(datasets[k])))
	}

	fmt.Fprintln(w, "\nCategories:")
	for _, k := range slices.Sorted(maps.Keys(categories)) {
		fmt.Fprintf(w, "  %-20s %10s\n", k, humanize.Comma(int64(categories[k])))
	}

	tbl := c.Tables()
	fmt.Fprintln(w, "\nTables:")
	counts := []struct {
		name string
		n    int
	}{
		{corpus.TableEntries, len(tbl.Entries)},
		{corpus.TableOriginalTriples, len(tbl.OriginalTriples)},
		{corpus.TableModifiedTriples, len(tbl.ModifiedTriples)},
		{corpus.TableLexicalizations, len(tbl.Lexicalizations)},
	}
	for _, v := range counts {
		fmt.Fprintf(w, "  %-20s %10s\n", v.name, humanize.Comma(int64(v.n)))
	}
}
