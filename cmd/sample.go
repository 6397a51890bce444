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

	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/webnlg/pkg/corpus"
	"github.com/spf13/cobra"
)

// getSampleCmd returns the sample command.
func getSampleCmd() *cobra.Command {
	var (
		flags filterFlags
		eid   string
		idx   string
		seed  int64
		text  bool
	)

	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "Print a random entry of a release",
		Long: `Pick one entry of a release at random and print it as JSON.

With any of --eid, --idx, --categories, --ntriples or --datasets the
entry is picked among matching entries, otherwise among all entries of
the release. The same seed always gives the same entry.

Examples:
  webnlg sample -r v1.5
  webnlg sample -r v1.5 -c Airport -n 3 --seed 42
  webnlg sample -r v1.5 --eid Id12 -D dev --text`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel := corpus.Selector{
				EID:        eid,
				Idx:        idx,
				Categories: flags.categories,
				NTriples:   flags.ntriples,
				Datasets:   flags.datasets,
			}
			if cmd.Flags().Changed("seed") {
				sel.Seed = &seed
			} else {
				sel.Seed = &cfg.Corpus.Seed
			}

			err := runSample(cmd, flags.releaseID(), sel, text)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addFilterFlags(sampleCmd, &flags)
	sampleCmd.Flags().StringVar(&eid, "eid", "", "entry id inside its category file, e.g. Id12")
	sampleCmd.Flags().StringVar(&idx, "idx", "", "entry key, e.g. train_Airport_1_Id12")
	sampleCmd.Flags().Int64VarP(&seed, "seed", "s", 0, "random seed (default from config)")
	sampleCmd.Flags().BoolVarP(&text, "text", "t", false, "print as text instead of JSON")

	return sampleCmd
}

func runSample(
	cmd *cobra.Command,
	release string,
	sel corpus.Selector,
	text bool,
) error {
	c, err := loadCorpus(release)
	if err != nil {
		return err
	}

	e, err := c.Sample(sel)
	if err != nil {
		return err
	}

	return printEntry(cmd.OutOrStdout(), e, text)
}

func printEntry(w io.Writer, e corpus.Entry, text bool) error {
	if text {
		_, err := fmt.Fprint(w, e.String())
		return err
	}

	enc := gnfmt.GNjson{Pretty: true}
	data, err := enc.Encode(e)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
