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
	"github.com/spf13/cobra"
)

// getShowCmd returns the show command.
func getShowCmd() *cobra.Command {
	var (
		flags filterFlags
		text  bool
	)

	showCmd := &cobra.Command{
		Use:   "show IDX",
		Short: "Print an entry by its idx",
		Long: `Print an entry of a release by its idx.

The idx has the form <dataset>_<category>_<ntriples>_<eid>.
An unknown idx is reported, it is not an error.

Examples:
  webnlg show -r v1.5 train_Airport_1_Id1
  webnlg show -r v1 dev_Food_3_Id20 --text`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runShow(cmd, flags.releaseID(), args[0], text)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addReleaseFlag(showCmd, &flags)
	showCmd.Flags().BoolVarP(&text, "text", "t", false, "print as text instead of JSON")
	return showCmd
}

func runShow(cmd *cobra.Command, release, idx string, text bool) error {
	c, err := loadCorpus(release)
	if err != nil {
		return err
	}

	e, ok := c.Get(idx)
	if !ok {
		gn.Warn("Entry <em>%s</em> is not found in release <em>%s</em>", idx, release)
		return nil
	}
	return printEntry(cmd.OutOrStdout(), e, text)
}
