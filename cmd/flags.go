package cmd

import (
	"github.com/gnames/webnlg/pkg/corpus"
	"github.com/spf13/cobra"
)

// filterFlags keeps values of flags shared by commands that narrow
// a corpus.
type filterFlags struct {
	release    string
	categories []string
	ntriples   []int
	datasets   []string
}

func addReleaseFlag(cmd *cobra.Command, f *filterFlags) {
	cmd.Flags().StringVarP(
		&f.release, "release", "r", "",
		"release identifier (default from config)",
	)
}

func addFilterFlags(cmd *cobra.Command, f *filterFlags) {
	addReleaseFlag(cmd, f)
	cmd.Flags().StringSliceVarP(
		&f.categories, "categories", "c", nil,
		"categories to keep, e.g. Airport,Food",
	)
	cmd.Flags().IntSliceVarP(
		&f.ntriples, "ntriples", "n", nil,
		"numbers of triples to keep, e.g. 1,2",
	)
	cmd.Flags().StringSliceVarP(
		&f.datasets, "datasets", "D", nil,
		"datasets to keep, e.g. train,dev",
	)
}

// releaseID returns the release from the flag or from the config.
func (f *filterFlags) releaseID() string {
	if f.release != "" {
		return f.release
	}
	return cfg.Corpus.Release
}

func (f *filterFlags) filter() corpus.Filter {
	return corpus.Filter{
		NTriples:   f.ntriples,
		Categories: f.categories,
		Datasets:   f.datasets,
	}
}

func (f *filterFlags) hasFilter() bool {
	return !f.filter().Query().IsEmpty()
}

// narrow returns a subset of the corpus if any filter is set, otherwise
// the corpus itself.
func (f *filterFlags) narrow(c *corpus.Corpus) (*corpus.Corpus, error) {
	if !f.hasFilter() {
		return c, nil
	}
	return c.Subset(f.filter())
}
