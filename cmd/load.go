package cmd

import (
	"github.com/gnames/gn"
	"github.com/gnames/webnlg/internal/iorelease"
	"github.com/gnames/webnlg/internal/ioxml"
	"github.com/gnames/webnlg/pkg/corpus"
	"github.com/gnames/webnlg/pkg/releases"
)

// loadRegistry reads releases.yaml from the config directory.
func loadRegistry() (*releases.Config, error) {
	return iorelease.New(cfg).Load()
}

// loadCorpus reads a registered release from the data dir.
func loadCorpus(release string) (*corpus.Corpus, error) {
	reg, err := loadRegistry()
	if err != nil {
		return nil, err
	}

	res := iorelease.NewResolver(cfg.CorpusDataDir(), reg)
	var rd corpus.Reader = ioxml.New()
	if cfg.Corpus.WithProgress {
		pr, err := newProgressReader(rd, res, release)
		if err != nil {
			return nil, err
		}
		defer pr.finish()
		rd = pr
	}

	gn.Info("Loading release <em>%s</em> from %s", release, cfg.CorpusDataDir())
	return corpus.Load(release, res, rd)
}
