package cmd

import (
	"fmt"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/webnlg/pkg/corpus"
)

// progressReader shows a progress bar of files read by the wrapped
// reader.
type progressReader struct {
	corpus.Reader
	bar *pb.ProgressBar
}

func newProgressReader(
	rd corpus.Reader,
	res corpus.Resolver,
	release string,
) (*progressReader, error) {
	total, err := countFiles(res, release)
	if err != nil {
		return nil, err
	}
	bar := pb.Full.Start(total)
	bar.Set("prefix", fmt.Sprintf("Reading %s: ", release))
	bar.Set(pb.CleanOnFinish, true)
	return &progressReader{Reader: rd, bar: bar}, nil
}

func (p *progressReader) ReadFile(path string) ([]corpus.RawEntry, error) {
	res, err := p.Reader.ReadFile(path)
	p.bar.Increment()
	return res, err
}

func (p *progressReader) finish() {
	p.bar.Finish()
}

func countFiles(res corpus.Resolver, release string) (int, error) {
	datasets, err := res.Datasets(release)
	if err != nil {
		return 0, err
	}
	var total int
	for _, d := range datasets {
		files, err := res.Files(release, d)
		if err != nil {
			return 0, err
		}
		total += len(files)
	}
	return total, nil
}
