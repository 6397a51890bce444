package iorelease

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/webnlg/pkg/errcode"
)

// ReleasesConfigError creates an error for when releases.yaml
// cannot be loaded.
func ReleasesConfigError(path string, err error) error {
	msg := `Cannot load releases configuration

<em>Configuration file:</em> %s

<em>Possible causes:</em>
  - File does not exist
  - Invalid YAML format
  - Permission denied

<em>How to fix:</em>
  1. Check if file exists: <em>ls -l %s</em>
  2. Validate YAML syntax
  3. Remove the file, the default one is created on the next run`

	vars := []any{path, path}

	return &gn.Error{
		Code: errcode.ReleasesConfigError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to load releases config: %w", err),
	}
}

// DatasetNotFoundError creates an error for a registered dataset without
// a directory under the data dir.
func DatasetNotFoundError(release, dataset, dir string) error {
	msg := `Dataset <em>%s</em> of release <em>%s</em> is not found

<em>Expected directory:</em> %s

<em>How to fix:</em>
  1. Download the release: <em>webnlg releases</em> shows its URL
  2. Put XML files of the dataset into the directory
  3. Or point <em>corpus.data_dir</em> to your copy of releases`

	vars := []any{dataset, release, dir}

	return &gn.Error{
		Code: errcode.DatasetNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("dataset directory %s of %s/%s does not exist",
			dir, release, dataset),
	}
}
