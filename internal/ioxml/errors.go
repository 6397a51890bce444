package ioxml

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/webnlg/pkg/errcode"
)

// CorpusFileReadError creates an error for a corpus file that cannot be
// opened.
func CorpusFileReadError(path string, err error) error {
	msg := "Cannot read corpus file <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.CorpusFileReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot open %s: %w", path, err),
	}
}

// CorpusParseError creates an error for a corpus file with broken XML or
// entry attributes.
func CorpusParseError(path string, err error) error {
	msg := `Cannot parse corpus file <em>%s</em>

<em>Details:</em> %s`
	vars := []any{path, err.Error()}

	return &gn.Error{
		Code: errcode.CorpusParseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot parse %s: %w", path, err),
	}
}
