package iologger

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/webnlg/pkg/errcode"
)

// CreateLogFileError is returned when a fresh webnlg.log cannot be
// created at the start of a run.
func CreateLogFileError(path string, err error) error {
	return &gn.Error{
		Code: errcode.CreateLogFileError,
		Msg:  "Cannot create log file <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("cannot create log file %s: %w", path, err),
	}
}

// OpenLogFileError is returned when webnlg.log cannot be reopened for
// appending after the configuration is loaded.
func OpenLogFileError(path string, err error) error {
	return &gn.Error{
		Code: errcode.OpenLogFileError,
		Msg:  "Cannot append to log file <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("cannot open log file %s for appending: %w", path, err),
	}
}
