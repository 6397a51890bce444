package ioexport

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/webnlg/pkg/errcode"
)

// ExportFormatError creates an error for an unsupported export format.
func ExportFormatError(format string) error {
	msg := `Unknown export format <em>%s</em>

<em>Supported formats:</em> csv, tsv, json, sqlite`
	vars := []any{format}

	return &gn.Error{
		Code: errcode.ExportFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown export format '%s'", format),
	}
}

// ExportWriteError creates an error for a table file that cannot be
// written.
func ExportWriteError(path string, err error) error {
	msg := "Cannot write <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.ExportWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write %s: %w", path, err),
	}
}

// ExportSQLiteError creates an error for a failed SQLite export.
func ExportSQLiteError(path string, err error) error {
	msg := `Cannot export tables to SQLite database <em>%s</em>

<em>How to fix:</em>
  1. Remove the database if it exists already
  2. Check permissions of the output directory`
	vars := []any{path}

	return &gn.Error{
		Code: errcode.ExportSQLiteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("sqlite export to %s: %w", path, err),
	}
}
