// Package ioexport writes the tabular projection of a corpus to files
// for analysis outside of webnlg.
package ioexport

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnames/gnfmt"
	"github.com/gnames/webnlg/pkg/corpus"
)

// Format is an export format.
type Format int

const (
	FormatNone Format = iota
	CSV
	TSV
	JSON
	SQLite
)

var formats = map[string]Format{
	"csv":    CSV,
	"tsv":    TSV,
	"json":   JSON,
	"sqlite": SQLite,
}

// NewFormat converts a format name to Format.
func NewFormat(s string) (Format, error) {
	if f, ok := formats[strings.ToLower(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	return FormatNone, ExportFormatError(s)
}

func (f Format) String() string {
	for k, v := range formats {
		if v == f {
			return k
		}
	}
	return "none"
}

// Ext returns the file extension of the format.
func (f Format) Ext() string {
	return "." + f.String()
}

type table struct {
	name    string
	columns []string
	rows    [][]string
	data    any
}

func tables(tbl *corpus.Tables) []table {
	return []table{
		{corpus.TableEntries, corpus.EntryColumns, rows(tbl.Entries), tbl.Entries},
		{corpus.TableOriginalTriples, corpus.TripleColumns, rows(tbl.OriginalTriples), tbl.OriginalTriples},
		{corpus.TableModifiedTriples, corpus.TripleColumns, rows(tbl.ModifiedTriples), tbl.ModifiedTriples},
		{corpus.TableLexicalizations, corpus.LexColumns, rows(tbl.Lexicalizations), tbl.Lexicalizations},
	}
}

func rows[T interface{ Values() []string }](data []T) [][]string {
	res := make([][]string, len(data))
	for i := range data {
		res[i] = data[i].Values()
	}
	return res
}

// Export writes every table into its own file in dir and returns paths
// of created files. For SQLite all tables go to one database file.
// Existing files are overwritten, an existing database is not.
func Export(tbl *corpus.Tables, dir string, f Format) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, ExportWriteError(dir, err)
	}

	if f == SQLite {
		path := filepath.Join(dir, "webnlg"+f.Ext())
		if err := ExportSQLite(tbl, path); err != nil {
			return nil, err
		}
		return []string{path}, nil
	}

	var res []string
	for _, t := range tables(tbl) {
		path := filepath.Join(dir, t.name+f.Ext())
		var err error
		switch f {
		case CSV:
			err = writeDelimited(path, ',', t)
		case TSV:
			err = writeDelimited(path, '\t', t)
		case JSON:
			err = writeJSON(path, t)
		default:
			return nil, ExportFormatError(f.String())
		}
		if err != nil {
			return nil, ExportWriteError(path, err)
		}
		slog.Info("Table exported",
			"table", t.name,
			"format", f.String(),
			"rows", len(t.rows),
			"path", path,
		)
		res = append(res, path)
	}
	return res, nil
}

func writeDelimited(path string, sep rune, t table) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(file)
	if _, err = w.WriteString(gnfmt.ToCSV(t.columns, sep) + "\n"); err != nil {
		return err
	}
	for _, row := range t.rows {
		if _, err = w.WriteString(gnfmt.ToCSV(row, sep) + "\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}

func writeJSON(path string, t table) error {
	enc := gnfmt.GNjson{Pretty: true}
	data, err := enc.Encode(t.data)
	if err != nil {
		return fmt.Errorf("cannot encode %s: %w", t.name, err)
	}
	return os.WriteFile(path, data, 0644)
}
