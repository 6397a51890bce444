package ioexport

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/webnlg/pkg/corpus"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGo)
)

// ExportSQLite writes all tables into a new SQLite database. Numeric
// columns keep the INTEGER type, absent triple parts become NULL.
// A failed export leaves no database behind.
func ExportSQLite(tbl *corpus.Tables, path string) error {
	return exportSQLite(tbl, path, insertAll)
}

func exportSQLite(
	tbl *corpus.Tables,
	path string,
	fill func(*sql.Tx, *corpus.Tables) error,
) error {
	if _, err := os.Stat(path); err == nil {
		return ExportSQLiteError(path, fmt.Errorf("database already exists"))
	}

	err := writeSQLite(tbl, path, fill)
	if err != nil {
		if rmErr := os.Remove(path); rmErr != nil && !os.IsNotExist(rmErr) {
			slog.Error("Cannot remove incomplete database",
				"path", path,
				"error", rmErr,
			)
		}
		return ExportSQLiteError(path, err)
	}

	slog.Info("Tables exported to SQLite",
		"path", path,
		"entries", len(tbl.Entries),
		"lexicalizations", len(tbl.Lexicalizations),
	)
	return nil
}

// writeSQLite creates the schema and fills the tables in one
// transaction.
func writeSQLite(
	tbl *corpus.Tables,
	path string,
	fill func(*sql.Tx, *corpus.Tables) error,
) (err error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); err == nil {
			err = cerr
		}
	}()

	if err = createSchema(db); err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if err = fill(tx, tbl); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func createSchema(db *sql.DB) error {
	triples := `(
  idx TEXT NOT NULL,
  dataset TEXT NOT NULL,
  category TEXT NOT NULL,
  text TEXT NOT NULL,
  subject TEXT,
  predicate TEXT,
  object TEXT
)`
	stmts := []string{
		`CREATE TABLE ` + corpus.TableEntries + ` (
  idx TEXT NOT NULL,
  dataset TEXT NOT NULL,
  category TEXT NOT NULL,
  eid TEXT NOT NULL,
  ntriples INTEGER NOT NULL,
  content TEXT NOT NULL
)`,
		`CREATE TABLE ` + corpus.TableOriginalTriples + ` ` + triples,
		`CREATE TABLE ` + corpus.TableModifiedTriples + ` ` + triples,
		`CREATE TABLE ` + corpus.TableLexicalizations + ` (
  idx TEXT NOT NULL,
  dataset TEXT NOT NULL,
  category TEXT NOT NULL,
  text TEXT NOT NULL,
  comment TEXT NOT NULL,
  lid TEXT NOT NULL
)`,
	}
	for _, tbl := range []string{
		corpus.TableEntries, corpus.TableOriginalTriples,
		corpus.TableModifiedTriples, corpus.TableLexicalizations,
	} {
		stmts = append(stmts, fmt.Sprintf(
			"CREATE INDEX idx_%s_idx ON %s (idx)", tbl, tbl,
		))
	}

	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

func insertAll(tx *sql.Tx, tbl *corpus.Tables) error {
	err := insert(tx, corpus.TableEntries, corpus.EntryColumns, tbl.Entries,
		func(r corpus.EntryRow) []any {
			return []any{r.Idx, r.Dataset, r.Category, r.EID, r.NTriples, r.Content}
		})
	if err != nil {
		return err
	}

	tripleArgs := func(r corpus.TripleRow) []any {
		return []any{
			r.Idx, r.Dataset, r.Category, r.Text,
			nullable(r.Subject), nullable(r.Predicate), nullable(r.Object),
		}
	}
	err = insert(tx, corpus.TableOriginalTriples, corpus.TripleColumns,
		tbl.OriginalTriples, tripleArgs)
	if err != nil {
		return err
	}
	err = insert(tx, corpus.TableModifiedTriples, corpus.TripleColumns,
		tbl.ModifiedTriples, tripleArgs)
	if err != nil {
		return err
	}

	return insert(tx, corpus.TableLexicalizations, corpus.LexColumns,
		tbl.Lexicalizations, func(r corpus.LexRow) []any {
			return []any{r.Idx, r.Dataset, r.Category, r.Text, r.Comment, r.LID}
		})
}

func insert[T any](
	tx *sql.Tx,
	table string,
	columns []string,
	rows []T,
	args func(T) []any,
) error {
	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table,
		strings.Join(columns, ", "),
		strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", "),
	)
	stmt, err := tx.Prepare(q)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err = stmt.Exec(args(r)...); err != nil {
			return fmt.Errorf("insert into %s: %w", table, err)
		}
	}
	return nil
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
