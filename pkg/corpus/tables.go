package corpus

import (
	"iter"
	"strconv"
)

// Table names, used for exported files and SQLite tables.
const (
	TableEntries         = "entries"
	TableOriginalTriples = "original_triples"
	TableModifiedTriples = "modified_triples"
	TableLexicalizations = "lexicalizations"
)

var (
	// EntryColumns are column names of the entries table.
	EntryColumns = []string{
		"idx", "dataset", "category", "eid", "ntriples", "content",
	}
	// TripleColumns are column names of both triples tables.
	TripleColumns = []string{
		"idx", "dataset", "category", "text", "subject", "predicate", "object",
	}
	// LexColumns are column names of the lexicalizations table.
	LexColumns = []string{
		"idx", "dataset", "category", "text", "comment", "lid",
	}
)

// EntryRow is a row of the entries table.
type EntryRow struct {
	Idx      string `json:"idx"`
	Dataset  string `json:"dataset"`
	Category string `json:"category"`
	EID      string `json:"eid"`
	NTriples int    `json:"ntriples"`
	Content  string `json:"content"`
}

// Values returns cells in EntryColumns order.
func (r EntryRow) Values() []string {
	return []string{
		r.Idx, r.Dataset, r.Category, r.EID,
		strconv.Itoa(r.NTriples), r.Content,
	}
}

// TripleRow is a row of the original or modified triples table. Absent
// triple parts stay nil.
type TripleRow struct {
	Idx       string  `json:"idx"`
	Dataset   string  `json:"dataset"`
	Category  string  `json:"category"`
	Text      string  `json:"text"`
	Subject   *string `json:"subject"`
	Predicate *string `json:"predicate"`
	Object    *string `json:"object"`
}

// Values returns cells in TripleColumns order, absent parts are empty.
func (r TripleRow) Values() []string {
	return []string{
		r.Idx, r.Dataset, r.Category, r.Text,
		deref(r.Subject), deref(r.Predicate), deref(r.Object),
	}
}

// LexRow is a row of the lexicalizations table.
type LexRow struct {
	Idx      string `json:"idx"`
	Dataset  string `json:"dataset"`
	Category string `json:"category"`
	Text     string `json:"text"`
	Comment  string `json:"comment"`
	LID      string `json:"lid"`
}

// Values returns cells in LexColumns order.
func (r LexRow) Values() []string {
	return []string{r.Idx, r.Dataset, r.Category, r.Text, r.Comment, r.LID}
}

// Tables is the relational projection of a corpus.
type Tables struct {
	Entries         []EntryRow  `json:"entries"`
	OriginalTriples []TripleRow `json:"original_triples"`
	ModifiedTriples []TripleRow `json:"modified_triples"`
	Lexicalizations []LexRow    `json:"lexicalizations"`
}

// Project flattens entries into four tables in one pass. Rows follow
// entry order, then the order of the nested collection.
func Project(entries iter.Seq[Entry]) *Tables {
	res := &Tables{
		Entries:         []EntryRow{},
		OriginalTriples: []TripleRow{},
		ModifiedTriples: []TripleRow{},
		Lexicalizations: []LexRow{},
	}

	for e := range entries {
		res.Entries = append(res.Entries, EntryRow{
			Idx:      e.Idx,
			Dataset:  e.Dataset,
			Category: e.Category,
			EID:      e.EID,
			NTriples: e.NTriples,
			Content:  string(e.Content),
		})
		res.OriginalTriples = appendTriples(res.OriginalTriples, &e, e.OTriples)
		res.ModifiedTriples = appendTriples(res.ModifiedTriples, &e, e.MTriples)
		for _, l := range e.Lexes {
			res.Lexicalizations = append(res.Lexicalizations, LexRow{
				Idx:      e.Idx,
				Dataset:  e.Dataset,
				Category: e.Category,
				Text:     l.Text,
				Comment:  l.Comment,
				LID:      l.LID,
			})
		}
	}
	return res
}

// Tables returns the tabular projection of the corpus. It is computed on
// the first call and cached for the lifetime of the Corpus; later changes
// of the underlying Store are not reflected.
func (c *Corpus) Tables() *Tables {
	c.tablesOnce.Do(func() {
		c.tables = Project(c.store.All())
	})
	return c.tables
}

func appendTriples(rows []TripleRow, e *Entry, triples []Triple) []TripleRow {
	for _, t := range triples {
		rows = append(rows, TripleRow{
			Idx:       e.Idx,
			Dataset:   e.Dataset,
			Category:  e.Category,
			Text:      t.Text,
			Subject:   t.Subject,
			Predicate: t.Predicate,
			Object:    t.Object,
		})
	}
	return rows
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
