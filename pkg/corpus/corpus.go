// Package corpus keeps a WebNLG release in memory and provides filtering,
// seeded sampling and a tabular projection of its entries.
//
// This is a pure package: it never touches the file system. Corpus files are
// located by a Resolver and decoded by a Reader, both supplied by the
// caller (see internal/iorelease and internal/ioxml).
//
// The package is organized leaf-first:
//   - Record builder (builder.go) turns a RawEntry into an Entry.
//   - Store (store.go) is an append-only ordered collection of entries.
//   - Query (query.go) is a conjunction of field clauses.
//   - Corpus (view.go) wraps a release and a Store.
//   - Tables (tables.go) flattens a Corpus into four relational tables.
package corpus

// Resolver locates corpus files of a release.
type Resolver interface {
	// Datasets returns dataset names of a release in load order.
	// An unregistered release results in UnknownReleaseError.
	Datasets(release string) ([]string, error)

	// Files returns paths to XML corpus files of a release dataset in
	// load order.
	Files(release, dataset string) ([]string, error)

	// Schema decides the schema of a corpus file of a release.
	Schema(release, path string) SchemaVersion
}

// Reader decodes one corpus file into raw entries.
type Reader interface {
	// ReadFile returns entries of a file in document order.
	ReadFile(path string) ([]RawEntry, error)
}

// RawEntry is an <entry> element as the XML reader sees it, before
// normalization.
type RawEntry struct {
	// Size is the declared number of triples (the 'size' attribute).
	Size int

	// Category and EID are taken from entry attributes.
	Category string
	EID      string

	// Content is the serialized <entry> element.
	Content []byte

	// OTriples and MTriples are raw texts of <otriple> and <mtriple>
	// elements.
	OTriples []string
	MTriples []string

	Lexes []RawLex

	// HasEntityMap is true when the entry contains an <entitymap> element.
	HasEntityMap bool
	// Entities are raw texts of <entity> elements, like "ENTITY-1 | Paris".
	Entities []string
}

// RawLex is a <lex> element.
type RawLex struct {
	Comment string
	LID     string
	// Chardata is the character data directly inside <lex>.
	Chardata string
	// Text is the content of a <text> child, nil if there is none.
	Text *string
	// Template is the content of a <template> child, nil if there is none.
	Template *string
}
