package corpus

import (
	"fmt"
	"strings"
)

// NotFound is the template of a delexicalized lexicalization whose
// <template> tag is missing or empty.
const NotFound = "NOT-FOUND"

// Triple is a subject-predicate-object fact.
// Parts are nil when the text has fewer than three '|'-separated parts.
type Triple struct {
	Text      string  `json:"text"`
	Subject   *string `json:"subject,omitempty"`
	Predicate *string `json:"predicate,omitempty"`
	Object    *string `json:"object,omitempty"`
}

// MakeTriple splits text on '|' and assigns trimmed parts to subject,
// predicate and object in that order. Missing parts stay nil, extra
// parts are ignored.
func MakeTriple(text string) Triple {
	res := Triple{Text: text}
	parts := []**string{&res.Subject, &res.Predicate, &res.Object}
	i := 0
	for part := range strings.SplitSeq(text, "|") {
		if i == len(parts) {
			break
		}
		s := strings.TrimSpace(part)
		*parts[i] = &s
		i++
	}
	return res
}

// Lex is a natural-language verbalization of an entry.
type Lex struct {
	Text    string `json:"text"`
	Comment string `json:"comment"`
	LID     string `json:"lid"`
	// Template exists only for the delexicalized schema.
	Template *string `json:"template,omitempty"`
}

// Entry is one verbalization unit of a release. Entries are values:
// once inserted into a Store they are never modified.
type Entry struct {
	// Idx is the key of the entry, see MakeIdx.
	Idx      string `json:"idx"`
	Dataset  string `json:"dataset"`
	Category string `json:"category"`
	EID      string `json:"eid"`

	// NTriples is the declared number of triples. It is not checked
	// against the length of MTriples.
	NTriples int `json:"ntriples"`

	// Content is the serialized <entry> element.
	Content []byte `json:"-"`

	OTriples []Triple `json:"otriples"`
	MTriples []Triple `json:"mtriples"`
	Lexes    []Lex    `json:"lexes"`

	// EntityMap and DelexMTriples are set only for the delexicalized
	// schema. They are either both nil or both non-nil.
	EntityMap     map[string]string `json:"entity_map,omitempty"`
	DelexMTriples []Triple          `json:"delexicalized_mtriples,omitempty"`
}

// MakeIdx creates the key of an entry.
func MakeIdx(dataset, category string, ntriples int, eid string) string {
	return fmt.Sprintf("%s_%s_%d_%s", dataset, category, ntriples, eid)
}

// Schema reports which schema the entry was built with.
func (e *Entry) Schema() SchemaVersion {
	if e.EntityMap != nil {
		return Delexicalized
	}
	return Plain
}

// Data returns modified triples of the entry.
func (e *Entry) Data() []Triple {
	return e.MTriples
}

// DelexicalizedData returns modified triples with subjects and objects
// resolved through the entity map. It is nil for the plain schema.
func (e *Entry) DelexicalizedData() []Triple {
	return e.DelexMTriples
}

// Texts returns texts of all lexicalizations.
func (e *Entry) Texts() []string {
	res := make([]string, len(e.Lexes))
	for i := range e.Lexes {
		res[i] = e.Lexes[i].Text
	}
	return res
}

// Templates returns templates of all lexicalizations. Lexicalizations
// without a template contribute empty strings.
func (e *Entry) Templates() []string {
	res := make([]string, len(e.Lexes))
	for i := range e.Lexes {
		if tmpl := e.Lexes[i].Template; tmpl != nil {
			res[i] = *tmpl
		}
	}
	return res
}

// DelexicalizeMap inverts the entity map: surface form -> placeholder.
// It is nil for the plain schema.
func (e *Entry) DelexicalizeMap() map[string]string {
	if e.EntityMap == nil {
		return nil
	}
	res := make(map[string]string, len(e.EntityMap))
	for k, v := range e.EntityMap {
		res[v] = k
	}
	return res
}
