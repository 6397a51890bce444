package corpus

import (
	"fmt"
	"slices"
	"strings"
)

// String renders the entry for reading in a terminal: header, modified
// triples, lexicalizations with their templates, and the entity map of
// delexicalized entries.
func (e Entry) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Entry info: Category=%s eid=%s idx=%s\n\n",
		e.Category, e.EID, e.Idx)

	b.WriteString("\tModified Triples:\n\n")
	for _, t := range e.MTriples {
		b.WriteString(t.Text + "\n")
	}

	b.WriteString("\n\tLexicalizations:\n\n")
	for _, l := range e.Lexes {
		b.WriteString(l.Text + "\n")
		if l.Template != nil {
			b.WriteString(*l.Template + "\n")
		}
		b.WriteString("\n")
	}

	if e.EntityMap != nil {
		b.WriteString("\tEntity map:\n\n")
		keys := make([]string, 0, len(e.EntityMap))
		for k := range e.EntityMap {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "%s : %s\n", k, e.EntityMap[k])
		}
	}

	return b.String()
}
