package corpus

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Field is an entry field that can be used in a Clause.
type Field string

const (
	FieldIdx      Field = "idx"
	FieldEID      Field = "eid"
	FieldCategory Field = "category"
	FieldDataset  Field = "dataset"
	FieldNTriples Field = "ntriples"
)

// Operator represents a comparison operator of a Clause.
type Operator string

const (
	// OpEqual matches when the field equals the only value.
	OpEqual Operator = "eq"
	// OpIn matches when the field equals one of the values.
	OpIn Operator = "in"
)

// Clause is a single field-level condition.
type Clause struct {
	Field    Field
	Operator Operator
	Values   []string
}

// Eq creates a clause matching entries whose field equals value.
func Eq(f Field, value string) Clause {
	return Clause{Field: f, Operator: OpEqual, Values: []string{value}}
}

// OneOf creates a clause matching entries whose field equals any of
// values. A clause without values matches nothing.
func OneOf(f Field, values ...string) Clause {
	return Clause{Field: f, Operator: OpIn, Values: values}
}

// OneOfInt is OneOf for integer fields like ntriples.
func OneOfInt(f Field, values ...int) Clause {
	vals := make([]string, len(values))
	for i, v := range values {
		vals[i] = strconv.Itoa(v)
	}
	return OneOf(f, vals...)
}

// Matches checks if the entry satisfies the clause.
func (c Clause) Matches(e *Entry) bool {
	val, ok := e.field(c.Field)
	if !ok {
		return false
	}

	switch c.Operator {
	case OpEqual:
		return len(c.Values) == 1 && val == c.Values[0]
	case OpIn:
		return slices.Contains(c.Values, val)
	default:
		return false
	}
}

func (c Clause) String() string {
	if c.Operator == OpEqual && len(c.Values) == 1 {
		return fmt.Sprintf("%s == %s", c.Field, c.Values[0])
	}
	return fmt.Sprintf("%s in [%s]", c.Field, strings.Join(c.Values, ", "))
}

// Query is a conjunction of clauses.
type Query struct {
	Clauses []Clause
}

// And combines clauses into a Query.
func And(clauses ...Clause) Query {
	return Query{Clauses: clauses}
}

// IsEmpty is true for a query without clauses. Such a query cannot be
// used for search.
func (q Query) IsEmpty() bool {
	return len(q.Clauses) == 0
}

// Matches checks clauses left to right and stops at the first one that
// fails. Clause order changes only the amount of work, not the result.
func (q Query) Matches(e *Entry) bool {
	for _, c := range q.Clauses {
		if !c.Matches(e) {
			return false
		}
	}
	return true
}

func (q Query) String() string {
	parts := make([]string, len(q.Clauses))
	for i, c := range q.Clauses {
		parts[i] = c.String()
	}
	return strings.Join(parts, " AND ")
}

func (e *Entry) field(f Field) (string, bool) {
	switch f {
	case FieldIdx:
		return e.Idx, true
	case FieldEID:
		return e.EID, true
	case FieldCategory:
		return e.Category, true
	case FieldDataset:
		return e.Dataset, true
	case FieldNTriples:
		return strconv.Itoa(e.NTriples), true
	default:
		return "", false
	}
}
