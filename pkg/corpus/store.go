package corpus

import (
	"iter"
)

// Store is an append-only ordered collection of entries of one release.
// It has no indexes: search is a linear scan.
//
// Store is not safe for concurrent writes. It is filled once during load
// or subset and only read afterwards.
type Store struct {
	entries []Entry
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{}
}

// InsertAll appends entries preserving their order. Uniqueness of Idx is
// not enforced here.
func (s *Store) InsertAll(entries ...Entry) {
	s.entries = append(s.entries, entries...)
}

// Search returns entries matching the query, in store order.
// A query without clauses results in NoFilterSpecifiedError.
func (s *Store) Search(q Query) ([]Entry, error) {
	if q.IsEmpty() {
		return nil, NoFilterSpecifiedError("search")
	}

	var res []Entry
	for i := range s.entries {
		if q.Matches(&s.entries[i]) {
			res = append(res, s.entries[i])
		}
	}
	return res, nil
}

// First returns the first entry matching the query.
func (s *Store) First(q Query) (Entry, bool) {
	for i := range s.entries {
		if q.Matches(&s.entries[i]) {
			return s.entries[i], true
		}
	}
	return Entry{}, false
}

// All iterates over all entries in store order. The sequence can be
// ranged over many times.
func (s *Store) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for i := range s.entries {
			if !yield(s.entries[i]) {
				return
			}
		}
	}
}

// Count returns the number of entries.
func (s *Store) Count() int {
	return len(s.entries)
}
