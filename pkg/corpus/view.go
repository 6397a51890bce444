package corpus

import (
	"iter"
	"math/rand"
	"sync"

	"github.com/gnames/webnlg/pkg/config"
)

// Corpus is a loaded release: its identifier and the Store with its
// entries.
type Corpus struct {
	release string
	store   *Store

	tablesOnce sync.Once
	tables     *Tables
}

// New creates a Corpus from a populated Store.
func New(release string, store *Store) *Corpus {
	return &Corpus{release: release, store: store}
}

// Release returns the release identifier.
func (c *Corpus) Release() string {
	return c.release
}

func (c *Corpus) String() string {
	return c.release
}

// Len returns the number of entries.
func (c *Corpus) Len() int {
	return c.store.Count()
}

// Entries iterates over entries in store order.
func (c *Corpus) Entries() iter.Seq[Entry] {
	return c.store.All()
}

// Get returns the first entry with the given idx. A miss is reported by
// false, it is not an error.
func (c *Corpus) Get(idx string) (Entry, bool) {
	return c.store.First(And(Eq(FieldIdx, idx)))
}

// Filter selects entries for Subset. Empty fields are ignored.
type Filter struct {
	NTriples   []int
	Categories []string
	Datasets   []string
}

// Query converts the filter to a conjunction of its non-empty fields.
func (f Filter) Query() Query {
	var res []Clause
	if len(f.NTriples) > 0 {
		res = append(res, OneOfInt(FieldNTriples, f.NTriples...))
	}
	if len(f.Categories) > 0 {
		res = append(res, OneOf(FieldCategory, f.Categories...))
	}
	if len(f.Datasets) > 0 {
		res = append(res, OneOf(FieldDataset, f.Datasets...))
	}
	return And(res...)
}

// Subset creates a new Corpus of the same release with entries matching
// the filter. The new Corpus has its own Store, the parent is untouched.
// A filter without any non-empty field results in NoFilterSpecifiedError.
func (c *Corpus) Subset(f Filter) (*Corpus, error) {
	q := f.Query()
	if q.IsEmpty() {
		return nil, NoFilterSpecifiedError("subset")
	}

	entries, err := c.store.Search(q)
	if err != nil {
		return nil, err
	}

	store := NewStore()
	store.InsertAll(entries...)
	return New(c.release, store), nil
}

// Selector selects candidates for Sample. Empty fields are ignored.
type Selector struct {
	EID        string
	Idx        string
	Categories []string
	NTriples   []int
	Datasets   []string

	// Seed of the random generator. If nil, config.DefaultSeed is used.
	Seed *int64
}

// Query converts the selector to a conjunction of its non-empty fields.
func (s Selector) Query() Query {
	var res []Clause
	if s.Idx != "" {
		res = append(res, Eq(FieldIdx, s.Idx))
	}
	if s.EID != "" {
		res = append(res, Eq(FieldEID, s.EID))
	}
	if len(s.Categories) > 0 {
		res = append(res, OneOf(FieldCategory, s.Categories...))
	}
	if len(s.NTriples) > 0 {
		res = append(res, OneOfInt(FieldNTriples, s.NTriples...))
	}
	if len(s.Datasets) > 0 {
		res = append(res, OneOf(FieldDataset, s.Datasets...))
	}
	return And(res...)
}

// Sample picks one entry uniformly at random. If the selector has any
// non-empty field, the entry is picked among matching entries, otherwise
// among all entries.
//
// Every call uses its own generator seeded with the selector's seed, so
// the same seed, selector and corpus always give the same entry.
// No candidates result in EmptySelectionError.
func (c *Corpus) Sample(s Selector) (Entry, error) {
	seed := config.DefaultSeed
	if s.Seed != nil {
		seed = *s.Seed
	}
	rng := rand.New(rand.NewSource(seed)) // nolint gosec

	q := s.Query()
	var candidates []Entry
	if q.IsEmpty() {
		candidates = c.store.entries
	} else {
		var err error
		candidates, err = c.store.Search(q)
		if err != nil {
			return Entry{}, err
		}
	}

	if len(candidates) == 0 {
		return Entry{}, EmptySelectionError(q)
	}
	return candidates[rng.Intn(len(candidates))], nil
}
