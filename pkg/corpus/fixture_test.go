package corpus

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

// rawPlain creates a plain-schema raw entry with n modified triples.
func rawPlain(eid, category string, n int) RawEntry {
	res := RawEntry{
		Size:     n,
		Category: category,
		EID:      eid,
		Content:  []byte(fmt.Sprintf(`<entry eid="%s"></entry>`, eid)),
	}
	for i := range n {
		res.OTriples = append(res.OTriples,
			fmt.Sprintf("S%d | p%d | O%d", i, i, i))
		res.MTriples = append(res.MTriples,
			fmt.Sprintf("S%d | p%d | O%d", i, i, i))
	}
	res.Lexes = []RawLex{
		{Comment: "good", LID: "Id1", Chardata: "First text of " + eid},
		{Comment: "good", LID: "Id2", Chardata: "Second text of " + eid},
	}
	return res
}

// rawDelex creates a delexicalized raw entry with one modified triple.
func rawDelex(eid, category string) RawEntry {
	return RawEntry{
		Size:     1,
		Category: category,
		EID:      eid,
		Content:  []byte(`<entry/>`),
		OTriples: []string{"Paris | capitalOf | France"},
		MTriples: []string{"ENTITY-1 | capitalOf | ENTITY-2"},
		Lexes: []RawLex{
			{
				Comment:  "good",
				LID:      "Id1",
				Text:     strPtr("Paris is the capital of France."),
				Template: strPtr("ENTITY-1 is the capital of ENTITY-2."),
			},
			{
				Comment: "good",
				LID:     "Id2",
				Text:    strPtr("France's capital is Paris."),
			},
		},
		HasEntityMap: true,
		Entities:     []string{"ENTITY-1 | Paris", "ENTITY-2 | France"},
	}
}

// testCorpus builds a small corpus with two datasets and three
// categories:
//
//	train: Airport x3 (1, 2, 3 triples), Astronaut x2 (1, 2)
//	dev:   Airport x1 (2), Food x2 (1, 3)
func testCorpus(t *testing.T) *Corpus {
	t.Helper()
	data := []struct {
		dataset string
		raws    []RawEntry
	}{
		{"train", []RawEntry{
			rawPlain("Id1", "Airport", 1),
			rawPlain("Id2", "Airport", 2),
			rawPlain("Id3", "Airport", 3),
			rawPlain("Id4", "Astronaut", 1),
			rawPlain("Id5", "Astronaut", 2),
		}},
		{"dev", []RawEntry{
			rawPlain("Id1", "Airport", 2),
			rawPlain("Id2", "Food", 1),
			rawPlain("Id3", "Food", 3),
		}},
	}

	store := NewStore()
	for _, d := range data {
		entries, err := BuildEntries(d.raws, d.dataset, Plain)
		require.NoError(t, err)
		store.InsertAll(entries...)
	}
	return New("v1.0", store)
}

// bigCorpus builds a corpus of n Airport entries.
func bigCorpus(t *testing.T, n int) *Corpus {
	t.Helper()
	store := NewStore()
	for i := range n {
		e, err := BuildEntry(
			rawPlain(fmt.Sprintf("Id%d", i+1), "Airport", 1), "train", Plain,
		)
		require.NoError(t, err)
		store.InsertAll(e)
	}
	return New("v1.0", store)
}

type fakeResolver struct {
	datasets []string
	files    map[string][]string
}

func (r fakeResolver) Datasets(release string) ([]string, error) {
	if release != "v1.2" && release != "v1.0" {
		return nil, UnknownReleaseError(release, []string{"v1.0", "v1.2"})
	}
	return r.datasets, nil
}

func (r fakeResolver) Files(_, dataset string) ([]string, error) {
	return r.files[dataset], nil
}

func (r fakeResolver) Schema(_, path string) SchemaVersion {
	s, _ := SchemaFromPath(path)
	return s
}

type fakeReader map[string][]RawEntry

func (r fakeReader) ReadFile(path string) ([]RawEntry, error) {
	return r[path], nil
}
