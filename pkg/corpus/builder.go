package corpus

import (
	"strings"
)

// BuildEntry normalizes a raw entry of a dataset according to the schema
// of its file.
//
// For the Delexicalized schema the entity map is parsed and modified
// triples are resolved through it; a placeholder missing from the map is
// reported with MissingKeyError. There is no lenient mode.
func BuildEntry(
	raw RawEntry,
	dataset string,
	schema SchemaVersion,
) (Entry, error) {
	res := Entry{
		Idx:      MakeIdx(dataset, raw.Category, raw.Size, raw.EID),
		Dataset:  dataset,
		Category: raw.Category,
		EID:      raw.EID,
		NTriples: raw.Size,
		Content:  raw.Content,
		OTriples: makeTriples(raw.OTriples),
		MTriples: makeTriples(raw.MTriples),
		Lexes:    make([]Lex, len(raw.Lexes)),
	}

	if schema != Delexicalized {
		for i, l := range raw.Lexes {
			res.Lexes[i] = Lex{
				Text:    l.Chardata,
				Comment: l.Comment,
				LID:     l.LID,
			}
		}
		return res, nil
	}

	if !raw.HasEntityMap {
		return Entry{}, MissingEntityMapError(res.Idx)
	}

	for i, l := range raw.Lexes {
		res.Lexes[i] = makeDelexLex(l)
	}

	var err error
	res.EntityMap, err = makeEntityMap(res.Idx, raw.Entities)
	if err != nil {
		return Entry{}, err
	}

	res.DelexMTriples, err = delexicalize(
		res.Idx, res.MTriples, res.EntityMap,
	)
	if err != nil {
		return Entry{}, err
	}

	return res, nil
}

// BuildEntries normalizes all raw entries of one file. The first failing
// entry aborts the whole file.
func BuildEntries(
	raws []RawEntry,
	dataset string,
	schema SchemaVersion,
) ([]Entry, error) {
	res := make([]Entry, 0, len(raws))
	for i := range raws {
		e, err := BuildEntry(raws[i], dataset, schema)
		if err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, nil
}

func makeTriples(texts []string) []Triple {
	res := make([]Triple, len(texts))
	for i, t := range texts {
		res[i] = MakeTriple(t)
	}
	return res
}

func makeDelexLex(l RawLex) Lex {
	var text string
	if l.Text != nil {
		text = *l.Text
	}
	tmpl := NotFound
	if l.Template != nil && *l.Template != "" {
		tmpl = *l.Template
	}
	return Lex{
		Text:     text,
		Comment:  l.Comment,
		LID:      l.LID,
		Template: &tmpl,
	}
}

// makeEntityMap parses lines like "ENTITY-1 | Paris". The line is split
// once, so the surface form may contain '|'.
func makeEntityMap(idx string, lines []string) (map[string]string, error) {
	res := make(map[string]string, len(lines))
	for _, line := range lines {
		k, v, ok := strings.Cut(line, "|")
		if !ok {
			return nil, EntityFormatError(idx, line)
		}
		res[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return res, nil
}

// delexicalize resolves subject and object of every triple through the
// entity map. Predicates are kept as they are.
func delexicalize(
	idx string,
	triples []Triple,
	entityMap map[string]string,
) ([]Triple, error) {
	res := make([]Triple, len(triples))
	for i, t := range triples {
		subj, err := resolve(idx, "subject", t.Subject, entityMap)
		if err != nil {
			return nil, err
		}
		obj, err := resolve(idx, "object", t.Object, entityMap)
		if err != nil {
			return nil, err
		}

		var pred string
		if t.Predicate != nil {
			pred = *t.Predicate
		}
		res[i] = Triple{
			Text:      strings.Join([]string{subj, pred, obj}, " | "),
			Subject:   &subj,
			Predicate: t.Predicate,
			Object:    &obj,
		}
	}
	return res, nil
}

func resolve(
	idx, field string,
	key *string,
	entityMap map[string]string,
) (string, error) {
	if key == nil {
		return "", MissingKeyError(idx, field, "")
	}
	res, ok := entityMap[*key]
	if !ok {
		return "", MissingKeyError(idx, field, *key)
	}
	return res, nil
}
