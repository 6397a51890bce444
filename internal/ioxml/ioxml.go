// Package ioxml decodes WebNLG corpus files.
package ioxml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gnames/webnlg/pkg/corpus"
)

type ioxml struct{}

// New creates a corpus.Reader for WebNLG XML files.
func New() corpus.Reader {
	return ioxml{}
}

// ReadFile decodes all <entry> elements of a file.
func (ioxml) ReadFile(path string) ([]corpus.RawEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, CorpusFileReadError(path, err)
	}
	defer f.Close()

	res, err := Decode(f)
	if err != nil {
		return nil, CorpusParseError(path, err)
	}
	return res, nil
}

// Decode streams <entry> elements found at any depth of the document
// and returns them in document order.
func Decode(r io.Reader) ([]corpus.RawEntry, error) {
	var res []corpus.RawEntry
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "entry" {
			continue
		}
		se = se.Copy()

		var ex entryXML
		if err = dec.DecodeElement(&ex, &se); err != nil {
			return nil, err
		}

		raw, err := ex.toRaw(se)
		if err != nil {
			return nil, err
		}
		res = append(res, raw)
	}
	return res, nil
}

type entryXML struct {
	Size     string `xml:"size,attr"`
	Category string `xml:"category,attr"`
	EID      string `xml:"eid,attr"`

	OTripleSets []otripleSetXML `xml:"originaltripleset"`
	MTripleSets []mtripleSetXML `xml:"modifiedtripleset"`
	Lexes       []lexXML        `xml:"lex"`
	EntityMap   *entityMapXML   `xml:"entitymap"`

	Inner []byte `xml:",innerxml"`
}

type otripleSetXML struct {
	Triples []string `xml:"otriple"`
}

type mtripleSetXML struct {
	Triples []string `xml:"mtriple"`
}

type lexXML struct {
	Comment  string  `xml:"comment,attr"`
	LID      string  `xml:"lid,attr"`
	Chardata string  `xml:",chardata"`
	Text     *string `xml:"text"`
	Template *string `xml:"template"`
}

type entityMapXML struct {
	Entities []string `xml:"entity"`
}

func (ex entryXML) toRaw(se xml.StartElement) (corpus.RawEntry, error) {
	var res corpus.RawEntry

	size, err := strconv.Atoi(strings.TrimSpace(ex.Size))
	if err != nil {
		return res, fmt.Errorf("entry %s (%s): invalid size '%s': %w",
			ex.EID, ex.Category, ex.Size, err)
	}

	content, err := serialize(se, ex.Inner)
	if err != nil {
		return res, err
	}

	res = corpus.RawEntry{
		Size:     size,
		Category: ex.Category,
		EID:      ex.EID,
		Content:  content,
		Lexes:    make([]corpus.RawLex, len(ex.Lexes)),
	}

	// only the first tripleset is used, later ones are alternatives
	if len(ex.OTripleSets) > 0 {
		res.OTriples = ex.OTripleSets[0].Triples
	}
	if len(ex.MTripleSets) > 0 {
		res.MTriples = ex.MTripleSets[0].Triples
	}

	for i, l := range ex.Lexes {
		res.Lexes[i] = corpus.RawLex{
			Comment:  l.Comment,
			LID:      l.LID,
			Chardata: l.Chardata,
			Text:     l.Text,
			Template: l.Template,
		}
	}

	if ex.EntityMap != nil {
		res.HasEntityMap = true
		res.Entities = ex.EntityMap.Entities
	}

	return res, nil
}

// serialize restores the <entry> element from its start tag and inner
// XML.
func serialize(se xml.StartElement, inner []byte) ([]byte, error) {
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	if err := enc.EncodeToken(se); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	buf.Write(inner)
	if err := enc.EncodeToken(se.End()); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
