package corpus

import (
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/webnlg/pkg/errcode"
)

// UnknownReleaseError creates an error for a release identifier that is
// not registered.
func UnknownReleaseError(release string, known []string) error {
	msg := `Release <em>%s</em> is not registered

<em>Known releases:</em> %s

<em>How to fix:</em>
  1. Check release identifier: <em>webnlg releases</em>
  2. Add the release to releases.yaml`

	vars := []any{release, strings.Join(known, ", ")}

	return &gn.Error{
		Code: errcode.UnknownReleaseError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("release '%s' not in %v",
			release, known),
	}
}

// NoFilterSpecifiedError creates an error for a subset or a filtered
// search without any filter.
func NoFilterSpecifiedError(operation string) error {
	msg := `<em>%s</em> needs at least one filter
(ntriples, categories, datasets, eid or idx)`
	vars := []any{operation}

	return &gn.Error{
		Code: errcode.NoFilterSpecifiedError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("%s: at least one filter must be informed",
			operation),
	}
}

// EmptySelectionError creates an error for sampling from an empty set of
// candidates.
func EmptySelectionError(q Query) error {
	msg := `No entries match <em>%s</em>`
	vars := []any{q.String()}

	return &gn.Error{
		Code: errcode.EmptySelectionError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot choose from an empty selection: %s", q),
	}
}

// MissingKeyError creates an error for a modified triple whose subject or
// object is not in the entity map of its entry.
func MissingKeyError(idx, field, key string) error {
	msg := `Entry <em>%s</em>: %s <em>'%s'</em> is not in the entity map`
	vars := []any{idx, field, key}

	return &gn.Error{
		Code: errcode.MissingKeyError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("entry %s: missing key '%s' for %s",
			idx, key, field),
	}
}

// MissingEntityMapError creates an error for an entry of a
// delexicalized file that has no <entitymap> element.
func MissingEntityMapError(idx string) error {
	msg := `Entry <em>%s</em> has no entity map`
	vars := []any{idx}

	return &gn.Error{
		Code: errcode.MissingEntityMapError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("entry %s: no entitymap in delexicalized file", idx),
	}
}

// EntityFormatError creates an error for an <entity> line without a '|'
// separator.
func EntityFormatError(idx, line string) error {
	msg := `Entry <em>%s</em>: cannot parse entity <em>'%s'</em>`
	vars := []any{idx, line}

	return &gn.Error{
		Code: errcode.EntityFormatError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("entry %s: entity '%s' has no '|' separator",
			idx, line),
	}
}
