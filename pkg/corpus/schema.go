package corpus

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gnames/gnlib"
	"github.com/gnames/webnlg/pkg/config"
	"golang.org/x/mod/semver"
)

// SchemaVersion tells which fields corpus files of a release provide.
type SchemaVersion int

const (
	// Plain files have triples and lexicalizations only.
	Plain SchemaVersion = iota
	// Delexicalized files also have entity maps and lexicalization
	// templates.
	Delexicalized
)

func (s SchemaVersion) String() string {
	switch s {
	case Plain:
		return "plain"
	case Delexicalized:
		return "delexicalized"
	default:
		return "unknown"
	}
}

// a version token must not be glued to a preceding letter ("srv1", "rev2")
var versionRe = regexp.MustCompile(`(?:^|[^A-Za-z])(v\d+(?:\.\d+){0,2})`)

// VersionSchema returns the schema of corpus files of a version like
// "v1.5". Versions from config.MinVersionDelex on are Delexicalized.
// The second value is false when version is not a semantic version.
func VersionSchema(version string) (SchemaVersion, bool) {
	// "v1.2" becomes "v1.2.0"
	v := semver.Canonical(version)
	if !gnlib.IsVersion(v) {
		return Plain, false
	}
	if gnlib.CmpVersion(v, semver.Canonical(config.MinVersionDelex)) < 0 {
		return Plain, true
	}
	return Delexicalized, true
}

// SchemaFromPath decides the schema of a corpus file from its path.
// Path elements are checked from the top, the first one carrying a
// version token (like "v1.2" in "release_v1.2/train/Airport.xml")
// decides. The second value is false when the path has no version.
//
// Callers give a path relative to the data dir, so directories above
// it never take part in the decision.
func SchemaFromPath(path string) (SchemaVersion, bool) {
	for _, elem := range strings.Split(filepath.ToSlash(path), "/") {
		m := versionRe.FindStringSubmatch(elem)
		if m == nil {
			continue
		}
		if s, ok := VersionSchema(m[1]); ok {
			return s, true
		}
	}
	return Plain, false
}
