package iorelease

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gnames/webnlg/pkg/corpus"
	"github.com/gnames/webnlg/pkg/releases"
)

// Resolver finds corpus files of registered releases under
// <dataDir>/<release>/<dataset>/. XML files can be nested at any depth
// (for example train/1triples/Airport.xml).
type Resolver struct {
	dataDir  string
	registry *releases.Config
}

// NewResolver creates a Resolver for releases of the registry.
func NewResolver(dataDir string, registry *releases.Config) *Resolver {
	return &Resolver{dataDir: dataDir, registry: registry}
}

// Datasets returns datasets of a registered release.
func (r *Resolver) Datasets(release string) ([]string, error) {
	rel, ok := r.registry.Find(release)
	if !ok {
		return nil, corpus.UnknownReleaseError(release, r.registry.IDs())
	}
	return rel.Datasets, nil
}

// Schema decides the schema of a corpus file. A version token in the
// path below the data dir wins, otherwise the version of the registered
// release decides.
func (r *Resolver) Schema(release, path string) corpus.SchemaVersion {
	rel, err := filepath.Rel(r.dataDir, path)
	if err == nil && rel != ".." && !strings.HasPrefix(rel, "../") {
		if s, ok := corpus.SchemaFromPath(rel); ok {
			return s
		}
	}
	if rls, ok := r.registry.Find(release); ok {
		return rls.Schema()
	}
	return corpus.Plain
}

// ReleaseSchema returns the schema files of a release are loaded with,
// unless a deeper directory carries its own version.
func (r *Resolver) ReleaseSchema(release string) corpus.SchemaVersion {
	return r.Schema(release, filepath.Join(r.dataDir, release))
}

// Files returns XML files of a dataset sorted by path.
func (r *Resolver) Files(release, dataset string) ([]string, error) {
	if _, ok := r.registry.Find(release); !ok {
		return nil, corpus.UnknownReleaseError(release, r.registry.IDs())
	}

	dir := r.DatasetDir(release, dataset)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, DatasetNotFoundError(release, dataset, dir)
	}

	var res []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".xml") {
			res = append(res, path)
		}
		return nil
	})
	if err != nil {
		return nil, DatasetNotFoundError(release, dataset, dir)
	}

	slices.Sort(res)
	return res, nil
}

// DatasetDir returns the directory of a release dataset.
func (r *Resolver) DatasetDir(release, dataset string) string {
	return filepath.Join(r.dataDir, release, dataset)
}
