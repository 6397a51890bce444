package corpus

import (
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gnfmt"
)

// Load reads every file of every dataset of a release into a new Corpus.
//
// Files are read one after another in the order given by the resolver.
// Any error aborts the load: there is no partial result.
func Load(release string, res Resolver, rd Reader) (*Corpus, error) {
	startTime := time.Now()

	datasets, err := res.Datasets(release)
	if err != nil {
		return nil, err
	}
	slog.Info("Loading release",
		"release", release,
		"datasets", datasets,
	)

	store := NewStore()
	for _, dataset := range datasets {
		files, err := res.Files(release, dataset)
		if err != nil {
			return nil, err
		}

		before := store.Count()
		for _, path := range files {
			schema := res.Schema(release, path)
			if err = loadFile(store, rd, dataset, path, schema); err != nil {
				slog.Error("Cannot load corpus file",
					"release", release,
					"dataset", dataset,
					"path", path,
					"error", err,
				)
				return nil, err
			}
		}
		slog.Info("Dataset loaded",
			"release", release,
			"dataset", dataset,
			"files", len(files),
			"entries", store.Count()-before,
		)
	}

	slog.Info("Release loaded",
		"release", release,
		"entries", humanize.Comma(int64(store.Count())),
		"duration", gnfmt.TimeString(time.Since(startTime).Seconds()),
	)
	return New(release, store), nil
}

func loadFile(
	store *Store,
	rd Reader,
	dataset, path string,
	schema SchemaVersion,
) error {
	raws, err := rd.ReadFile(path)
	if err != nil {
		return err
	}

	entries, err := BuildEntries(raws, dataset, schema)
	if err != nil {
		return err
	}
	store.InsertAll(entries...)

	slog.Debug("Corpus file loaded",
		"path", path,
		"schema", schema.String(),
		"entries", len(entries),
	)
	return nil
}
