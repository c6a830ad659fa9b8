// Package history remembers where palettes were exported.
// Exporting to the same path again replaces the earlier record, as the file itself is overwritten.
package history

import (
	"path/filepath"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/swatch-cli/swatch/filesystem"
	"github.com/swatch-cli/swatch/where"
)

var cacher = gache.New[map[string]*Record](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

func key(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

// Get returns every record keyed by absolute path.
func Get() (map[string]*Record, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Record), nil
	}
	return cached, nil
}

// Save stores r, replacing any record for the same path.
func Save(r *Record) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	saved[key(r.Path)] = r
	return cacher.Set(saved)
}

// Remove forgets the record for path. It never touches the file.
func Remove(path string) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, key(path))
	return cacher.Set(saved)
}

// Clear forgets every record.
func Clear() error {
	return cacher.Set(make(map[string]*Record))
}

// List returns the records, most recent first.
func List() ([]*Record, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	records := lo.Values(saved)
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].ExportedAt.Equal(records[j].ExportedAt) {
			return records[i].Path < records[j].Path
		}
		return records[i].ExportedAt.After(records[j].ExportedAt)
	})
	return records, nil
}

// Find returns the records whose path fuzzily matches query, most recent first.
func Find(query string) ([]*Record, error) {
	records, err := List()
	if err != nil || query == "" {
		return records, err
	}

	return lo.Filter(records, func(r *Record, _ int) bool {
		return fuzzy.MatchNormalizedFold(query, r.Path)
	}), nil
}
