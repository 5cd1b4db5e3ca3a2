package catalog

import (
	"path/filepath"

	"git.home.luguber.info/inful/patternforge/internal/globber"
	"git.home.luguber.info/inful/patternforge/internal/util/sets"
)

// Classification places one file in the two-level taxonomy.
type Classification struct {
	// Collection is the immediate parent directory basename.
	Collection string
	// Parent is the grandparent directory basename; meaningful only
	// when SubCollection is true, where it names the top-level
	// collection.
	Parent string
	// SubCollection reports whether Collection is nested one level
	// below a known top-level collection.
	SubCollection bool
}

// KnownTopLevel resolves, for each pattern, the set of directory
// basenames one level below the pattern's base directory. Membership in
// this set is what distinguishes a top-level collection from a
// sub-collection during classification.
func KnownTopLevel(patterns []string) (sets.Set[string], error) {
	known := sets.New[string]()
	for _, pattern := range patterns {
		base := globber.Base(pattern)
		if base == "" {
			continue
		}
		dirs, err := globber.Dirs(base + "/*/")
		if err != nil {
			return nil, err
		}
		for _, dir := range dirs {
			known.Add(filepath.Base(dir))
		}
	}
	return known, nil
}

// Classify determines the collection placement of a single file against
// the known top-level set. The file is in a sub-collection iff its
// grandparent directory is a known top-level collection.
func Classify(file string, known sets.Set[string]) Classification {
	dir := filepath.Dir(file)
	collection := filepath.Base(dir)
	parent := filepath.Base(filepath.Dir(dir))
	return Classification{
		Collection:    collection,
		Parent:        parent,
		SubCollection: known.Has(parent),
	}
}
